package money_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NguyenNguyen164/web-thu-nghiem/internal/money"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"already rounded", 100, 100},
		{"two decimals kept", 12.34, 12.34},
		{"rounds up", 1.006, 1.01},
		{"rounds down", 1.004, 1.0},
		{"negative rounds away from zero", -1.006, -1.01},
		{"repeating fraction", 10.0 / 3.0, 3.33},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, money.Round2(tc.in), 1e-9)
		})
	}
}

func TestMultiply(t *testing.T) {
	p := money.Price{Amount: 19.99, Currency: "AUD"}

	got := money.Multiply(p, 3)
	assert.InDelta(t, 59.97, got.Amount, 1e-9)
	assert.Equal(t, "AUD", got.Currency)

	// Input is untouched.
	assert.InDelta(t, 19.99, p.Amount, 1e-9)

	// No validation of n: fractional quantities still round to 2 decimals.
	half := money.Multiply(p, 0.5)
	assert.InDelta(t, 10.0, half.Amount, 1e-9)
}

func TestAdd(t *testing.T) {
	a := money.Price{Amount: 0.1, Currency: "USD"}
	b := money.Price{Amount: 0.2, Currency: "USD"}

	got := money.Add(a, b)
	assert.InDelta(t, 0.3, got.Amount, 1e-9)
	assert.Equal(t, "USD", got.Currency)

	// Currency comes from the first operand, no cross-currency check.
	mixed := money.Add(money.Price{Amount: 1, Currency: "VND"}, money.Price{Amount: 2, Currency: "USD"})
	assert.Equal(t, "VND", mixed.Currency)
	assert.InDelta(t, 3, mixed.Amount, 1e-9)
}

func TestZero(t *testing.T) {
	z := money.Zero("VND")
	assert.Equal(t, money.Price{Amount: 0, Currency: "VND"}, z)
}

func TestFormat(t *testing.T) {
	t.Run("known currency renders the amount", func(t *testing.T) {
		s := money.Format(money.Price{Amount: 1234567, Currency: "VND"})
		digits := strings.ReplaceAll(s, ",", "")
		assert.True(t, strings.Contains(digits, "1234567"), "got %q", s)
		assert.NotEqual(t, "1234567.00 VND", s)
	})

	t.Run("unknown currency falls back", func(t *testing.T) {
		s := money.Format(money.Price{Amount: 12.5, Currency: "ZZZ"})
		assert.Equal(t, "12.50 ZZZ", s)
	})
}
