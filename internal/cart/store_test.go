package cart_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NguyenNguyen164/web-thu-nghiem/internal/cart"
	"github.com/NguyenNguyen164/web-thu-nghiem/internal/money"
	"github.com/NguyenNguyen164/web-thu-nghiem/internal/storage"
)

// StoreMock implements storage.Store with overridable funcs.
type StoreMock struct {
	LoadFunc func(key string) ([]byte, error)
	SaveFunc func(key string, data []byte) error

	saved map[string][]byte
}

func (m *StoreMock) Load(key string) ([]byte, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(key)
	}
	if b, ok := m.saved[key]; ok {
		return b, nil
	}
	return nil, storage.ErrNotFound
}

func (m *StoreMock) Save(key string, data []byte) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(key, data)
	}
	if m.saved == nil {
		m.saved = map[string][]byte{}
	}
	m.saved[key] = data
	return nil
}

func newTestStore(t *testing.T) *cart.Store {
	t.Helper()
	return cart.NewStore(&StoreMock{}, "VND", cart.DefaultPricing(), zerolog.Nop())
}

func vnd(amount float64) money.Price {
	return money.Price{Amount: amount, Currency: "VND"}
}

func TestAddItem(t *testing.T) {
	t.Run("appends a new line with generated id", func(t *testing.T) {
		s := newTestStore(t)

		c := s.AddItem(cart.AddItemInput{SKU: "A", Name: "Bàn gỗ sồi", UnitPrice: vnd(100), Qty: 2})

		require.Len(t, c.Lines, 1)
		assert.NotEmpty(t, c.Lines[0].ID)
		assert.Equal(t, "A", c.Lines[0].SKU)
		assert.Equal(t, 2, c.Lines[0].Qty)
		assert.InDelta(t, 200, c.Subtotal.Amount, 1e-9)
	})

	t.Run("merges same sku and price, summing quantities", func(t *testing.T) {
		s := newTestStore(t)

		s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(100), Qty: 2})
		c := s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(100), Qty: 1})

		require.Len(t, c.Lines, 1)
		assert.Equal(t, 3, c.Lines[0].Qty)
		assert.InDelta(t, 300, c.Subtotal.Amount, 1e-9)
	})

	t.Run("same sku at a different price stays a distinct line", func(t *testing.T) {
		s := newTestStore(t)

		s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(100), Qty: 1})
		c := s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(90), Qty: 1})

		require.Len(t, c.Lines, 2)
		assert.NotEqual(t, c.Lines[0].ID, c.Lines[1].ID)
		assert.InDelta(t, 190, c.Subtotal.Amount, 1e-9)
	})

	t.Run("quantity below one is treated as one", func(t *testing.T) {
		s := newTestStore(t)

		c := s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(100)})

		require.Len(t, c.Lines, 1)
		assert.Equal(t, 1, c.Lines[0].Qty)
	})
}

func TestRemoveItem(t *testing.T) {
	s := newTestStore(t)
	c := s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(100), Qty: 1})
	id := c.Lines[0].ID

	c = s.RemoveItem(id)
	assert.Empty(t, c.Lines)

	// Removing again is a silent no-op.
	c = s.RemoveItem(id)
	assert.Empty(t, c.Lines)

	// Unknown id does not disturb existing lines.
	s.AddItem(cart.AddItemInput{SKU: "B", UnitPrice: vnd(50), Qty: 1})
	c = s.RemoveItem("no-such-line")
	assert.Len(t, c.Lines, 1)
}

func TestUpdateQty(t *testing.T) {
	s := newTestStore(t)
	c := s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(100), Qty: 2})
	id := c.Lines[0].ID

	t.Run("sets quantity", func(t *testing.T) {
		c := s.UpdateQty(id, 5)
		assert.Equal(t, 5, c.Lines[0].Qty)
		assert.InDelta(t, 500, c.Subtotal.Amount, 1e-9)
	})

	t.Run("clamps zero and negative to one", func(t *testing.T) {
		c := s.UpdateQty(id, 0)
		assert.Equal(t, 1, c.Lines[0].Qty)

		c = s.UpdateQty(id, -7)
		assert.Equal(t, 1, c.Lines[0].Qty)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before := s.Snapshot()
		after := s.UpdateQty("no-such-line", 9)
		assert.Equal(t, before.Lines, after.Lines)
	})
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(100), Qty: 2})
	s.AddItem(cart.AddItemInput{SKU: "B", UnitPrice: vnd(50), Qty: 1})

	c := s.Clear()

	assert.Empty(t, c.Lines)
	assert.InDelta(t, 0, c.Subtotal.Amount, 1e-9)
	assert.InDelta(t, 0, c.Total.Amount, 1e-9)
}

func TestDerivedTotals(t *testing.T) {
	t.Run("empty cart has zero shipping", func(t *testing.T) {
		c := newTestStore(t).Snapshot()
		assert.InDelta(t, 0, c.Subtotal.Amount, 1e-9)
		assert.InDelta(t, 0, c.Shipping.Amount, 1e-9)
		assert.InDelta(t, 0, c.Total.Amount, 1e-9)
	})

	t.Run("below threshold pays the flat fee", func(t *testing.T) {
		s := newTestStore(t)
		c := s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(500000), Qty: 1})

		assert.InDelta(t, 500000, c.Subtotal.Amount, 1e-9)
		assert.InDelta(t, 100000, c.Shipping.Amount, 1e-9)
		assert.InDelta(t, 50000, c.Tax.Amount, 1e-9)
		assert.InDelta(t, c.Subtotal.Amount+c.Shipping.Amount+c.Tax.Amount, c.Total.Amount, 1e-9)
	})

	t.Run("threshold met exactly ships free", func(t *testing.T) {
		s := newTestStore(t)
		c := s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(1000000), Qty: 1})

		assert.InDelta(t, 0, c.Shipping.Amount, 1e-9)
		assert.InDelta(t, 100000, c.Tax.Amount, 1e-9)
		assert.InDelta(t, 1100000, c.Total.Amount, 1e-9)
	})

	t.Run("each value rounds independently", func(t *testing.T) {
		s := cart.NewStore(&StoreMock{}, "USD", cart.Pricing{
			TaxRate:               0.10,
			FlatShippingFee:       49,
			FreeShippingThreshold: 1000000,
		}, zerolog.Nop())

		c := s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: money.Price{Amount: 33.335, Currency: "USD"}, Qty: 1})

		// subtotal 33.34 (rounded), tax rounds from the raw 3.3335,
		// total rounds from the raw sum, not the rounded parts.
		assert.InDelta(t, 33.34, c.Subtotal.Amount, 1e-9)
		assert.InDelta(t, 3.33, c.Tax.Amount, 1e-9)
		assert.InDelta(t, money.Round2(33.335+49+3.3335), c.Total.Amount, 1e-9)
	})

	t.Run("totals carry the active currency", func(t *testing.T) {
		s := newTestStore(t)
		c := s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(100), Qty: 1})
		assert.Equal(t, "VND", c.Subtotal.Currency)
		assert.Equal(t, "VND", c.Total.Currency)
	})
}

func TestSetCurrency(t *testing.T) {
	s := newTestStore(t)
	s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(100), Qty: 1})

	c := s.SetCurrency("usd")

	// Amounts are retagged, never converted.
	assert.Equal(t, "USD", c.Subtotal.Currency)
	assert.InDelta(t, 100, c.Lines[0].UnitPrice.Amount, 1e-9)
	assert.Equal(t, "USD", s.Currency())

	// Blank input keeps the current tag.
	c = s.SetCurrency("  ")
	assert.Equal(t, "USD", c.Subtotal.Currency)
}

func TestPersistence(t *testing.T) {
	t.Run("round-trips lines and currency across restarts", func(t *testing.T) {
		persist := &StoreMock{}

		s := cart.NewStore(persist, "VND", cart.DefaultPricing(), zerolog.Nop())
		s.AddItem(cart.AddItemInput{SKU: "A", Name: "Ghế ăn", UnitPrice: vnd(250000), Qty: 2})
		s.AddItem(cart.AddItemInput{SKU: "B", Name: "Kệ sách", UnitPrice: vnd(790000), Qty: 1})
		s.SetCurrency("USD")
		want := s.Snapshot()

		restored := cart.NewStore(persist, "VND", cart.DefaultPricing(), zerolog.Nop())
		got := restored.Snapshot()

		assert.Equal(t, want.Lines, got.Lines)
		assert.Equal(t, "USD", restored.Currency())
	})

	t.Run("corrupted blob falls back to an empty cart", func(t *testing.T) {
		persist := &StoreMock{LoadFunc: func(string) ([]byte, error) {
			return []byte("{not json"), nil
		}}

		s := cart.NewStore(persist, "VND", cart.DefaultPricing(), zerolog.Nop())
		assert.Empty(t, s.Snapshot().Lines)
	})

	t.Run("read failure falls back to an empty cart", func(t *testing.T) {
		persist := &StoreMock{LoadFunc: func(string) ([]byte, error) {
			return nil, errors.New("disk on fire")
		}}

		s := cart.NewStore(persist, "VND", cart.DefaultPricing(), zerolog.Nop())
		assert.Empty(t, s.Snapshot().Lines)
	})

	t.Run("write failure keeps the in-memory mutation", func(t *testing.T) {
		persist := &StoreMock{SaveFunc: func(string, []byte) error {
			return errors.New("disk full")
		}}

		s := cart.NewStore(persist, "VND", cart.DefaultPricing(), zerolog.Nop())
		c := s.AddItem(cart.AddItemInput{SKU: "A", UnitPrice: vnd(100), Qty: 1})

		require.Len(t, c.Lines, 1)
		assert.Len(t, s.Snapshot().Lines, 1)
	})
}
