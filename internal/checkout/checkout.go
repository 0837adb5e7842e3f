// Package checkout implements the storefront's mocked order placement. There
// is no payment gateway, order pipeline or inventory reservation behind it:
// the service validates the shipping address, simulates processing with a
// short delay, clears the cart and hands back a generated order number.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/NguyenNguyen164/web-thu-nghiem/internal/cart"
	"github.com/NguyenNguyen164/web-thu-nghiem/internal/money"
)

// ErrEmptyCart rejects checkout when there is nothing to order.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ValidationError lists the required address fields that were missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Address is the shipping address collected by the checkout form.
type Address struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Validate reports every missing required field at once so the form can show
// them all.
func (a Address) Validate() error {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"fullName", a.FullName},
		{"phone", a.Phone},
		{"email", a.Email},
		{"line1", a.Line1},
		{"city", a.City},
		{"postalCode", a.PostalCode},
		{"country", a.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Request is the checkout payload: where to ship and an optional note.
type Request struct {
	Address Address `json:"address"`
	Note    string  `json:"note,omitempty"`
}

// Result is the order confirmation.
type Result struct {
	OrderID  string      `json:"orderId"`
	Status   string      `json:"status"`
	Total    money.Price `json:"total"`
	PlacedAt time.Time   `json:"placedAt"`
}

// CartStore is the slice of the cart the checkout flow needs.
type CartStore interface {
	Snapshot() cart.Cart
	Clear() cart.Cart
}

type Service struct {
	cart  CartStore
	delay time.Duration
	log   zerolog.Logger
	now   func() time.Time
}

func NewService(cartStore CartStore, delay time.Duration, log zerolog.Logger) *Service {
	return &Service{
		cart:  cartStore,
		delay: delay,
		log:   log.With().Str("component", "checkout").Logger(),
		now:   time.Now,
	}
}

// PlaceOrder runs the mocked flow: reject empty carts, validate the address,
// wait out the simulated processing delay (honoring ctx cancellation), then
// clear the cart and confirm.
func (s *Service) PlaceOrder(ctx context.Context, req Request) (Result, error) {
	snap := s.cart.Snapshot()
	if len(snap.Lines) == 0 {
		return Result{}, ErrEmptyCart
	}
	if err := req.Address.Validate(); err != nil {
		return Result{}, err
	}

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return Result{}, ctx.Err()
		}
	}

	s.cart.Clear()

	res := Result{
		OrderID:  uuid.NewString(),
		Status:   "confirmed",
		Total:    snap.Total,
		PlacedAt: s.now(),
	}
	s.log.Info().
		Str("orderId", res.OrderID).
		Str("total", money.Format(res.Total)).
		Int("lines", len(snap.Lines)).
		Msg("order placed")
	return res, nil
}
