// Package cart holds the shopping cart: an ordered list of lines plus the
// arithmetic that derives subtotal, shipping, tax and total from them.
//
// The store is the single source of truth for one storefront session. It is
// constructor-injected into anything that consumes it, persists write-through
// after every mutation, and treats its backing storage as a best-effort cache:
// a failed restore starts an empty cart, a failed save keeps the in-memory
// mutation and logs.
package cart

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/NguyenNguyen164/web-thu-nghiem/internal/money"
	"github.com/NguyenNguyen164/web-thu-nghiem/internal/storage"
)

// storageKey is the fixed key the cart blob lives under.
const storageKey = "cart"

// DefaultCurrency tags carts that were never told otherwise.
const DefaultCurrency = "AUD"

// Pricing carries the constants the derivation step needs. Amounts are in the
// active currency's major unit; defaults follow the VND convention
// (free shipping from 1,000,000, flat fee 100,000, flat 10% tax).
type Pricing struct {
	TaxRate               float64
	FlatShippingFee       float64
	FreeShippingThreshold float64
}

func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:               0.10,
		FlatShippingFee:       100000,
		FreeShippingThreshold: 1000000,
	}
}

// Store is the cart's single source of truth. A mutex serializes mutations
// because HTTP handlers run concurrently; each operation runs to completion
// before the next observes state.
type Store struct {
	mu       sync.Mutex
	lines    []Line
	currency string

	pricing Pricing
	persist storage.Store
	log     zerolog.Logger
	newID   func() string
}

// persistedCart is the blob layout under the storage key.
type persistedCart struct {
	Lines    []Line `json:"lines"`
	Currency string `json:"currency"`
}

// NewStore restores the cart from persist if a blob exists, otherwise starts
// empty in the given currency.
func NewStore(persist storage.Store, currency string, pricing Pricing, log zerolog.Logger) *Store {
	if currency == "" {
		currency = DefaultCurrency
	}
	s := &Store{
		currency: currency,
		pricing:  pricing,
		persist:  persist,
		log:      log.With().Str("component", "cart").Logger(),
		newID:    uuid.NewString,
	}
	s.restore()
	return s
}

// Snapshot returns the current cart with freshly derived totals.
func (s *Store) Snapshot() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// AddItem merges the input into an existing line when both SKU and unit price
// amount match, adding the whole requested quantity; otherwise it appends a
// new line with a fresh id. The same SKU at a different price stays a
// distinct line.
func (s *Store) AddItem(in AddItemInput) Cart {
	qty := in.Qty
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.lines {
		if s.lines[i].SKU == in.SKU && s.lines[i].UnitPrice.Amount == in.UnitPrice.Amount {
			s.lines[i].Qty += qty
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, Line{
			ID:        s.newID(),
			SKU:       in.SKU,
			Name:      in.Name,
			Image:     in.Image,
			UnitPrice: in.UnitPrice,
			Qty:       qty,
		})
	}

	s.saveLocked()
	return s.snapshotLocked()
}

// RemoveItem deletes the line with the given id. Unknown ids are a silent
// no-op; removing twice is therefore idempotent.
func (s *Store) RemoveItem(lineID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.saveLocked()
			break
		}
	}
	return s.snapshotLocked()
}

// UpdateQty sets the line's quantity, clamped to a minimum of 1. Dropping a
// line entirely goes through RemoveItem. Unknown ids are a silent no-op.
func (s *Store) UpdateQty(lineID string, qty int) Cart {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines[i].Qty = qty
			s.saveLocked()
			break
		}
	}
	return s.snapshotLocked()
}

// Clear empties the cart.
func (s *Store) Clear() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.saveLocked()
	return s.snapshotLocked()
}

// SetCurrency retags the currency used for derived totals. Unit price amounts
// are NOT converted; this preserves the storefront's historical behavior.
func (s *Store) SetCurrency(code string) Cart {
	code = strings.ToUpper(strings.TrimSpace(code))

	s.mu.Lock()
	defer s.mu.Unlock()

	if code != "" && code != s.currency {
		s.currency = code
		s.saveLocked()
	}
	return s.snapshotLocked()
}

// Currency reports the active currency tag.
func (s *Store) Currency() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currency
}

// snapshotLocked derives the totals. Each of the four values is rounded
// independently when it is materialized as a Price; the total is computed
// from the raw components, not from already-rounded ones.
func (s *Store) snapshotLocked() Cart {
	subtotal := 0.0
	for _, l := range s.lines {
		subtotal += l.UnitPrice.Amount * float64(l.Qty)
	}

	shipping := s.pricing.FlatShippingFee
	if subtotal == 0 || subtotal >= s.pricing.FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * s.pricing.TaxRate

	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)

	cur := s.currency
	return Cart{
		Lines:    lines,
		Subtotal: money.Price{Amount: money.Round2(subtotal), Currency: cur},
		Shipping: money.Price{Amount: money.Round2(shipping), Currency: cur},
		Tax:      money.Price{Amount: money.Round2(tax), Currency: cur},
		Total:    money.Price{Amount: money.Round2(subtotal + shipping + tax), Currency: cur},
	}
}

func (s *Store) restore() {
	data, err := s.persist.Load(storageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn().Err(err).Msg("restore cart failed, starting empty")
		}
		return
	}

	var p persistedCart
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn().Err(err).Msg("persisted cart is corrupted, starting empty")
		return
	}

	s.lines = p.Lines
	if p.Currency != "" {
		s.currency = p.Currency
	}
}

// saveLocked writes through after a mutation. A write failure is logged and
// swallowed; the in-memory state stays authoritative for the session.
func (s *Store) saveLocked() {
	p := persistedCart{Lines: s.lines, Currency: s.currency}
	if p.Lines == nil {
		p.Lines = []Line{}
	}

	data, err := json.Marshal(p)
	if err != nil {
		s.log.Error().Err(err).Msg("encode cart failed")
		return
	}
	if err := s.persist.Save(storageKey, data); err != nil {
		s.log.Error().Err(err).Msg("persist cart failed")
	}
}
