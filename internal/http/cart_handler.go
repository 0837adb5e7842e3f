package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/NguyenNguyen164/web-thu-nghiem/internal/cart"
)

// CartService is the cart surface the handlers need. Mutators return the
// updated cart so every response carries fresh derived totals.
type CartService interface {
	Snapshot() cart.Cart
	AddItem(in cart.AddItemInput) cart.Cart
	RemoveItem(lineID string) cart.Cart
	UpdateQty(lineID string, qty int) cart.Cart
	Clear() cart.Cart
	SetCurrency(code string) cart.Cart
}

type CartHandler struct {
	store CartService
}

func NewCartHandler(store CartService) *CartHandler {
	return &CartHandler{store: store}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Snapshot())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body cart.AddItemInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.SKU == "" {
		writeError(w, http.StatusBadRequest, "missing sku")
		return
	}
	if body.UnitPrice.Amount < 0 {
		writeError(w, http.StatusBadRequest, "unit price must not be negative")
		return
	}

	writeJSON(w, http.StatusOK, h.store.AddItem(body))
}

func (h *CartHandler) UpdateQty(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "lineId")

	var body struct {
		Qty int `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	writeJSON(w, http.StatusOK, h.store.UpdateQty(lineID, body.Qty))
}

// RemoveItem answers 200 with the updated cart whether or not the line
// existed; unknown ids are a soft no-op.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "lineId")
	writeJSON(w, http.StatusOK, h.store.RemoveItem(lineID))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Clear())
}

func (h *CartHandler) SetCurrency(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Currency string `json:"currency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Currency == "" {
		writeError(w, http.StatusBadRequest, "missing currency")
		return
	}

	writeJSON(w, http.StatusOK, h.store.SetCurrency(body.Currency))
}
