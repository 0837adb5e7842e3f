package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NguyenNguyen164/web-thu-nghiem/internal/checkout"
)

// OrderPlacer is implemented by checkout.Service.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req checkout.Request) (checkout.Result, error)
}

type CheckoutHandler struct {
	svc OrderPlacer
}

func NewCheckoutHandler(svc OrderPlacer) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req checkout.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	res, err := h.svc.PlaceOrder(r.Context(), req)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			writeError(w, http.StatusConflict, "cart is empty")
		case errors.As(err, &verr):
			writeError(w, http.StatusUnprocessableEntity, verr.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to place order")
		}
		return
	}

	writeJSON(w, http.StatusCreated, res)
}
