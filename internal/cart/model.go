package cart

import "github.com/NguyenNguyen164/web-thu-nghiem/internal/money"

// Line is one cart entry: a product at a given unit price and quantity.
// ID identifies the line, not the product; two adds of the same SKU at the
// same price land on one line, the same SKU at a different price gets its own.
type Line struct {
	ID        string      `json:"id"`
	SKU       string      `json:"sku"`
	Name      string      `json:"name"`
	Image     string      `json:"image,omitempty"`
	UnitPrice money.Price `json:"unitPrice"`
	Qty       int         `json:"qty"`
}

// Cart is a point-in-time view of the store. Subtotal, Shipping, Tax and
// Total are derived from Lines on every read and never stored.
type Cart struct {
	Lines    []Line      `json:"lines"`
	Subtotal money.Price `json:"subtotal"`
	Shipping money.Price `json:"shipping"`
	Tax      money.Price `json:"tax"`
	Total    money.Price `json:"total"`
}

// AddItemInput is a Line without an ID; the store assigns one on insert.
type AddItemInput struct {
	SKU       string      `json:"sku"`
	Name      string      `json:"name"`
	Image     string      `json:"image,omitempty"`
	UnitPrice money.Price `json:"unitPrice"`
	Qty       int         `json:"qty"`
}
