package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/NguyenNguyen164/web-thu-nghiem/internal/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// ListProducts serves /api/products with optional ?category=, ?q= and ?limit=.
// A search query narrows within the full catalog; category filtering applies
// otherwise.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var products []catalog.Product
	if query := q.Get("q"); query != "" {
		products = h.catalog.Search(query)
	} else {
		products = h.catalog.ByCategory(q.Get("category"), parseLimit(q.Get("limit")))
	}

	writeJSON(w, http.StatusOK, catalog.Data{
		Products:   nonNil(products),
		Categories: h.catalog.Categories(),
	})
}

func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Search(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, map[string][]catalog.Product{
		"products": nonNil(products),
	})
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	idOrSlug := chi.URLParam(r, "id")

	p, ok := h.catalog.ByIDOrSlug(idOrSlug)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) RelatedProducts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()

	products := h.catalog.Related(id, q.Get("categoryId"), parseLimit(q.Get("limit")))
	writeJSON(w, http.StatusOK, map[string][]catalog.Product{
		"products": nonNil(products),
	})
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats := h.catalog.Categories()
	if cats == nil {
		cats = []catalog.Category{}
	}
	writeJSON(w, http.StatusOK, map[string][]catalog.Category{
		"categories": cats,
	})
}

func parseLimit(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func nonNil(ps []catalog.Product) []catalog.Product {
	if ps == nil {
		return []catalog.Product{}
	}
	return ps
}
