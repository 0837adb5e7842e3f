// Package catalog serves the product and category data the storefront
// browses: category filtering, substring search, and id/slug lookup over a
// document loaded once at startup from a static JSON file or a content API.
package catalog

import (
	"context"
	"math"
	"strings"

	"github.com/rs/zerolog"
)

const (
	defaultListLimit    = 12
	defaultRelatedLimit = 4
)

// Catalog is an in-memory, read-only view of the product data.
type Catalog struct {
	products   []Product
	categories []Category
	log        zerolog.Logger
}

// Load fetches and normalizes the catalog. A fetch failure degrades to an
// empty catalog rather than failing startup, matching the storefront's
// behavior when the product feed is unreachable.
func Load(ctx context.Context, src Source, log zerolog.Logger) *Catalog {
	log = log.With().Str("component", "catalog").Logger()

	d, err := src.Fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("catalog fetch failed, serving empty catalog")
		return &Catalog{log: log}
	}

	for i := range d.Products {
		Normalize(&d.Products[i])
	}
	log.Info().Int("products", len(d.Products)).Int("categories", len(d.Categories)).Msg("catalog loaded")

	return &Catalog{products: d.Products, categories: d.Categories, log: log}
}

// Normalize fills image fallbacks, keeps categories and category_ids in sync,
// defaults in_stock to true, and computes the sale fields.
func Normalize(p *Product) {
	if p.Images.Main == "" {
		p.Images.Main = p.Image
	}
	if p.Images.Thumb == "" {
		p.Images.Thumb = p.Images.Main
	}
	if p.Images.Placeholder == "" {
		p.Images.Placeholder = p.Images.Thumb
	}

	switch {
	case p.Categories == nil && p.CategoryIDs != nil:
		p.Categories = append([]string(nil), p.CategoryIDs...)
	case p.CategoryIDs == nil && p.Categories != nil:
		p.CategoryIDs = append([]string(nil), p.Categories...)
	case p.Categories == nil && p.CategoryIDs == nil:
		p.Categories = []string{}
		p.CategoryIDs = []string{}
	}

	if p.Attributes.InStock == nil {
		inStock := true
		p.Attributes.InStock = &inStock
	}

	p.IsOnSale = p.CompareAtPrice > 0 && p.Price > 0 && p.CompareAtPrice > p.Price
	if p.IsOnSale {
		p.DiscountPercent = int(math.Round((p.CompareAtPrice - p.Price) / p.CompareAtPrice * 100))
	} else {
		p.DiscountPercent = 0
	}
}

// Products returns every product.
func (c *Catalog) Products() []Product {
	return c.products
}

// Categories returns every category.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// ByCategory filters products whose category ids or categories contain
// categoryID. An empty categoryID returns the first limit products;
// limit <= 0 uses the default page size.
func (c *Catalog) ByCategory(categoryID string, limit int) []Product {
	if limit <= 0 {
		limit = defaultListLimit
	}

	if categoryID == "" {
		if len(c.products) <= limit {
			return c.products
		}
		return c.products[:limit]
	}

	out := make([]Product, 0, limit)
	for _, p := range c.products {
		if inCategory(p, categoryID) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Search matches the query case-insensitively against title, descriptions,
// material and color. A blank query returns nothing.
func (c *Catalog) Search(query string) []Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []Product
	for _, p := range c.products {
		if containsFold(p.Title, query) ||
			containsFold(p.ShortDescription, query) ||
			containsFold(p.Description, query) ||
			containsFold(p.Attributes.Material, query) ||
			containsFold(p.Attributes.Color, query) {
			out = append(out, p)
		}
	}
	return out
}

// ByIDOrSlug looks a product up by exact id first, then by its slugified
// title. Returns false when nothing matches.
func (c *Catalog) ByIDOrSlug(idOrSlug string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == idOrSlug {
			return p, true
		}
	}

	want := strings.ToLower(idOrSlug)
	for _, p := range c.products {
		if Slugify(p.Title) == want {
			return p, true
		}
	}
	return Product{}, false
}

// Related returns up to limit products sharing categoryID, excluding the
// product itself. limit <= 0 uses the default of 4.
func (c *Catalog) Related(productID, categoryID string, limit int) []Product {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	out := make([]Product, 0, limit)
	for _, p := range c.products {
		if p.ID == productID || !inCategory(p, categoryID) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Slugify lowercases a title and collapses whitespace runs into hyphens.
func Slugify(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

func inCategory(p Product, categoryID string) bool {
	for _, id := range p.CategoryIDs {
		if id == categoryID {
			return true
		}
	}
	for _, c := range p.Categories {
		if c == categoryID {
			return true
		}
	}
	return false
}

func containsFold(s, lowered string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), lowered)
}
