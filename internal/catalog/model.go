package catalog

// Images holds the resolved image set for a product. Normalize guarantees
// Thumb and Placeholder fall back through Main.
type Images struct {
	Main        string   `json:"main"`
	Thumb       string   `json:"thumb"`
	Placeholder string   `json:"placeholder"`
	Gallery     []string `json:"gallery,omitempty"`
}

// Attributes carries the product detail fields the storefront surfaces.
type Attributes struct {
	Material      string `json:"material,omitempty"`
	Color         string `json:"color,omitempty"`
	Style         string `json:"style,omitempty"`
	Brand         string `json:"brand,omitempty"`
	Origin        string `json:"origin,omitempty"`
	Room          string `json:"room,omitempty"`
	FurnitureType string `json:"furniture_type,omitempty"`
	SKU           string `json:"sku,omitempty"`
	InStock       *bool  `json:"in_stock,omitempty"`
	StockQuantity int    `json:"stock_quantity,omitempty"`
}

type Product struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Price             float64    `json:"price"`
	PriceAUD          float64    `json:"price_AUD,omitempty"`
	CompareAtPrice    float64    `json:"compare_at_price,omitempty"`
	CompareAtPriceAUD float64    `json:"compare_at_price_AUD,omitempty"`
	Categories        []string   `json:"categories"`
	CategoryIDs       []string   `json:"category_ids"`
	ProductURL        string     `json:"product_url,omitempty"`
	ShortDescription  string     `json:"short_description,omitempty"`
	Description       string     `json:"description,omitempty"`
	Image             string     `json:"image,omitempty"`
	Images            Images     `json:"images"`
	Attributes        Attributes `json:"attributes"`

	// Computed by Normalize.
	IsOnSale        bool `json:"isOnSale"`
	DiscountPercent int  `json:"discountPercent,omitempty"`
}

type Category struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ParentID     string `json:"parent_id,omitempty"`
	Image        string `json:"image,omitempty"`
	ProductCount int    `json:"product_count,omitempty"`
}

// Data is the document shape the catalog consumes, whether it comes from a
// static JSON file or a content API.
type Data struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
}
