package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the storefront's env-driven configuration. A .env file in the
// working directory is honored for local development; real env vars win.
type Config struct {
	Port    string
	DataDir string

	// Cart pricing.
	CartCurrency          string
	TaxRate               float64
	FlatShippingFee       float64
	FreeShippingThreshold float64

	// Catalog source: CatalogURL (content API) takes precedence over
	// CatalogPath (static JSON file) when both are set.
	CatalogPath    string
	CatalogURL     string
	CatalogTimeout time.Duration

	// Simulated checkout processing time.
	CheckoutDelay time.Duration

	CORSAllowOrigins []string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:    getenv("PORT", "8080"),
		DataDir: getenv("DATA_DIR", "data"),

		CartCurrency:          getenv("CART_CURRENCY", "AUD"),
		TaxRate:               parseFloat(getenv("TAX_RATE", "0.10"), 0.10),
		FlatShippingFee:       parseFloat(getenv("SHIPPING_FLAT_FEE", "100000"), 100000),
		FreeShippingThreshold: parseFloat(getenv("FREE_SHIPPING_THRESHOLD", "1000000"), 1000000),

		CatalogPath:    getenv("CATALOG_PATH", "data/products.json"),
		CatalogURL:     getenv("CATALOG_URL", ""),
		CatalogTimeout: parseDuration(getenv("CATALOG_TIMEOUT", "10s"), 10*time.Second),

		CheckoutDelay: parseDuration(getenv("CHECKOUT_DELAY", "2s"), 2*time.Second),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseFloat(v string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return def
	}
	return f
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
