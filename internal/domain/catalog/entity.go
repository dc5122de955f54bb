// internal/domain/catalog/entity.go
package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when a product id has no catalog entry
var ErrProductNotFound = errors.New("product not found")

// SizeOption represents one purchasable size of a product
type SizeOption struct {
	Size     string          `json:"size"`
	Price    decimal.Decimal `json:"price"`
	BurnTime string          `json:"burn_time"`
}

// Product represents a catalog entry. The catalog is read-only at runtime;
// products are supplied by the catalog document and never mutated.
type Product struct {
	ID              int              `json:"id"`
	Title           string           `json:"title"`
	Slug            string           `json:"slug"`
	Description     string           `json:"description"`
	Price           decimal.Decimal  `json:"price"`
	CompareAtPrice  *decimal.Decimal `json:"compare_at_price"`
	Rating          float64          `json:"rating"`
	ReviewCount     int              `json:"review_count"`
	Images          []string         `json:"images"`
	Tags            []string         `json:"tags"`
	Category        string           `json:"category"`
	FragranceFamily string           `json:"fragrance_family"`
	FragranceNotes  []string         `json:"fragrance_notes"`
	SizeOptions     []SizeOption     `json:"size_options"`
	Stock           int              `json:"stock"`
	Featured        bool             `json:"featured"`
	NewArrival      bool             `json:"new_arrival"`
}

// Document is the wire format of the catalog source: { "products": [...] }
type Document struct {
	Products []Product `json:"products"`
}

// OnSale reports whether the product carries a higher reference price
func (p *Product) OnSale() bool {
	return p.CompareAtPrice != nil && p.CompareAtPrice.GreaterThan(p.Price)
}

// PriceForSize resolves the unit price for a size label. The second return
// value is false when no size option matches; callers fall back to the base
// price in that case.
func (p *Product) PriceForSize(size string) (decimal.Decimal, bool) {
	for _, opt := range p.SizeOptions {
		if opt.Size == size {
			return opt.Price, true
		}
	}
	return p.Price, false
}

// FirstImage returns the primary product image
func (p *Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
