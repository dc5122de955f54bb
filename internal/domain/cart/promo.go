// internal/domain/cart/promo.go
package cart

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PromoKind distinguishes percentage discounts from free-shipping codes
type PromoKind string

const (
	PromoPercentage   PromoKind = "percentage"
	PromoFreeShipping PromoKind = "freeShipping"
)

// Promo is an entry in the fixed promo code registry
type Promo struct {
	Code     string          `json:"code"`
	Kind     PromoKind       `json:"kind"`
	Percent  decimal.Decimal `json:"percent"`
	MinOrder decimal.Decimal `json:"min_order"`
}

// promoRegistry is the fixed in-process table of valid codes. Note that the
// freeShipping kind carries a 0% discount and does not zero the shipping
// cost on its own: shipping only goes free via the subtotal tier. FREESHIP75
// therefore has no numeric effect beyond its own validation — a known quirk
// of the reference pricing rules, preserved intentionally.
var promoRegistry = map[string]Promo{
	"FREESHIP75": {Code: "FREESHIP75", Kind: PromoFreeShipping, Percent: decimal.Zero, MinOrder: decimal.NewFromInt(75)},
	"SAVE10":     {Code: "SAVE10", Kind: PromoPercentage, Percent: decimal.NewFromInt(10), MinOrder: decimal.Zero},
	"SAVE20":     {Code: "SAVE20", Kind: PromoPercentage, Percent: decimal.NewFromInt(20), MinOrder: decimal.NewFromInt(100)},
	"WELCOME15":  {Code: "WELCOME15", Kind: PromoPercentage, Percent: decimal.NewFromInt(15), MinOrder: decimal.NewFromInt(50)},
}

// LookupPromo resolves a code case-insensitively against the registry
func LookupPromo(code string) (Promo, bool) {
	promo, ok := promoRegistry[strings.ToUpper(strings.TrimSpace(code))]
	return promo, ok
}
