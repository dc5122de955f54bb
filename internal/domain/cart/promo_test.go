// internal/domain/cart/promo_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupPromoCaseInsensitive(t *testing.T) {
	for _, code := range []string{"save10", "SAVE10", "Save10", "  save10  "} {
		promo, ok := LookupPromo(code)
		assert.True(t, ok, "code %q should resolve", code)
		assert.Equal(t, "SAVE10", promo.Code)
		assert.Equal(t, PromoPercentage, promo.Kind)
		assert.Equal(t, "10", promo.Percent.String())
	}
}

func TestLookupPromoUnknownCode(t *testing.T) {
	_, ok := LookupPromo("HALFOFF")
	assert.False(t, ok)
}

func TestPromoRegistryEntries(t *testing.T) {
	tests := []struct {
		code     string
		kind     PromoKind
		percent  string
		minOrder string
	}{
		{"FREESHIP75", PromoFreeShipping, "0", "75"},
		{"SAVE10", PromoPercentage, "10", "0"},
		{"SAVE20", PromoPercentage, "20", "100"},
		{"WELCOME15", PromoPercentage, "15", "50"},
	}

	for _, tt := range tests {
		promo, ok := LookupPromo(tt.code)
		assert.True(t, ok, tt.code)
		assert.Equal(t, tt.kind, promo.Kind)
		assert.Equal(t, tt.percent, promo.Percent.String())
		assert.Equal(t, tt.minOrder, promo.MinOrder.String())
	}
}
