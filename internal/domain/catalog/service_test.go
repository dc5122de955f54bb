// internal/domain/catalog/service_test.go
package catalog

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func newService(t *testing.T, sourceURL string) *Service {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{}
	cfg.Catalog.SourceURL = sourceURL
	return NewService(cfg, log)
}

func TestLoadEmbeddedFallbackWhenNoSourceConfigured(t *testing.T) {
	svc := newService(t, "")
	require.NoError(t, svc.Load(context.Background()))

	assert.True(t, svc.UsingFallback())
	assert.Len(t, svc.Products(), 12)
}

func TestLoadFromRemoteSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"id":1,"title":"Test Candle","price":29.99,"stock":5}]}`))
	}))
	defer server.Close()

	svc := newService(t, server.URL)
	require.NoError(t, svc.Load(context.Background()))

	assert.False(t, svc.UsingFallback())
	require.Len(t, svc.Products(), 1)
	assert.Equal(t, "Test Candle", svc.Products()[0].Title)
}

func TestLoadFallsBackWhenRemoteFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newService(t, server.URL)
	require.NoError(t, svc.Load(context.Background()))

	assert.True(t, svc.UsingFallback())
	assert.Len(t, svc.Products(), 12)
}

func TestLoadFallsBackWhenRemoteReturnsEmptyCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":[]}`))
	}))
	defer server.Close()

	svc := newService(t, server.URL)
	require.NoError(t, svc.Load(context.Background()))

	assert.True(t, svc.UsingFallback())
}

func TestGetProduct(t *testing.T) {
	svc := newService(t, "")
	require.NoError(t, svc.Load(context.Background()))

	product, err := svc.GetProduct(1)
	require.NoError(t, err)
	assert.Equal(t, "Autumn Spice", product.Title)

	_, err = svc.GetProduct(999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFragranceFamiliesAreSortedWithCounts(t *testing.T) {
	svc := newService(t, "")
	require.NoError(t, svc.Load(context.Background()))

	families := svc.FragranceFamilies()
	require.NotEmpty(t, families)

	total := 0
	for i, f := range families {
		total += f.Count
		if i > 0 {
			assert.LessOrEqual(t, families[i-1].Value, f.Value)
		}
	}
	assert.Equal(t, len(svc.Products()), total)
}

func TestCategoryCounts(t *testing.T) {
	svc := newService(t, "")
	require.NoError(t, svc.Load(context.Background()))

	counts := map[string]int{}
	for _, c := range svc.CategoryCounts() {
		counts[c.Value] = c.Count
	}

	assert.Equal(t, len(svc.Products()), counts["all"])
	assert.Equal(t, 5, counts["new"])
	assert.Equal(t, 10, counts["bestsellers"])
}

func TestPriceForSize(t *testing.T) {
	svc := newService(t, "")
	require.NoError(t, svc.Load(context.Background()))

	product, err := svc.GetProduct(1)
	require.NoError(t, err)

	price, ok := product.PriceForSize("Large (16 oz)")
	assert.True(t, ok)
	assert.Equal(t, "68", price.String())

	price, ok = product.PriceForSize("Nonexistent")
	assert.False(t, ok)
	assert.True(t, price.Equal(product.Price))
}
