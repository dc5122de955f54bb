// internal/interfaces/http/handlers/handlers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/chat"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// apiClient drives the API through the router while carrying the session
// cookie between requests, like a browser would
type apiClient struct {
	t       *testing.T
	engine  *gin.Engine
	cookies []*http.Cookie
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()

	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{}
	cfg.Chat.MaxMessageLen = 1000

	catalogService := catalog.NewService(cfg, log)
	require.NoError(t, catalogService.Load(context.Background()))

	kv := storage.NewMemoryStore()
	cartStore := cart.NewStore(kv, catalogService, log)

	engine := gin.New()
	routes.SetupRoutes(engine.Group("/api/v1"), &routes.Services{
		Catalog:  catalogService,
		Cart:     cartStore,
		Checkout: checkout.NewService(kv, cartStore, log),
		Chat:     chat.NewService(cfg, log),
		PDF:      pdf.NewService(cfg),
	})

	return &apiClient{t: t, engine: engine}
}

func (c *apiClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	c.engine.ServeHTTP(rec, req)

	if cookies := rec.Result().Cookies(); len(cookies) > 0 {
		c.cookies = cookies
	}

	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestGetProducts(t *testing.T) {
	client := newAPIClient(t)

	rec := client.do(http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, float64(12), data["total"])
	assert.Equal(t, false, data["has_more"])
	assert.Len(t, data["products"], 12)
}

func TestGetProductsFilteredAndSorted(t *testing.T) {
	client := newAPIClient(t)

	rec := client.do(http.MethodGet, "/api/v1/products?category=new&sort=price-low", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, float64(5), data["total"])
}

func TestGetProductNotFound(t *testing.T) {
	client := newAPIClient(t)

	rec := client.do(http.MethodGet, "/api/v1/products/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartFlowThroughAPI(t *testing.T) {
	client := newAPIClient(t)

	rec := client.do(http.MethodPost, "/api/v1/cart/items", map[string]interface{}{
		"product_id": 1,
		"size":       "Small (6 oz)",
		"quantity":   2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = client.do(http.MethodGet, "/api/v1/cart/count", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeData(t, rec)["count"])

	rec = client.do(http.MethodPost, "/api/v1/cart/promo", map[string]interface{}{
		"code": "SAVE10",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeData(t, rec)["success"])

	rec = client.do(http.MethodDelete, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = client.do(http.MethodGet, "/api/v1/cart/count", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeData(t, rec)["count"])
}

func TestAddToCartUnknownProduct(t *testing.T) {
	client := newAPIClient(t)

	rec := client.do(http.MethodPost, "/api/v1/cart/items", map[string]interface{}{
		"product_id": 999,
		"size":       "Small (6 oz)",
		"quantity":   1,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutThroughAPI(t *testing.T) {
	client := newAPIClient(t)

	rec := client.do(http.MethodPost, "/api/v1/cart/items", map[string]interface{}{
		"product_id": 1,
		"size":       "Small (6 oz)",
		"quantity":   3,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = client.do(http.MethodPost, "/api/v1/checkout", map[string]interface{}{
		"customer": map[string]string{
			"email":      "jordan@example.com",
			"first_name": "Jordan",
			"last_name":  "Reyes",
		},
		"shipping": map[string]string{
			"address":  "12 Candle Ct",
			"city":     "Portland",
			"state":    "OR",
			"zip_code": "97201",
			"method":   "standard",
		},
		"payment": map[string]string{"method": "card"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	orderNumber := decodeData(t, rec)["order_number"]
	assert.NotEmpty(t, orderNumber)

	// the confirmation record is one-shot
	rec = client.do(http.MethodGet, "/api/v1/checkout/confirmation", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, orderNumber, decodeData(t, rec)["order_number"])

	rec = client.do(http.MethodGet, "/api/v1/checkout/confirmation", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutEmptyCart(t *testing.T) {
	client := newAPIClient(t)

	rec := client.do(http.MethodPost, "/api/v1/checkout", map[string]interface{}{
		"customer": map[string]string{
			"email":      "jordan@example.com",
			"first_name": "Jordan",
			"last_name":  "Reyes",
		},
		"shipping": map[string]string{
			"address":  "12 Candle Ct",
			"city":     "Portland",
			"state":    "OR",
			"zip_code": "97201",
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatValidation(t *testing.T) {
	client := newAPIClient(t)

	rec := client.do(http.MethodPost, "/api/v1/chat", map[string]interface{}{
		"message": "",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
