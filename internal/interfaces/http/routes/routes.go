// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/chat"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// Services bundles the domain services the routes are built on
type Services struct {
	Catalog  *catalog.Service
	Cart     *cart.Store
	Checkout *checkout.Service
	Chat     *chat.Service
	PDF      *pdf.Service
}

// SetupRoutes wires all API routes onto the router group
func SetupRoutes(rg *gin.RouterGroup, services *Services) {
	SetupProductRoutes(rg, services)
	SetupCartRoutes(rg, services)
	SetupCheckoutRoutes(rg, services)
	SetupChatRoutes(rg, services)
}

// SetupProductRoutes sets up catalog related routes
func SetupProductRoutes(rg *gin.RouterGroup, services *Services) {
	productHandler := handlers.NewProductHandler(services.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/facets", productHandler.GetFacets)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes. All cart routes work on the
// guest session cookie.
func SetupCartRoutes(rg *gin.RouterGroup, services *Services) {
	cartHandler := handlers.NewCartHandler(services.Cart)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items", cartHandler.RemoveFromCart)
		cartGroup.POST("/promo", cartHandler.ApplyPromoCode)
		cartGroup.DELETE("/promo", cartHandler.RemovePromoCode)
	}
}

// SetupCheckoutRoutes sets up order placement and confirmation routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, services *Services) {
	checkoutHandler := handlers.NewCheckoutHandler(services.Checkout, services.PDF)

	rg.POST("/checkout", checkoutHandler.PlaceOrder)
	rg.GET("/checkout/confirmation", checkoutHandler.GetConfirmation)
	rg.GET("/orders/:number/receipt", checkoutHandler.DownloadReceipt)
}

// SetupChatRoutes sets up the AI assistant relay route
func SetupChatRoutes(rg *gin.RouterGroup, services *Services) {
	chatHandler := handlers.NewChatHandler(services.Chat)

	rg.POST("/chat", chatHandler.Chat)
}
