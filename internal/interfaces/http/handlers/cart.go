// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartStore *cart.Store
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartStore *cart.Store) *CartHandler {
	return &CartHandler{
		cartStore: cartStore,
	}
}

// AddToCartRequest is the payload for POST /cart/items
type AddToCartRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest is the payload for PUT /cart/items
type UpdateCartItemRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// RemoveCartItemRequest is the payload for DELETE /cart/items
type RemoveCartItemRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Size      string `json:"size"`
}

// PromoCodeRequest is the payload for POST /cart/promo
type PromoCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	snapshot, err := h.cartStore.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    snapshot,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	err := h.cartStore.AddItem(c.Request.Context(), sessionID, req.ProductID, req.Size, req.Quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	h.respondWithCart(c, sessionID, "Item added to cart")
}

// UpdateCartItem handles PUT /cart/items
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	err := h.cartStore.UpdateQuantity(c.Request.Context(), sessionID, req.ProductID, req.Size, req.Quantity)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Item not found in cart",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	h.respondWithCart(c, sessionID, "Cart item updated")
}

// RemoveFromCart handles DELETE /cart/items
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req RemoveCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	_, err := h.cartStore.RemoveItem(c.Request.Context(), sessionID, req.ProductID, req.Size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove item from cart",
		})
		return
	}

	h.respondWithCart(c, sessionID, "Item removed from cart")
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	if err := h.cartStore.ClearCart(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	h.respondWithCart(c, sessionID, "Cart cleared")
}

// GetCartCount handles GET /cart/count, a lightweight endpoint for the
// header badge
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	count, err := h.cartStore.GetItemCount(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart count",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": count,
		},
	})
}

// ApplyPromoCode handles POST /cart/promo. Rejected codes are a normal
// outcome, reported in the body rather than the status code.
func (h *CartHandler) ApplyPromoCode(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req PromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.cartStore.ApplyPromoCode(c.Request.Context(), sessionID, req.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to apply promo code",
		})
		return
	}

	snapshot, err := h.cartStore.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
		"data": gin.H{
			"success": result.Success,
			"cart":    snapshot,
		},
	})
}

// RemovePromoCode handles DELETE /cart/promo
func (h *CartHandler) RemovePromoCode(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	if err := h.cartStore.RemovePromoCode(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove promo code",
		})
		return
	}

	h.respondWithCart(c, sessionID, "Promo code removed")
}

// respondWithCart returns the fresh cart snapshot after a mutation
func (h *CartHandler) respondWithCart(c *gin.Context, sessionID, message string) {
	snapshot, err := h.cartStore.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    snapshot,
	})
}
