// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// CheckoutHandler handles order placement and confirmation endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	pdfService      *pdf.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, pdfService *pdf.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		pdfService:      pdfService,
	}
}

// PlaceOrderRequest is the payload for POST /checkout
type PlaceOrderRequest struct {
	Customer checkout.CustomerInfo `json:"customer" binding:"required"`
	Shipping checkout.ShippingInfo `json:"shipping" binding:"required"`
	Payment  checkout.PaymentInfo  `json:"payment"`
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	order, err := h.checkoutService.PlaceOrder(c.Request.Context(), sessionID, req.Customer, req.Shipping, req.Payment)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cannot place order with empty cart",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    order,
	})
}

// GetConfirmation handles GET /checkout/confirmation. The order record is
// one-shot: a second request after a successful read finds nothing.
func (h *CheckoutHandler) GetConfirmation(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	order, err := h.checkoutService.ConsumeLastOrder(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, checkout.ErrNoRecentOrder) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No recent order found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order confirmation retrieved successfully",
		"data":    order,
	})
}

// DownloadReceipt handles GET /orders/:number/receipt, streaming a PDF
// receipt for a placed order
func (h *CheckoutHandler) DownloadReceipt(c *gin.Context) {
	orderNumber := c.Param("number")

	order, err := h.checkoutService.GetOrder(c.Request.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, checkout.ErrNoRecentOrder) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	receipt, err := h.pdfService.GenerateReceipt(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", order.OrderNumber))
	c.Data(http.StatusOK, "application/pdf", receipt.Bytes())
}
