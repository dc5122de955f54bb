// internal/interfaces/http/handlers/chat.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/chat"
)

// ChatHandler handles the AI assistant relay endpoint
type ChatHandler struct {
	chatService *chat.Service
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *chat.Service) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Message is required",
		})
		return
	}

	resp, err := h.chatService.Respond(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Message is required",
			})
		case errors.Is(err, chat.ErrMessageTooLong):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Message too long",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "I apologize, but I'm having trouble processing your request right now. Please try again in a moment or contact our customer service team for immediate assistance.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Chat response generated successfully",
		"data":    resp,
	})
}
