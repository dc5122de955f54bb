// internal/domain/chat/fallback_test.go
package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCannedResponseKeywords(t *testing.T) {
	tests := []struct {
		message  string
		contains string
	}{
		{"What are your best sellers?", "best-selling candles"},
		{"anything popular right now?", "best-selling candles"},
		{"tell me about the latest arrivals", "Opulent Woods"},
		{"which scent should I pick", "fragrance families"},
		{"how much do they cost", "$24.99"},
		{"what about shipping?", "free shipping on orders over $75"},
		{"can I return this", "30-day return policy"},
		{"what's the burn time", "45-50 hours"},
		{"are they made with soy wax", "100% natural soy wax"},
		{"I need a gift for my mom", "perfect gifts"},
		{"where can I visit a store", "Store Locator"},
		{"hello there", "Welcome to Lumière Candles"},
		{"thanks so much", "You're very welcome"},
		{"I need help", "I'm here to help"},
	}

	for _, tt := range tests {
		reply := CannedResponse(tt.message)
		assert.Contains(t, reply, tt.contains, "message %q", tt.message)
	}
}

func TestCannedResponseIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, CannedResponse("SHIPPING options?"), CannedResponse("shipping options?"))
}

func TestCannedResponseDefault(t *testing.T) {
	reply := CannedResponse("xyzzy")
	assert.Equal(t, defaultCannedReply, reply)
}

func TestCannedResponseFirstRuleWins(t *testing.T) {
	// mentions both best sellers and shipping; the earlier rule answers
	reply := CannedResponse("do your best sellers have free shipping")
	assert.Contains(t, reply, "best-selling candles")
}
