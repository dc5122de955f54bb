// internal/domain/chat/fallback.go
package chat

import "strings"

// cannedRule pairs trigger keywords with a scripted reply. Rules are matched
// in order; the first rule with any matching keyword wins.
type cannedRule struct {
	keywords []string
	reply    string
}

var cannedRules = []cannedRule{
	{
		keywords: []string{"best sell", "popular"},
		reply:    "Our best-selling candles include our Vanilla Woods, Lavender Dreams, and Cinnamon Spice collections. These fragrances are customer favorites for their long-lasting scent and premium quality. Would you like to know more about any specific fragrance?",
	},
	{
		keywords: []string{"new arrival", "latest"},
		reply:    "We're excited about our new Opulent Woods collection featuring rich, grounding fragrances of textured woods and exotic spices. We also have seasonal florals perfect for spring. Check out our 'New Arrivals' section to see all the latest additions!",
	},
	{
		keywords: []string{"fragrance", "scent", "smell"},
		reply:    "We offer three main fragrance families: 🌸 Floral (delicate blooms and fresh petals), 🌲 Woody (rich woods and warm spices), and 🌿 Fresh (clean, crisp scents). What type of atmosphere are you looking to create?",
	},
	{
		keywords: []string{"price", "cost", "how much"},
		reply:    "Our candles range from $24.99 for our signature collection to $39.99 for premium limited editions. We currently have free shipping on orders over $75! Would you like me to help you find candles within a specific budget?",
	},
	{
		keywords: []string{"shipping", "delivery"},
		reply:    "We offer free shipping on orders over $75! Standard shipping takes 3-5 business days, and we also offer expedited 1-2 day shipping. All orders are carefully packaged to ensure your candles arrive safely.",
	},
	{
		keywords: []string{"return", "exchange"},
		reply:    "We have a 30-day return policy for unused candles in original packaging. If you're not completely satisfied with your purchase, we'll gladly process a return or exchange. Customer satisfaction is our top priority!",
	},
	{
		keywords: []string{"burn time", "how long"},
		reply:    "Our candles have excellent burn times: Small candles (8oz) burn for 45-50 hours, Medium candles (14oz) burn for 75-85 hours, and Large candles (22oz) burn for 110-130 hours. We use premium soy wax for clean, even burning.",
	},
	{
		keywords: []string{"ingredients", "natural", "soy"},
		reply:    "All our candles are made with 100% natural soy wax, cotton wicks, and premium fragrance oils. We're committed to eco-friendly, sustainable luxury - no paraffin, no toxins, just pure, clean-burning candles.",
	},
	{
		keywords: []string{"gift", "present"},
		reply:    "Our candles make perfect gifts! We offer beautiful gift wrapping and can include personalized messages. Consider our gift sets or let me help you choose the perfect fragrance based on the recipient's preferences.",
	},
	{
		keywords: []string{"store", "location", "visit"},
		reply:    "You can find our store locations using our Store Locator. We have boutique locations in major cities, or you can shop our full collection online with convenient home delivery.",
	},
	{
		keywords: []string{"hello", "hi", "hey"},
		reply:    "Hello! Welcome to Lumière Candles. I'm here to help you find the perfect candles for your space. Are you looking for a specific fragrance, or would you like recommendations based on your preferences?",
	},
	{
		keywords: []string{"thank"},
		reply:    "You're very welcome! I'm always here to help with any questions about our candles, orders, or anything else. Is there anything else I can assist you with today?",
	},
	{
		keywords: []string{"help", "assist"},
		reply:    "I'm here to help! I can assist you with:\n• Finding the perfect candle fragrance\n• Product information and recommendations\n• Order and shipping questions\n• Care instructions\n• Store locations\n\nWhat would you like to know more about?",
	},
}

const defaultCannedReply = "Thank you for your question! I'd love to help you find the perfect candles for your needs. Could you tell me more about what you're looking for? Are you interested in a specific fragrance family, or do you have questions about our products?"

// CannedResponse answers from the scripted keyword table when every provider
// is unavailable. Matching is case-insensitive substring.
func CannedResponse(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range cannedRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.reply
			}
		}
	}
	return defaultCannedReply
}
