// internal/domain/chat/entity.go
package chat

import "errors"

var (
	// ErrEmptyMessage is returned when the chat message is missing
	ErrEmptyMessage = errors.New("message is required")

	// ErrMessageTooLong is returned when the chat message exceeds the limit
	ErrMessageTooLong = errors.New("message too long")

	// ErrAllProvidersFailed signals that every configured provider errored
	ErrAllProvidersFailed = errors.New("all AI providers failed")
)

// Message is one turn of the conversation, using the OpenAI-style role names
// shared by all providers
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries the user's message plus prior conversation turns
type Request struct {
	Message      string    `json:"message"`
	Conversation []Message `json:"conversation"`
}

// Response wraps the assistant's reply
type Response struct {
	Response string `json:"response"`
}
