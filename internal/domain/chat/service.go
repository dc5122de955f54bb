// internal/domain/chat/service.go
package chat

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
)

// Service proxies chat turns to the configured AI provider, falling through
// the remaining providers on failure and finally to canned responses so the
// assistant always answers.
type Service struct {
	providers []Provider
	maxLen    int
	log       *logrus.Logger
}

// NewService builds the provider chain from configuration. The configured
// primary provider goes first; the others follow in registry order as
// fallbacks.
func NewService(cfg *config.Config, log *logrus.Logger) *Service {
	client := &http.Client{Timeout: cfg.Chat.RequestTimeout}

	all := []Provider{
		NewOpenAIProvider(client, cfg.Chat.OpenAIKey, cfg.Chat.OpenAIModel),
		NewAnthropicProvider(client, cfg.Chat.AnthropicKey, cfg.Chat.AnthropicModel),
		NewGeminiProvider(client, cfg.Chat.GeminiKey),
	}

	ordered := make([]Provider, 0, len(all))
	for _, p := range all {
		if p.Name() == cfg.Chat.Provider {
			ordered = append(ordered, p)
			break
		}
	}
	for _, p := range all {
		if p.Name() != cfg.Chat.Provider {
			ordered = append(ordered, p)
		}
	}

	return &Service{
		providers: ordered,
		maxLen:    cfg.Chat.MaxMessageLen,
		log:       log,
	}
}

// Validate checks the incoming request against the message limits
func (s *Service) Validate(req *Request) error {
	if strings.TrimSpace(req.Message) == "" {
		return ErrEmptyMessage
	}
	if len(req.Message) > s.maxLen {
		return ErrMessageTooLong
	}
	return nil
}

// Respond walks the provider chain and returns the first successful reply.
// When every provider fails the scripted keyword responses take over, so
// this never returns an error for a valid request.
func (s *Service) Respond(ctx context.Context, req *Request) (*Response, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	for _, provider := range s.providers {
		reply, err := provider.Complete(ctx, req.Message, req.Conversation)
		if err != nil {
			s.log.WithField("provider", provider.Name()).WithError(err).
				Warn("AI provider failed, trying fallback")
			continue
		}
		return &Response{Response: reply}, nil
	}

	s.log.Warn("All AI providers failed, using canned response")
	return &Response{Response: CannedResponse(req.Message)}, nil
}
