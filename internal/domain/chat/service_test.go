// internal/domain/chat/service_test.go
package chat

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

type stubProvider struct {
	name  string
	reply string
	err   error
	calls int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Complete(ctx context.Context, message string, conversation []Message) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func newStubService(providers ...Provider) *Service {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &Service{
		providers: providers,
		maxLen:    1000,
		log:       log,
	}
}

func TestRespondUsesPrimaryProvider(t *testing.T) {
	primary := &stubProvider{name: "openai", reply: "from primary"}
	secondary := &stubProvider{name: "anthropic", reply: "from secondary"}
	svc := newStubService(primary, secondary)

	resp, err := svc.Respond(context.Background(), &Request{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "from primary", resp.Response)
	assert.Equal(t, 0, secondary.calls)
}

func TestRespondFallsThroughOnFailure(t *testing.T) {
	primary := &stubProvider{name: "openai", err: errors.New("upstream down")}
	secondary := &stubProvider{name: "anthropic", reply: "from secondary"}
	svc := newStubService(primary, secondary)

	resp, err := svc.Respond(context.Background(), &Request{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "from secondary", resp.Response)
	assert.Equal(t, 1, primary.calls)
}

func TestRespondCannedWhenAllProvidersFail(t *testing.T) {
	failing := errors.New("upstream down")
	svc := newStubService(
		&stubProvider{name: "openai", err: failing},
		&stubProvider{name: "anthropic", err: failing},
		&stubProvider{name: "gemini", err: failing},
	)

	resp, err := svc.Respond(context.Background(), &Request{Message: "what about shipping?"})
	require.NoError(t, err)
	assert.Contains(t, resp.Response, "free shipping on orders over $75")
}

func TestRespondValidation(t *testing.T) {
	svc := newStubService(&stubProvider{name: "openai", reply: "ok"})

	_, err := svc.Respond(context.Background(), &Request{Message: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.Respond(context.Background(), &Request{Message: strings.Repeat("a", 1001)})
	assert.ErrorIs(t, err, ErrMessageTooLong)
}

func TestNewServiceOrdersProvidersByConfig(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.Config{}
	cfg.Chat.Provider = "gemini"
	cfg.Chat.MaxMessageLen = 1000

	svc := NewService(cfg, log)
	require.Len(t, svc.providers, 3)
	assert.Equal(t, "gemini", svc.providers[0].Name())
}

func TestLastN(t *testing.T) {
	conversation := []Message{
		{Role: "user", Content: "one"},
		{Role: "assistant", Content: "two"},
		{Role: "user", Content: "three"},
	}

	trimmed := lastN(conversation, 2)
	require.Len(t, trimmed, 2)
	assert.Equal(t, "two", trimmed[0].Content)

	assert.Len(t, lastN(conversation, 10), 3)
}
