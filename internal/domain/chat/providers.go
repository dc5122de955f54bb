// internal/domain/chat/providers.go
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	openaiEndpoint    = "https://api.openai.com/v1/chat/completions"
	anthropicEndpoint = "https://api.anthropic.com/v1/messages"
	geminiEndpoint    = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

	anthropicVersion = "2023-06-01"

	maxResponseTokens = 500
	temperature       = 0.7

	// How many prior conversation turns ride along with each request
	contextWindow       = 10
	geminiContextWindow = 5
)

// Provider completes a chat turn against one upstream AI service
type Provider interface {
	Name() string
	Complete(ctx context.Context, message string, conversation []Message) (string, error)
}

// lastN returns up to n trailing messages from the conversation
func lastN(conversation []Message, n int) []Message {
	if len(conversation) <= n {
		return conversation
	}
	return conversation[len(conversation)-n:]
}

// postJSON issues the request and decodes the provider's reply into out. Any
// non-2xx status is an error so the caller can fall through to the next
// provider.
func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// OpenAIProvider talks to the chat completions API with the system prompt as
// a leading system message
type OpenAIProvider struct {
	client *http.Client
	apiKey string
	model  string
}

func NewOpenAIProvider(client *http.Client, apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{client: client, apiKey: apiKey, model: model}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Complete(ctx context.Context, message string, conversation []Message) (string, error) {
	messages := make([]Message, 0, contextWindow+2)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	messages = append(messages, lastN(conversation, contextWindow)...)
	messages = append(messages, Message{Role: "user", Content: message})

	body := map[string]interface{}{
		"model":       p.model,
		"messages":    messages,
		"max_tokens":  maxResponseTokens,
		"temperature": temperature,
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	headers := map[string]string{"Authorization": "Bearer " + p.apiKey}
	if err := postJSON(ctx, p.client, openaiEndpoint, headers, body, &result); err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}

	return result.Choices[0].Message.Content, nil
}

// AnthropicProvider talks to the messages API. The API has no system message
// in the conversation array, so the prompt is inlined into the final user
// turn.
type AnthropicProvider struct {
	client *http.Client
	apiKey string
	model  string
}

func NewAnthropicProvider(client *http.Client, apiKey, model string) *AnthropicProvider {
	return &AnthropicProvider{client: client, apiKey: apiKey, model: model}
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

func (p *AnthropicProvider) Complete(ctx context.Context, message string, conversation []Message) (string, error) {
	messages := make([]Message, 0, contextWindow+1)
	messages = append(messages, lastN(conversation, contextWindow)...)
	messages = append(messages, Message{
		Role:    "user",
		Content: fmt.Sprintf("%s\n\nUser: %s", systemPrompt, message),
	})

	body := map[string]interface{}{
		"model":      p.model,
		"max_tokens": maxResponseTokens,
		"messages":   messages,
	}

	var result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}

	headers := map[string]string{
		"x-api-key":         p.apiKey,
		"anthropic-version": anthropicVersion,
	}
	if err := postJSON(ctx, p.client, anthropicEndpoint, headers, body, &result); err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	if len(result.Content) == 0 {
		return "", fmt.Errorf("anthropic: empty response")
	}

	return result.Content[0].Text, nil
}

// GeminiProvider talks to the generateContent API. The key travels as a query
// parameter and the whole exchange is flattened into a single text part.
type GeminiProvider struct {
	client *http.Client
	apiKey string
}

func NewGeminiProvider(client *http.Client, apiKey string) *GeminiProvider {
	return &GeminiProvider{client: client, apiKey: apiKey}
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Complete(ctx context.Context, message string, conversation []Message) (string, error) {
	contextJSON, err := json.Marshal(lastN(conversation, geminiContextWindow))
	if err != nil {
		return "", fmt.Errorf("gemini: failed to encode context: %w", err)
	}

	body := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": fmt.Sprintf("%s\n\nConversation context: %s\n\nUser: %s", systemPrompt, contextJSON, message)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"maxOutputTokens": maxResponseTokens,
			"temperature":     temperature,
		},
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	url := geminiEndpoint + "?key=" + p.apiKey
	if err := postJSON(ctx, p.client, url, nil, body, &result); err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
