package openrouter

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"quizforge/internal/domain"
)

// Client calls a single OpenRouter-hosted chat model through the
// OpenAI-compatible completions API. It implements domain.TextGenerator;
// primary/fallback selection lives above this layer.
type Client struct {
	api   *openai.Client
	model string
}

type Options struct {
	BaseURL  string
	APIKey   string
	Model    string
	Referer  string
	AppTitle string
}

// headerTransport attaches the optional OpenRouter attribution headers to
// every outgoing request.
type headerTransport struct {
	base    http.RoundTripper
	referer string
	title   string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.referer != "" {
		req.Header.Set("HTTP-Referer", t.referer)
	}
	if t.title != "" {
		req.Header.Set("X-Title", t.title)
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

func NewClient(opts Options) *Client {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	cfg.HTTPClient = &http.Client{
		Transport: &headerTransport{referer: opts.Referer, title: opts.AppTitle},
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: opts.Model,
	}
}

func (c *Client) Name() string {
	return c.model
}

// Complete sends the prompt as a single user message and returns the raw
// assistant reply.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model %s returned no choices", c.model)
	}
	return resp.Choices[0].Message.Content, nil
}

var _ domain.TextGenerator = (*Client)(nil)
