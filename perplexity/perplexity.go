// Package perplexity implements the ChatCompleter interface against the
// Perplexity API, which speaks the OpenAI chat-completions protocol.
package perplexity

import (
	"context"
	"fmt"
	"net/http"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/blessedrishabh/tabeval/api"
)

// DefaultBaseURL is the Perplexity API endpoint.
const DefaultBaseURL = "https://api.perplexity.ai"

// Config carries the client configuration. It is constructed once and
// passed by reference; nothing here is mutated after NewClient.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client wraps an OpenAI-compatible SDK client to implement ChatCompleter.
type Client struct {
	client openai.Client
}

// NewClient creates a Perplexity chat-completion client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		client: openai.NewClient(
			option.WithBaseURL(baseURL),
			option.WithAPIKey(cfg.APIKey),
			option.WithHTTPClient(&http.Client{Timeout: timeout}),
		),
	}
}

// Complete implements ChatCompleter.Complete with a single user message.
func (c *Client) Complete(ctx context.Context, req api.ChatRequest) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}

// Verify that Client implements ChatCompleter
var _ api.ChatCompleter = (*Client)(nil)
