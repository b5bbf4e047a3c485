package gigachat

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"tourgen/internal/config"
)

// Fixed model parameters; these are constants of the system, not caller input.
const (
	temperature = 0.7
	maxTokens   = 4096
)

// ChatMessage represents a message in the chat
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents a request to the chat completions API
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatResponse represents a response from the chat completions API
type ChatResponse struct {
	Choices []struct {
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// TokenSource supplies a currently valid bearer token.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client issues chat completion requests against the GigaChat API.
// It performs no retries; retry policy belongs to the caller.
type Client struct {
	baseURL   string
	model     string
	tokens    TokenSource
	transport *Transport
	logger    *zap.Logger
}

// NewClient creates a completion client over the given transport and token
// source.
func NewClient(cfg config.GigaChatConfig, tokens TokenSource, transport *Transport, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.APIBaseURL, "/"),
		model:     cfg.Model,
		tokens:    tokens,
		transport: transport,
		logger:    logger,
	}
}

// Complete sends the prompt as a single user message and returns the first
// choice's text. A response with no choices yields an empty string without an
// error: an empty itinerary is passed through rather than invented.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt must not be empty")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(ChatRequest{
		Model:       c.model,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	headers := map[string]string{
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		"Authorization": "Bearer " + token,
	}

	resp, err := c.transport.Do(ctx, "chat/completions", http.MethodPost, c.baseURL+"/chat/completions", headers, body)
	if err != nil {
		return "", err
	}
	if resp.Status < 200 || resp.Status >= 300 {
		return "", &ProviderError{Op: "chat/completions", Status: resp.Status, Body: string(resp.Body)}
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(resp.Body, &chatResp); err != nil {
		return "", &MalformedResponseError{Op: "chat/completions", Err: err}
	}

	if len(chatResp.Choices) == 0 {
		c.logger.Warn("gigachat returned no choices")
		return "", nil
	}

	c.logger.Debug("gigachat completion received",
		zap.Int("prompt_tokens", chatResp.Usage.PromptTokens),
		zap.Int("completion_tokens", chatResp.Usage.CompletionTokens))

	return chatResp.Choices[0].Message.Content, nil
}
