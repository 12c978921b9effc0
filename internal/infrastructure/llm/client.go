package llm

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
	openai "github.com/sashabaranov/go-openai"
)

// Client wraps an OpenAI-compatible chat-completions endpoint. The base URL is
// configurable so the same client serves Groq or OpenAI.
type Client struct {
	api   *openai.Client
	model string
	debug bool
}

// NewClient creates a chat client for the given endpoint and model.
func NewClient(apiKey, baseURL, model string) *Client {
	return NewClientWithTimeout(apiKey, baseURL, model, 60*time.Second)
}

// NewClientWithTimeout creates a chat client with an explicit per-request
// HTTP timeout.
func NewClientWithTimeout(apiKey, baseURL, model string, timeout time.Duration) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	if timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// SetDebug enables verbose completion logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Complete sends one system+user exchange and returns the model's raw text.
// Callers own parsing; the reply is never trusted structurally.
func (c *Client) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: user,
	})

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		log.Printf("[llm] completion error: %v", err)
		return "", fmt.Errorf("%w: %v", domain.ErrLLMFailure, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", domain.ErrLLMFailure)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if c.debug {
		log.Printf("[llm] model=%s prompt=%d chars reply=%d chars", c.model, len(system)+len(user), len(content))
	}

	return content, nil
}
