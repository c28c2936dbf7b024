package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolio-generator/internal/config"
)

// Client talks to an OpenAI-compatible chat-completions endpoint. Every
// call is fire-and-forget: one request, no retry, no backoff. Callers
// degrade to deterministic fallbacks when a call fails.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	imageBase  string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: time.Duration(cfg.LLM.TimeoutSec) * time.Second},
		baseURL:    cfg.LLM.BaseURL,
		apiKey:     cfg.LLM.APIKey,
		model:      cfg.LLM.Model,
		imageBase:  cfg.ImageServiceURL,
	}
}

// EnrichmentError wraps any upstream failure of an enrichment capability.
// It never propagates past the orchestrator boundary.
type EnrichmentError struct {
	Op  string
	Err error
}

func (e *EnrichmentError) Error() string {
	return "enrichment " + e.Op + ": " + e.Err.Error()
}

func (e *EnrichmentError) Unwrap() error { return e.Err }

// ErrEmptyInput reports a violated capability precondition.
var ErrEmptyInput = errors.New("input text is empty")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete issues a single chat-completion request and returns the first
// choice's content.
func (c *Client) complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion service returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return "", fmt.Errorf("completion service returned non-json content: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("completion service returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
