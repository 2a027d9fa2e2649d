// Package openai provides embedding and LLM adapters for the OpenAI
// API and any compatible endpoint. The mentor pipeline typically runs
// against a local inference server (LM Studio, vLLM) exposing the same
// wire format, so the base URL defaults to localhost rather than the
// OpenAI cloud.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default configuration values.
const (
	// DefaultBaseURL points at a local OpenAI-compatible server.
	DefaultBaseURL = "http://localhost:1234/v1"

	DefaultTimeout = 60 * time.Second
)

// Config holds shared configuration for the OpenAI-compatible client.
type Config struct {
	// BaseURL is the API base URL (default: http://localhost:1234/v1).
	// Point it at https://api.openai.com/v1 for the OpenAI cloud.
	BaseURL string

	// APIKey is the bearer token. Local servers usually accept any
	// value; the OpenAI cloud requires a real key.
	APIKey string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// Client is the shared HTTP client for the embedding and LLM services.
type Client struct {
	httpc   *http.Client
	baseURL string
	apiKey  string
}

// NewClient creates a client for an OpenAI-compatible endpoint.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		httpc:   &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}

// apiError is the error object embedded in API responses.
type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// postJSON sends a JSON request and decodes the JSON response into out.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	jsonBody, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("openai error (status %d): %s", resp.StatusCode, string(body))
	}
	return nil
}

// ping checks connectivity against /models without running inference.
func (c *Client) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("openai: failed to create ping request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("openai: API returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("openai: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
