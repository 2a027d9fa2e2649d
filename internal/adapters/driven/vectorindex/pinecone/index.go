// Package pinecone provides a vector index adapter for a Pinecone
// serverless index, using its data-plane REST API.
package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// DefaultTimeout is the request timeout used when none is configured.
const DefaultTimeout = 30 * time.Second

// Config holds configuration for the Pinecone index adapter.
type Config struct {
	// Host is the index host URL, e.g.
	// https://profiles-abc123.svc.us-east-1.pinecone.io.
	Host string

	// APIKey is the Pinecone API key (required).
	APIKey string

	// Namespace is the optional namespace within the index.
	Namespace string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Index provides vector storage and similarity search against a
// Pinecone index host.
type Index struct {
	client    *http.Client
	host      string
	apiKey    string
	namespace string
}

// vector is the Pinecone vector format for upserts.
type vector struct {
	ID       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// upsertRequest is the /vectors/upsert request format.
type upsertRequest struct {
	Vectors   []vector `json:"vectors"`
	Namespace string   `json:"namespace,omitempty"`
}

// queryRequest is the /query request format.
type queryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
	Namespace       string    `json:"namespace,omitempty"`
}

// queryResponse is the /query response format.
type queryResponse struct {
	Matches []struct {
		ID       string         `json:"id"`
		Score    float64        `json:"score"`
		Metadata map[string]any `json:"metadata"`
	} `json:"matches"`
}

// apiError is the Pinecone error response format.
type apiError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// NewIndex creates a new Pinecone index adapter.
func NewIndex(cfg Config) (*Index, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("pinecone: index host is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("pinecone: API key is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Index{
		client:    &http.Client{Timeout: cfg.Timeout},
		host:      strings.TrimSuffix(cfg.Host, "/"),
		apiKey:    cfg.APIKey,
		namespace: cfg.Namespace,
	}, nil
}

// Upsert writes the given profiles into the index.
func (idx *Index) Upsert(ctx context.Context, profiles []domain.IndexedProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	vectors := make([]vector, len(profiles))
	for i, p := range profiles {
		vectors[i] = vector{ID: p.ID, Values: p.Vector, Metadata: p.Metadata}
	}

	reqBody := upsertRequest{Vectors: vectors, Namespace: idx.namespace}
	if err := idx.send(ctx, "/vectors/upsert", reqBody, nil); err != nil {
		return fmt.Errorf("pinecone upsert: %w", err)
	}
	return nil
}

// Query returns the topK nearest vectors with their metadata, ordered
// by descending similarity.
func (idx *Index) Query(ctx context.Context, vec []float32, topK int) ([]domain.RetrievedMatch, error) {
	reqBody := queryRequest{
		Vector:          vec,
		TopK:            topK,
		IncludeMetadata: true,
		Namespace:       idx.namespace,
	}

	var queryResp queryResponse
	if err := idx.send(ctx, "/query", reqBody, &queryResp); err != nil {
		return nil, fmt.Errorf("pinecone query: %w", err)
	}

	matches := make([]domain.RetrievedMatch, 0, len(queryResp.Matches))
	for _, hit := range queryResp.Matches {
		match := domain.RetrievedMatch{
			ID:       hit.ID,
			Score:    hit.Score,
			Metadata: hit.Metadata,
		}
		if text, ok := hit.Metadata["text"].(string); ok {
			match.Content = text
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// send issues a JSON request against the index host and decodes the
// response into out when out is non-nil.
func (idx *Index) send(ctx context.Context, path string, reqBody, out any) error {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, idx.host+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", idx.apiKey)

	resp, err := idx.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// Close releases resources.
func (idx *Index) Close() error {
	return nil
}
