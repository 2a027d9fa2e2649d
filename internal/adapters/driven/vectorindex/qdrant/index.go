// Package qdrant provides a vector index adapter backed by a Qdrant
// instance, using its REST API.
package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Default configuration values.
const (
	DefaultBaseURL    = "http://localhost:6333"
	DefaultCollection = "profiles"
	DefaultTimeout    = 30 * time.Second
)

// Config holds configuration for the Qdrant index adapter.
type Config struct {
	// BaseURL is the Qdrant REST API base URL (default: http://localhost:6333).
	BaseURL string

	// APIKey is the optional api-key header value.
	APIKey string

	// Collection is the collection name (default: profiles).
	Collection string

	// Dimensions is the vector size used when creating the collection.
	Dimensions int

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Index provides vector storage and similarity search over a Qdrant
// collection with cosine distance.
type Index struct {
	client     *http.Client
	baseURL    string
	apiKey     string
	collection string
	dimensions int
}

// point is the Qdrant point format for upserts.
type point struct {
	ID      string         `json:"id"`
	Vector  []float32      `json:"vector"`
	Payload map[string]any `json:"payload,omitempty"`
}

// upsertRequest is the points upsert request format.
type upsertRequest struct {
	Points []point `json:"points"`
}

// searchRequest is the points/search request format.
type searchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
}

// searchResponse is the points/search response format.
type searchResponse struct {
	Result []struct {
		ID      any            `json:"id"`
		Score   float64        `json:"score"`
		Payload map[string]any `json:"payload"`
	} `json:"result"`
	Status any `json:"status"`
}

// createCollectionRequest is the collection create request format.
type createCollectionRequest struct {
	Vectors vectorParams `json:"vectors"`
}

// vectorParams describes the collection's vector space.
type vectorParams struct {
	Size     int    `json:"size"`
	Distance string `json:"distance"`
}

// NewIndex creates a new Qdrant index adapter and ensures the target
// collection exists with cosine distance.
func NewIndex(ctx context.Context, cfg Config) (*Index, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}
	if cfg.Dimensions == 0 {
		cfg.Dimensions = domain.DefaultDimensions
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	idx := &Index{
		client:     &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		collection: cfg.Collection,
		dimensions: cfg.Dimensions,
	}

	if err := idx.ensureCollection(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrVectorIndexUnavailable, err)
	}
	return idx, nil
}

// ensureCollection creates the collection if it does not exist.
// Qdrant returns 409 when the collection is already present.
func (idx *Index) ensureCollection(ctx context.Context) error {
	reqBody := createCollectionRequest{
		Vectors: vectorParams{Size: idx.dimensions, Distance: "Cosine"},
	}

	status, body, err := idx.send(ctx, http.MethodPut,
		"/collections/"+idx.collection, reqBody)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusConflict {
		return fmt.Errorf("create collection (status %d): %s", status, string(body))
	}
	return nil
}

// Upsert writes the given profiles into the collection. The ?wait=true
// flag makes the write durable before the call returns, so a successful
// Upsert means the batch is queryable.
func (idx *Index) Upsert(ctx context.Context, profiles []domain.IndexedProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	points := make([]point, len(profiles))
	for i, p := range profiles {
		points[i] = point{ID: p.ID, Vector: p.Vector, Payload: p.Metadata}
	}

	status, body, err := idx.send(ctx, http.MethodPut,
		"/collections/"+idx.collection+"/points?wait=true", upsertRequest{Points: points})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("qdrant upsert (status %d): %s", status, string(body))
	}
	return nil
}

// Query returns the topK nearest points to the given vector, with
// payloads, ordered by descending similarity.
func (idx *Index) Query(ctx context.Context, vector []float32, topK int) ([]domain.RetrievedMatch, error) {
	reqBody := searchRequest{Vector: vector, Limit: topK, WithPayload: true}

	status, body, err := idx.send(ctx, http.MethodPost,
		"/collections/"+idx.collection+"/points/search", reqBody)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("qdrant search (status %d): %s", status, string(body))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	matches := make([]domain.RetrievedMatch, 0, len(searchResp.Result))
	for _, hit := range searchResp.Result {
		match := domain.RetrievedMatch{
			ID:       fmt.Sprintf("%v", hit.ID),
			Score:    hit.Score,
			Metadata: hit.Payload,
		}
		if text, ok := hit.Payload["text"].(string); ok {
			match.Content = text
		}
		matches = append(matches, match)
	}
	return matches, nil
}

// send issues a JSON request against the Qdrant API and returns the
// status code and raw response body.
func (idx *Index) send(ctx context.Context, method, path string, reqBody any) (int, []byte, error) {
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, idx.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if idx.apiKey != "" {
		req.Header.Set("api-key", idx.apiKey)
	}

	resp, err := idx.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// Close releases resources.
func (idx *Index) Close() error {
	return nil
}
