package services

import (
	"context"
	"fmt"

	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockProfileSource implements driven.ProfileSource for testing.
type mockProfileSource struct {
	profiles []domain.ProfileRecord
	fetchErr error
}

func (m *mockProfileSource) Fetch(_ context.Context) ([]domain.ProfileRecord, error) {
	if m.fetchErr != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, m.fetchErr)
	}
	return m.profiles, nil
}

func (m *mockProfileSource) Close() error {
	return nil
}

// mockEmbeddingService implements driven.EmbeddingService for testing.
// It returns a fixed vector per text and records every call.
type mockEmbeddingService struct {
	dims       int
	vectorLen  int // Overrides dims for the returned vector length when > 0.
	embedErr   error
	failOnCall int // 1-based EmbedBatch call number that fails; 0 = never.

	batchCalls  [][]string
	embedInputs []string
}

func (m *mockEmbeddingService) vector() []float32 {
	n := m.vectorLen
	if n == 0 {
		n = m.Dimensions()
	}
	v := make([]float32, n)
	for i := range v {
		v[i] = 0.1
	}
	return v
}

func (m *mockEmbeddingService) Embed(_ context.Context, text string) ([]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	m.embedInputs = append(m.embedInputs, text)
	return m.vector(), nil
}

func (m *mockEmbeddingService) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	m.batchCalls = append(m.batchCalls, texts)
	if m.failOnCall > 0 && len(m.batchCalls) == m.failOnCall {
		return nil, fmt.Errorf("embedding backend down")
	}
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = m.vector()
	}
	return result, nil
}

func (m *mockEmbeddingService) Dimensions() int {
	if m.dims > 0 {
		return m.dims
	}
	return 384
}

func (m *mockEmbeddingService) ModelName() string {
	return "mock-embed"
}

func (m *mockEmbeddingService) Ping(_ context.Context) error {
	return nil
}

func (m *mockEmbeddingService) Close() error {
	return nil
}

// mockVectorIndex implements driven.VectorIndex for testing.
// It records upserts and query arguments.
type mockVectorIndex struct {
	matches    []domain.RetrievedMatch
	queryErr   error
	upsertErr  error
	failOnCall int // 1-based Upsert call number that fails; 0 = never.

	upserts    [][]domain.IndexedProfile
	queryTopKs []int
}

func (m *mockVectorIndex) Upsert(_ context.Context, profiles []domain.IndexedProfile) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	if m.failOnCall > 0 && len(m.upserts)+1 == m.failOnCall {
		return fmt.Errorf("index write refused")
	}
	m.upserts = append(m.upserts, profiles)
	return nil
}

func (m *mockVectorIndex) Query(_ context.Context, _ []float32, topK int) ([]domain.RetrievedMatch, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	m.queryTopKs = append(m.queryTopKs, topK)
	if topK > len(m.matches) {
		return m.matches, nil
	}
	return m.matches[:topK], nil
}

func (m *mockVectorIndex) Close() error {
	return nil
}

// indexedCount returns the total number of profiles across all upserts.
func (m *mockVectorIndex) indexedCount() int {
	n := 0
	for _, batch := range m.upserts {
		n += len(batch)
	}
	return n
}

// indexedIDs returns every upserted ID in write order.
func (m *mockVectorIndex) indexedIDs() []string {
	var ids []string
	for _, batch := range m.upserts {
		for _, ip := range batch {
			ids = append(ids, ip.ID)
		}
	}
	return ids
}

// mockLLMService implements driven.LLMService for testing.
// Responses are consumed in call order; prompts are recorded.
type mockLLMService struct {
	responses  []string
	failOnCall int // 1-based Generate call number that fails; 0 = never.

	prompts []string
}

func (m *mockLLMService) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.prompts = append(m.prompts, prompt)
	call := len(m.prompts)
	if m.failOnCall > 0 && call == m.failOnCall {
		return "", fmt.Errorf("model unavailable")
	}
	if call <= len(m.responses) {
		return m.responses[call-1], nil
	}
	return "", nil
}

func (m *mockLLMService) Chat(_ context.Context, _ []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	return "", nil
}

func (m *mockLLMService) ModelName() string {
	return "mock-llm"
}

func (m *mockLLMService) Ping(_ context.Context) error {
	return nil
}

func (m *mockLLMService) Close() error {
	return nil
}
