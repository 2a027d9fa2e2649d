package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
	"github.com/grantu-labs/grantbot/internal/core/ports/driving"
	"github.com/grantu-labs/grantbot/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// Built-in prompt templates, used when no prompt store is injected.
// These match the prompts the mentor index was tuned against.
const (
	defaultHydePrompt = `Generate a concise description of a professional's skills and role based on the query.
Query: %s
Description: A professional with the following qualifications:`

	defaultAnswerPrompt = `Answer the query directly based on the following retrieved context.
Query: %s
Context: %s
Answer:`
)

// AskService runs the online query pipeline: HyDE expansion, retrieval,
// answer synthesis. The pipeline is a strict linear sequence with no
// retry loop; each stage's failure semantics differ (see Ask).
type AskService struct {
	embedder driven.EmbeddingService
	llm      driven.LLMService
	index    driven.VectorIndex
	prompts  driven.PromptStore
	settings domain.QuerySettings
	genOpts  driven.GenerateOptions
}

// NewAskService creates a new ask service. Zero-value settings fields
// fall back to pipeline defaults.
func NewAskService(
	embedder driven.EmbeddingService,
	llm driven.LLMService,
	index driven.VectorIndex,
	settings domain.QuerySettings,
	genOpts driven.GenerateOptions,
) *AskService {
	if settings.TopK <= 0 {
		settings.TopK = domain.DefaultTopK
	}
	if genOpts.Temperature == 0 {
		genOpts.Temperature = domain.DefaultTemperature
	}

	return &AskService{
		embedder: embedder,
		llm:      llm,
		index:    index,
		settings: settings,
		genOpts:  genOpts,
	}
}

// SetPromptStore sets the prompt store for loading customisable prompts.
// If not set, the service uses the built-in defaults.
func (s *AskService) SetPromptStore(store driven.PromptStore) {
	s.prompts = store
}

// Ask answers a question about mentors.
//
// Expansion and retrieval failures return an error to the caller.
// Synthesis failures do not: the chat path always has something to
// display, so they are carried inside the result's Answer and rendered
// as an inline error string.
func (s *AskService) Ask(ctx context.Context, question string) (*domain.QueryResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("%w: question is empty", domain.ErrInvalidInput)
	}
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}
	if s.index == nil {
		return nil, domain.ErrVectorIndexUnavailable
	}

	logger.Section("Query Execution")
	logger.Debug("Question: %q", question)

	hypoDoc, err := s.expand(ctx, question)
	if err != nil {
		logger.Warn("Query expansion failed: %v", err)
		return nil, err
	}
	logger.Debug("Hypothetical document: %q", hypoDoc)

	matches, err := s.retrieve(ctx, hypoDoc)
	if err != nil {
		logger.Warn("Retrieval failed: %v", err)
		return nil, err
	}
	logger.Info("Retrieved %d matches", len(matches))

	result := &domain.QueryResult{
		HypotheticalDoc: hypoDoc,
		Matches:         matches,
	}
	result.Answer = s.synthesize(ctx, question, result.Context())

	return result, nil
}

// expand generates the hypothetical answer document that seeds
// retrieval. The output is never shown as ground truth and need not be
// deterministic; it only biases the nearest-neighbour query toward
// content that reads like an answer.
func (s *AskService) expand(ctx context.Context, question string) (string, error) {
	prompt, err := s.loadPrompt(driven.PromptHyde, defaultHydePrompt)
	if err != nil {
		return "", err
	}

	doc, err := s.llm.Generate(ctx, fmt.Sprintf(prompt, question), s.genOpts)
	if err != nil {
		return "", fmt.Errorf("%w: query expansion: %w", domain.ErrGenerationFailure, err)
	}
	return doc, nil
}

// retrieve embeds the hypothetical document and queries the index.
// An empty document is not special-cased: it still embeds to some
// vector and the query is issued with it. An empty result set is
// valid and returns an empty slice.
func (s *AskService) retrieve(ctx context.Context, hypoDoc string) ([]domain.RetrievedMatch, error) {
	vector, err := s.embedder.Embed(ctx, hypoDoc)
	if err != nil {
		return nil, fmt.Errorf("%w: embed hypothetical document: %w", domain.ErrEmbeddingFailure, err)
	}
	logger.Debug("Query embedding: %d dimensions", len(vector))

	matches, err := s.index.Query(ctx, vector, s.settings.TopK)
	if err != nil {
		return nil, fmt.Errorf("query vector index: %w", err)
	}

	domain.SortMatches(matches)
	return matches, nil
}

// synthesize produces the final answer from the question and the
// retrieved context. Failures become the Answer's Err variant instead
// of a returned error.
func (s *AskService) synthesize(ctx context.Context, question, contextText string) domain.Answer {
	prompt, err := s.loadPrompt(driven.PromptAnswer, defaultAnswerPrompt)
	if err != nil {
		return domain.ErrAnswer(domain.AnswerErrorGeneration, err.Error())
	}

	text, err := s.llm.Generate(ctx, fmt.Sprintf(prompt, question, contextText), s.genOpts)
	if err != nil {
		logger.Warn("Answer synthesis failed: %v", err)
		return domain.ErrAnswer(domain.AnswerErrorGeneration, err.Error())
	}
	return domain.OkAnswer(text)
}

// loadPrompt returns the named prompt from the store, or the built-in
// fallback when no store is set or the load fails.
func (s *AskService) loadPrompt(name, fallback string) (string, error) {
	if s.prompts == nil {
		return fallback, nil
	}
	prompt, err := s.prompts.Load(name)
	if err != nil || prompt == "" {
		return fallback, nil
	}
	return prompt, nil
}
