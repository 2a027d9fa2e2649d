package domain

import "errors"

// Domain errors represent pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrSourceUnavailable indicates the profile source cannot be
	// reached. Ingestion aborts before any write happens.
	ErrSourceUnavailable = errors.New("profile source unavailable")

	// ErrEmbeddingFailure indicates an embedding call failed. During
	// ingestion this aborts the in-flight batch; batches already
	// flushed to the index remain.
	ErrEmbeddingFailure = errors.New("embedding failed")

	// ErrIndexWriteFailure indicates an upsert to the vector index
	// failed. The batch is not committed and the operator must re-run
	// ingestion; there is no automatic retry.
	ErrIndexWriteFailure = errors.New("vector index write failed")

	// ErrGenerationFailure indicates a generation service call failed.
	// Query expansion propagates this; answer synthesis converts it to
	// an inline error answer instead.
	ErrGenerationFailure = errors.New("generation failed")

	// ErrDimensionMismatch indicates a vector whose length does not
	// match the configured index dimension.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrLLMUnavailable indicates no LLM service is configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates no embedding service is configured.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrVectorIndexUnavailable indicates no vector index is configured.
	ErrVectorIndexUnavailable = errors.New("vector index unavailable")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
