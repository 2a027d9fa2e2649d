package driven

import (
	"context"

	"github.com/grantu-labs/grantbot/internal/core/domain"
)

// VectorIndex stores indexed profiles and answers nearest-neighbour
// queries by cosine similarity. The index is treated as a black-box
// service; no read-after-write guarantee is assumed for retrieval of
// just-ingested data.
type VectorIndex interface {
	// Upsert writes a batch of indexed profiles. Each call is
	// all-or-nothing from this pipeline's point of view: a failed call
	// leaves the batch uncommitted and is never retried automatically.
	Upsert(ctx context.Context, profiles []domain.IndexedProfile) error

	// Query returns up to topK matches for the vector, best first.
	// Fewer than topK entries in the index yields fewer matches; an
	// empty index yields an empty slice, never an error.
	Query(ctx context.Context, vector []float32, topK int) ([]domain.RetrievedMatch, error)

	// Close releases resources.
	Close() error
}
