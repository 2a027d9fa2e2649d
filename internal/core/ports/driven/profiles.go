package driven

import (
	"context"

	"github.com/grantu-labs/grantbot/internal/core/domain"
)

// ProfileSource reads mentor profile rows for ingestion. The source is
// the system of record; the pipeline never writes back to it.
type ProfileSource interface {
	// Fetch returns all profiles. A connectivity failure wraps
	// domain.ErrSourceUnavailable so ingestion can abort before any
	// index write happens.
	Fetch(ctx context.Context) ([]domain.ProfileRecord, error)

	// Close releases the underlying connection.
	Close() error
}
