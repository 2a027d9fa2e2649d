// Package vectorindex provides factory functions for creating vector
// index adapters.
package vectorindex

import (
	"context"
	"fmt"

	"github.com/grantu-labs/grantbot/internal/adapters/driven/vectorindex/pinecone"
	"github.com/grantu-labs/grantbot/internal/adapters/driven/vectorindex/qdrant"
	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
)

// CreateIndex creates the appropriate vector index based on settings.
// Returns nil if the provider is not configured.
func CreateIndex(ctx context.Context, settings *domain.IndexSettings) (driven.VectorIndex, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.IndexProviderQdrant:
		return qdrant.NewIndex(ctx, qdrant.Config{
			BaseURL:    settings.URL,
			APIKey:     settings.APIKey,
			Collection: settings.Collection,
			Dimensions: settings.Dimensions,
		})

	case domain.IndexProviderPinecone:
		idx, err := pinecone.NewIndex(pinecone.Config{
			Host:      settings.URL,
			APIKey:    settings.APIKey,
			Namespace: settings.Collection,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrVectorIndexUnavailable, err)
		}
		return idx, nil

	default:
		return nil, fmt.Errorf("unsupported index provider: %s", settings.Provider)
	}
}
