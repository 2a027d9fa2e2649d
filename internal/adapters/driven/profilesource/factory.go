// Package profilesource provides factory functions for creating
// profile source adapters.
package profilesource

import (
	"context"
	"fmt"

	"github.com/grantu-labs/grantbot/internal/adapters/driven/profilesource/postgres"
	"github.com/grantu-labs/grantbot/internal/adapters/driven/profilesource/sqlite"
	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
)

// CreateSource creates the appropriate profile source based on
// settings. Returns nil if the provider is not configured.
func CreateSource(ctx context.Context, settings *domain.SourceSettings) (driven.ProfileSource, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.SourceProviderPostgres:
		return postgres.NewSource(ctx, settings.DSN)

	case domain.SourceProviderSQLite:
		// For SQLite the DSN is the data directory path.
		return sqlite.NewSource(settings.DSN)

	default:
		return nil, fmt.Errorf("unsupported profile source provider: %s", settings.Provider)
	}
}
