// Package postgres provides a profile source backed by a PostgreSQL
// profiles table.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver

	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ProfileSource = (*Source)(nil)

// Source reads mentor profiles from a PostgreSQL database.
type Source struct {
	db *sql.DB
}

// NewSource connects to PostgreSQL using the given DSN and verifies
// the connection before returning.
func NewSource(ctx context.Context, dsn string) (*Source, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%w: postgres DSN is required", domain.ErrSourceUnavailable)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening connection: %w", domain.ErrSourceUnavailable, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping failed: %w", domain.ErrSourceUnavailable, err)
	}

	return &Source{db: db}, nil
}

// Fetch reads all mentor profiles. The row id becomes the SourceKey so
// stable-mode ingestion can derive deterministic index IDs.
func (s *Source) Fetch(ctx context.Context) ([]domain.ProfileRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, full_name, years_exp, current_org, past_org, skill_set, linkedin_profile
		FROM profiles
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying profiles: %w", domain.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var profiles []domain.ProfileRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var id int64
		var p domain.ProfileRecord
		var yearsExp sql.NullInt64
		var currentOrg, pastOrgs, skills, linkedin sql.NullString
		if err := rows.Scan(&id, &p.Name, &yearsExp,
			&currentOrg, &pastOrgs, &skills, &linkedin); err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}

		p.SourceKey = strconv.FormatInt(id, 10)
		p.YearsExperience = int(yearsExp.Int64)
		p.CurrentOrg = currentOrg.String
		p.PastOrgs = pastOrgs.String
		p.Skills = skills.String
		p.LinkedIn = linkedin.String
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}

	return profiles, nil
}

// Close closes the database connection.
func (s *Source) Close() error {
	return s.db.Close()
}
