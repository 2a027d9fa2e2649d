// Package sqlite provides a profile source backed by a local SQLite
// database. It is the zero-infrastructure option for running the
// pipeline without a Postgres instance.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/grantu-labs/grantbot/internal/adapters/driven/profilesource/sqlite/migrations"
	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ProfileSource = (*Source)(nil)

// Source reads mentor profiles from a SQLite database.
type Source struct {
	db   *sql.DB
	path string
}

// NewSource opens (or creates) the profile database at the specified
// data directory. If dataDir is empty, defaults to ~/.grantbot/data.
func NewSource(dataDir string) (*Source, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".grantbot", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "profiles.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Source{db: db, path: dbPath}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// migrate runs all pending migrations.
func (s *Source) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
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
		if err := rows.Scan(&id, &p.Name, &p.YearsExperience,
			&p.CurrentOrg, &p.PastOrgs, &p.Skills, &p.LinkedIn); err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		p.SourceKey = strconv.FormatInt(id, 10)
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}

	return profiles, nil
}

// Save inserts profiles into the database. Used to seed a local
// profile set before ingestion.
func (s *Source) Save(ctx context.Context, profiles []domain.ProfileRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO profiles (full_name, years_exp, current_org, past_org, skill_set, linkedin_profile)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range profiles {
		if _, err := stmt.ExecContext(ctx, p.Name, p.YearsExperience,
			p.CurrentOrg, p.PastOrgs, p.Skills, p.LinkedIn); err != nil {
			return fmt.Errorf("saving profile: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (s *Source) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Source) Close() error {
	return s.db.Close()
}
