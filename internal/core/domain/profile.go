package domain

import "fmt"

// ProfileRecord represents a single mentor profile as read from the
// profile source. Records are immutable for the duration of an
// ingestion run; the profile source remains the source of truth.
type ProfileRecord struct {
	// SourceKey is the profile source's own identifier for this row.
	// It is opaque to the pipeline and only used to derive stable
	// index IDs when ingesting in stable mode.
	SourceKey string

	// Name is the mentor's full name.
	Name string

	// YearsExperience is the total years of professional experience.
	// Never negative.
	YearsExperience int

	// CurrentOrg is the mentor's current organisation.
	CurrentOrg string

	// PastOrgs lists previous organisations as free text.
	PastOrgs string

	// Skills lists skill tags as free text.
	Skills string

	// LinkedIn is the external profile link.
	LinkedIn string
}

// Serialize renders the record as the single-line text that gets
// embedded. Field order is fixed; changing it invalidates every vector
// already in the index. Missing fields render as empty values so that
// positions stay stable.
func (p ProfileRecord) Serialize() string {
	return fmt.Sprintf(
		"Name: %s, Years of Experience: %d, Current Org: %s, Past Orgs: %s, Skills: %s, LinkedIn: %s",
		p.Name, p.YearsExperience, p.CurrentOrg, p.PastOrgs, p.Skills, p.LinkedIn,
	)
}

// Metadata returns the key-value payload stored alongside the vector.
// The serialized text is included under "text" so retrieval can return
// the exact content that was embedded.
func (p ProfileRecord) Metadata() map[string]any {
	return map[string]any{
		"name":        p.Name,
		"years_exp":   p.YearsExperience,
		"current_org": p.CurrentOrg,
		"past_org":    p.PastOrgs,
		"skills":      p.Skills,
		"linkedin":    p.LinkedIn,
		"text":        p.Serialize(),
	}
}

// IndexedProfile is a profile as written to the vector index.
// It is created once at ingestion time and never mutated.
type IndexedProfile struct {
	// ID is generated at write time. In append mode it is a fresh
	// random ID with no relationship to the source row, so re-ingesting
	// duplicates rather than updates. In stable mode it is derived from
	// SourceKey and re-ingesting upserts in place.
	ID string

	// Vector is the embedding of the serialized profile text.
	// Its length must equal the configured index dimension.
	Vector []float32

	// Metadata carries the profile fields for display after retrieval.
	Metadata map[string]any
}

// Validate checks the dimension invariant. A vector of the wrong
// length would silently corrupt similarity scores for the whole
// collection, so ingestion fails instead.
func (ip IndexedProfile) Validate(dimensions int) error {
	if len(ip.Vector) != dimensions {
		return fmt.Errorf("%w: vector has %d dimensions, index expects %d",
			ErrDimensionMismatch, len(ip.Vector), dimensions)
	}
	return nil
}
