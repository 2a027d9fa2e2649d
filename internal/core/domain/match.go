package domain

import "sort"

// RetrievedMatch is a single nearest-neighbour hit returned for a
// query. Matches live only for the duration of one query execution and
// are never persisted.
type RetrievedMatch struct {
	// ID is the indexed profile's ID.
	ID string

	// Content is the text that was embedded for this profile.
	Content string

	// Metadata is the payload stored at ingestion time.
	Metadata map[string]any

	// Score is the similarity score reported by the vector index.
	// With cosine distance it lies in [-1, 1].
	Score float64
}

// SortMatches orders matches by descending score. Exact score ties are
// broken by ascending ID so that identical corpus and query always
// produce the same ordering regardless of what the index returned.
func SortMatches(matches []RetrievedMatch) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})
}
