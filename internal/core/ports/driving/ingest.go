package driving

import "context"

// IngestService loads the full profile set into the vector index.
type IngestService interface {
	// Ingest runs the pipeline once: fetch, serialize, embed, upsert
	// in batches. Partial ingestion is possible when a batch fails
	// after earlier batches flushed; the report counts what committed.
	Ingest(ctx context.Context) (*IngestReport, error)
}

// IngestReport summarises one ingestion run.
type IngestReport struct {
	// Fetched is the number of profiles read from the source.
	Fetched int

	// Indexed is the number of profiles written to the index.
	Indexed int

	// Batches is the number of upsert calls that committed.
	Batches int
}
