package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
	"github.com/grantu-labs/grantbot/internal/core/ports/driving"
	"github.com/grantu-labs/grantbot/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// stableIDNamespace is the fixed namespace for deterministic index IDs
// in stable mode. Changing it orphans every vector already written in
// that mode.
var stableIDNamespace = uuid.MustParse("9a4f2c1e-5b7d-4d83-a0c6-31e8f0b2d9a4")

// IngestService runs the offline ingestion pipeline: profile source to
// serialized text to embeddings to batched vector index upserts.
type IngestService struct {
	source   driven.ProfileSource
	embedder driven.EmbeddingService
	index    driven.VectorIndex
	settings domain.IngestSettings
	limiter  *rate.Limiter
}

// NewIngestService creates a new ingestion service. Zero-value settings
// fields fall back to pipeline defaults.
func NewIngestService(
	source driven.ProfileSource,
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	settings domain.IngestSettings,
) *IngestService {
	if settings.BatchSize <= 0 {
		settings.BatchSize = domain.DefaultBatchSize
	}
	if !settings.Mode.IsValid() {
		settings.Mode = domain.IngestModeAppend
	}

	var limiter *rate.Limiter
	if settings.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(settings.RequestsPerSecond), 1)
	}

	return &IngestService{
		source:   source,
		embedder: embedder,
		index:    index,
		settings: settings,
		limiter:  limiter,
	}
}

// Ingest runs the pipeline once.
//
// Failure semantics: a source failure aborts with zero writes. An
// embedding or upsert failure aborts the run at the affected batch;
// batches flushed before it stay committed, so the index may hold a
// partial ingest. The returned report counts only committed writes and
// accompanies the error in that case.
func (s *IngestService) Ingest(ctx context.Context) (*driving.IngestReport, error) {
	if s.source == nil {
		return nil, domain.ErrSourceUnavailable
	}
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}
	if s.index == nil {
		return nil, domain.ErrVectorIndexUnavailable
	}

	logger.Section("Ingestion")
	logger.Debug("Batch size: %d, mode: %s", s.settings.BatchSize, s.settings.Mode)

	profiles, err := s.source.Fetch(ctx)
	if err != nil {
		logger.Warn("Profile fetch failed: %v", err)
		return nil, fmt.Errorf("fetch profiles: %w", err)
	}

	report := &driving.IngestReport{Fetched: len(profiles)}
	logger.Info("Fetched %d profiles", len(profiles))

	if len(profiles) == 0 {
		logger.Warn("No profiles to ingest")
		return report, nil
	}

	dims := s.embedder.Dimensions()

	for start := 0; start < len(profiles); start += s.settings.BatchSize {
		end := start + s.settings.BatchSize
		if end > len(profiles) {
			end = len(profiles)
		}
		batchIndex := start / s.settings.BatchSize
		batch := profiles[start:end]

		if err := s.flushBatch(ctx, batch, dims); err != nil {
			logger.Warn("Ingestion aborted at batch %d: %v (%d profiles committed in %d batches)",
				batchIndex, err, report.Indexed, report.Batches)
			return report, fmt.Errorf("batch %d: %w", batchIndex, err)
		}

		report.Indexed += len(batch)
		report.Batches++
		logger.Debug("Flushed batch %d (%d profiles)", batchIndex, len(batch))
	}

	logger.Info("Ingestion complete: %d profiles in %d batches", report.Indexed, report.Batches)
	return report, nil
}

// flushBatch embeds one batch and writes it to the index.
func (s *IngestService) flushBatch(
	ctx context.Context, batch []domain.ProfileRecord, dims int,
) error {
	texts := make([]string, len(batch))
	for i, p := range batch {
		texts[i] = p.Serialize()
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrEmbeddingFailure, err)
		}
	}

	vectors, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrEmbeddingFailure, err)
	}
	if len(vectors) != len(batch) {
		return fmt.Errorf("%w: got %d vectors for %d profiles",
			domain.ErrEmbeddingFailure, len(vectors), len(batch))
	}

	indexed := make([]domain.IndexedProfile, len(batch))
	for i, p := range batch {
		ip := domain.IndexedProfile{
			ID:       s.generateID(p),
			Vector:   vectors[i],
			Metadata: p.Metadata(),
		}
		if err := ip.Validate(dims); err != nil {
			return err
		}
		indexed[i] = ip
	}

	if err := s.index.Upsert(ctx, indexed); err != nil {
		if errors.Is(err, domain.ErrIndexWriteFailure) {
			return err
		}
		return fmt.Errorf("%w: %w", domain.ErrIndexWriteFailure, err)
	}
	return nil
}

// generateID produces the index ID for one profile according to the
// configured ingestion mode.
func (s *IngestService) generateID(p domain.ProfileRecord) string {
	if s.settings.Mode == domain.IngestModeStable {
		key := p.SourceKey
		if key == "" {
			// Rows without a source key fall back to the serialized
			// text, which is still deterministic for identical input.
			key = p.Serialize()
		}
		return uuid.NewSHA1(stableIDNamespace, []byte(key)).String()
	}
	return uuid.NewString()
}
