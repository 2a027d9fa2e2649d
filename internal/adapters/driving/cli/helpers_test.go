package cli

import (
	"context"
	"errors"

	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driving"
)

// mockIngestService returns a fixed report.
type mockIngestService struct {
	report   *driving.IngestReport
	err      error
	settings domain.IngestSettings
}

func (m *mockIngestService) Ingest(_ context.Context) (*driving.IngestReport, error) {
	return m.report, m.err
}

// mockAskService returns a fixed result.
type mockAskService struct {
	result   *domain.QueryResult
	err      error
	question string
	settings domain.QuerySettings
}

func (m *mockAskService) Ask(_ context.Context, question string) (*domain.QueryResult, error) {
	m.question = question
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// setupTestServices wires mock factories and returns a cleanup func
// together with the mocks for inspection.
func setupTestServices() (cleanup func(), ingest *mockIngestService, ask *mockAskService) {
	ingest = &mockIngestService{
		report: &driving.IngestReport{Fetched: 3, Indexed: 3, Batches: 1},
	}
	ask = &mockAskService{
		result: &domain.QueryResult{
			Answer:          domain.OkAnswer("Aditi Sharma fits best."),
			HypotheticalDoc: "A professional with ML experience",
			Matches: []domain.RetrievedMatch{
				{
					ID:      "p-1",
					Content: "Name: Aditi Sharma",
					Score:   0.9,
					Metadata: map[string]any{
						"name": "Aditi Sharma",
					},
				},
			},
		},
	}

	oldIngest, oldAsk := ingestFactory, askFactory
	ingestFactory = func(s domain.IngestSettings) (driving.IngestService, error) {
		ingest.settings = s
		return ingest, nil
	}
	askFactory = func(s domain.QuerySettings) (driving.AskService, error) {
		ask.settings = s
		return ask, nil
	}

	cleanup = func() {
		ingestFactory = oldIngest
		askFactory = oldAsk
	}
	return cleanup, ingest, ask
}

var errMockFailure = errors.New("backend unavailable")
