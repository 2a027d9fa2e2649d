package driving

import (
	"context"

	"github.com/grantu-labs/grantbot/internal/core/domain"
)

// AskService answers free-text questions about mentors.
type AskService interface {
	// Ask runs the query pipeline: HyDE expansion, retrieval, answer
	// synthesis. Expansion and retrieval failures return an error;
	// synthesis failures are carried inside the result's Answer.
	Ask(ctx context.Context, question string) (*domain.QueryResult, error)
}
