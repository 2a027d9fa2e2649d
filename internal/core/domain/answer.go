package domain

import (
	"fmt"
	"strings"
)

// AnswerErrorKind classifies a failed answer synthesis.
type AnswerErrorKind string

// Answer error kinds.
const (
	// AnswerErrorGeneration means the generation service call failed.
	AnswerErrorGeneration AnswerErrorKind = "generation"
)

// Answer is the tagged result of answer synthesis. Synthesis failures
// are carried in the value rather than returned as an error, because
// the user-facing chat path always has something to display. Callers
// that need to branch check Err instead of inspecting the text.
type Answer struct {
	// Text is the generated answer, valid when Err is empty.
	Text string

	// Err is the failure kind, empty on success.
	Err AnswerErrorKind

	// ErrMessage describes the failure for display.
	ErrMessage string
}

// OkAnswer returns a successful answer.
func OkAnswer(text string) Answer {
	return Answer{Text: text}
}

// ErrAnswer returns a failed answer.
func ErrAnswer(kind AnswerErrorKind, message string) Answer {
	return Answer{Err: kind, ErrMessage: message}
}

// Ok reports whether synthesis succeeded.
func (a Answer) Ok() bool {
	return a.Err == ""
}

// Render returns the display string: the answer text on success, or
// the inline error marker on failure. An empty successful answer stays
// empty rather than being replaced with a placeholder.
func (a Answer) Render() string {
	if a.Ok() {
		return a.Text
	}
	return fmt.Sprintf("LLM error: %s", a.ErrMessage)
}

// QueryResult is everything one query produces for display: the final
// answer, the hypothetical document that seeded retrieval, and the
// ranked evidence it retrieved.
type QueryResult struct {
	// Answer is the synthesized answer.
	Answer Answer

	// HypotheticalDoc is the generated passage that was embedded in
	// place of the raw question. It is never ground truth and is only
	// shown as retrieval provenance.
	HypotheticalDoc string

	// Matches is the ranked evidence, best first.
	Matches []RetrievedMatch
}

// Context returns the retrieval context passed to answer synthesis:
// match content in rank order, newline-joined, not deduplicated.
func (r QueryResult) Context() string {
	parts := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		parts[i] = m.Content
	}
	return strings.Join(parts, "\n")
}
