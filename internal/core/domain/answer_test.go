package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAnswer_Ok tests the success variant
func TestAnswer_Ok(t *testing.T) {
	a := OkAnswer("Aditi Sharma mentors in ML.")

	assert.True(t, a.Ok())
	assert.Equal(t, "Aditi Sharma mentors in ML.", a.Render())
}

// TestAnswer_OkEmpty tests that an empty successful answer is not substituted
func TestAnswer_OkEmpty(t *testing.T) {
	a := OkAnswer("")

	assert.True(t, a.Ok())
	assert.Equal(t, "", a.Render())
}

// TestAnswer_Err tests the failure variant and its legacy rendering
func TestAnswer_Err(t *testing.T) {
	a := ErrAnswer(AnswerErrorGeneration, "connection refused")

	assert.False(t, a.Ok())
	assert.Equal(t, AnswerErrorGeneration, a.Err)
	assert.Equal(t, "LLM error: connection refused", a.Render())
}

// TestQueryResult_Context tests newline joining in rank order without dedup
func TestQueryResult_Context(t *testing.T) {
	r := QueryResult{
		Matches: []RetrievedMatch{
			{ID: "1", Content: "first"},
			{ID: "2", Content: "second"},
			{ID: "3", Content: "first"},
		},
	}

	assert.Equal(t, "first\nsecond\nfirst", r.Context())
}

// TestQueryResult_ContextEmpty tests the empty-evidence case
func TestQueryResult_ContextEmpty(t *testing.T) {
	r := QueryResult{}
	assert.Equal(t, "", r.Context())
}
