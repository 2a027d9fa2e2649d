package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantu-labs/grantbot/internal/core/domain"
)

// mockAskService records the question and returns a fixed result.
type mockAskService struct {
	result   *domain.QueryResult
	err      error
	question string
}

func (m *mockAskService) Ask(_ context.Context, question string) (*domain.QueryResult, error) {
	m.question = question
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func newTestApp(t *testing.T) (*App, *mockAskService) {
	t.Helper()
	ask := &mockAskService{
		result: &domain.QueryResult{
			Answer:          domain.OkAnswer("Aditi Sharma fits best."),
			HypotheticalDoc: "A professional with ML experience",
			Matches: []domain.RetrievedMatch{
				{ID: "p-1", Content: "Name: Aditi Sharma", Score: 0.9},
			},
		},
	}
	app, err := NewApp(ask)
	require.NoError(t, err)

	// Simulate terminal sizing so the app is ready
	model, _ := app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(*App), ask
}

func TestNewApp_RequiresAskService(t *testing.T) {
	_, err := NewApp(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ask service is required")
}

func TestApp_ShowsPresetsBeforeFirstTurn(t *testing.T) {
	app, _ := newTestApp(t)

	view := app.View()

	assert.Contains(t, view, "GrantU Chat Assistant")
	assert.Contains(t, view, "Suggested prompts:")
	for _, prompt := range presetPrompts {
		assert.Contains(t, view, prompt)
	}
}

func TestApp_EnterSubmitsQuestion(t *testing.T) {
	app, _ := newTestApp(t)
	app.input.SetValue("Who knows ML?")

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	require.NotNil(t, cmd)
	assert.True(t, app.Thinking())
	require.Equal(t, 1, app.Session().Len())
	assert.Equal(t, domain.RoleUser, app.Session().Turns[0].Role)
	assert.Equal(t, "Who knows ML?", app.Session().Turns[0].Text)
}

func TestApp_EmptyInputDoesNotSubmit(t *testing.T) {
	app, _ := newTestApp(t)

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	assert.Nil(t, cmd)
	assert.False(t, app.Thinking())
	assert.Equal(t, 0, app.Session().Len())
}

func TestApp_PresetKeySubmits(t *testing.T) {
	app, _ := newTestApp(t)

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	app = model.(*App)

	require.NotNil(t, cmd)
	require.Equal(t, 1, app.Session().Len())
	assert.Equal(t, presetPrompts[1], app.Session().Turns[0].Text)
}

func TestApp_AnswerMsgRendersResultAndEvidence(t *testing.T) {
	app, ask := newTestApp(t)
	app.input.SetValue("Who knows ML?")
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	model, _ = app.Update(answerMsg{question: "Who knows ML?", result: ask.result})
	app = model.(*App)

	assert.False(t, app.Thinking())
	require.Equal(t, 2, app.Session().Len())
	assert.Equal(t, domain.RoleAssistant, app.Session().Turns[1].Role)
	assert.Equal(t, "Aditi Sharma fits best.", app.Session().Turns[1].Text)

	transcript := app.transcript.String()
	assert.Contains(t, transcript, "Aditi Sharma fits best.")
	assert.Contains(t, transcript, "Hypothetical doc: A professional with ML experience")
	assert.Contains(t, transcript, "Name: Aditi Sharma (0.900)")
}

func TestApp_SynthesisErrorShownInline(t *testing.T) {
	app, _ := newTestApp(t)
	result := &domain.QueryResult{
		Answer: domain.ErrAnswer(domain.AnswerErrorGeneration, "model timed out"),
	}
	app.session.Append(domain.RoleUser, "q")

	model, _ := app.Update(answerMsg{question: "q", result: result})
	app = model.(*App)

	transcript := app.transcript.String()
	assert.Contains(t, transcript, "LLM error: model timed out")
	assert.Contains(t, transcript, "(no profiles matched)")
	// Inline synthesis errors still count as an assistant turn
	assert.Equal(t, domain.RoleAssistant, app.Session().Turns[1].Role)
}

func TestApp_PipelineErrorDisplayed(t *testing.T) {
	app, _ := newTestApp(t)
	app.session.Append(domain.RoleUser, "q")

	model, _ := app.Update(answerMsg{question: "q", err: errors.New("index unreachable")})
	app = model.(*App)

	assert.Error(t, app.Err())
	assert.Contains(t, app.transcript.String(), "index unreachable")
	// Pipeline failures do not append an assistant turn
	assert.Equal(t, 1, app.Session().Len())
}

func TestApp_EscQuits(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_ViewAfterFirstTurnHidesPresets(t *testing.T) {
	app, ask := newTestApp(t)
	app.input.SetValue("Who knows ML?")
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)
	model, _ = app.Update(answerMsg{question: "Who knows ML?", result: ask.result})
	app = model.(*App)

	view := app.View()

	assert.False(t, strings.Contains(view, "Suggested prompts:"))
	assert.Contains(t, view, "Aditi Sharma fits best.")
}
