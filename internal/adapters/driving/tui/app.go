// Package tui provides the interactive chat interface, following the
// Elm architecture on top of Bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driving"
)

// presetPrompts are suggested questions shown before the first turn.
// Number keys 1-4 submit them directly.
var presetPrompts = []string{
	"List mentors in Molecular Biology with 10+ years experience.",
	"Share mentors from Meta or Microsoft.",
	"Tell me 4 mentors with 12+ years in Investment Banking.",
	"Show mentors in Data Science and ML.",
}

// answerMsg carries a completed query result back into the update loop.
type answerMsg struct {
	question string
	result   *domain.QueryResult
	err      error
}

// App is the chat TUI application. It implements tea.Model.
type App struct {
	ask     driving.AskService
	ctx     context.Context
	styles  *Styles
	session *domain.QuerySession

	input    textinput.Model
	view     viewport.Model
	spin     spinner.Model
	thinking bool

	// transcript accumulates rendered turns for the viewport.
	transcript strings.Builder

	err    error
	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the chat application over the given ask service.
func NewApp(ask driving.AskService) (*App, error) {
	if ask == nil {
		return nil, fmt.Errorf("creating app: ask service is required")
	}

	input := textinput.New()
	input.Placeholder = "Ask your question here..."
	input.CharLimit = 500
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &App{
		ask:     ask,
		ctx:     context.Background(),
		styles:  DefaultStyles(),
		session: &domain.QuerySession{},
		input:   input,
		spin:    spin,
	}, nil
}

// WithContext sets the context used for queries.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		tea.SetWindowTitle("GrantU Chat Assistant"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		inputHeight := 3
		headerHeight := 2
		a.view = viewport.New(msg.Width, msg.Height-inputHeight-headerHeight)
		a.view.SetContent(a.transcript.String())
		a.input.Width = msg.Width - 6
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "enter":
			question := strings.TrimSpace(a.input.Value())
			if question == "" || a.thinking {
				return a, nil
			}
			a.input.Reset()
			return a, a.submit(question)
		case "1", "2", "3", "4":
			// Preset shortcuts only before typing starts
			if a.input.Value() == "" && !a.thinking {
				idx := int(msg.String()[0] - '1')
				return a, a.submit(presetPrompts[idx])
			}
		}

		var inputCmd, viewCmd tea.Cmd
		a.input, inputCmd = a.input.Update(msg)
		a.view, viewCmd = a.view.Update(msg)
		return a, tea.Batch(inputCmd, viewCmd)

	case spinner.TickMsg:
		if !a.thinking {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case answerMsg:
		a.thinking = false
		if msg.err != nil {
			a.err = msg.err
			a.appendLine(a.styles.Error.Render(fmt.Sprintf("Error: %v", msg.err)))
			a.appendLine("")
			return a, nil
		}
		a.err = nil
		a.renderResult(msg.result)
		a.session.Append(domain.RoleAssistant, msg.result.Answer.Render())
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submit records the user turn and starts the query.
func (a *App) submit(question string) tea.Cmd {
	a.session.Append(domain.RoleUser, question)
	a.appendLine(a.styles.UserLabel.Render("You: ") + question)
	a.thinking = true

	ask := func() tea.Msg {
		result, err := a.ask.Ask(a.ctx, question)
		return answerMsg{question: question, result: result, err: err}
	}
	return tea.Batch(a.spin.Tick, ask)
}

// renderResult appends the answer, provenance, and evidence to the
// transcript.
func (a *App) renderResult(result *domain.QueryResult) {
	answer := result.Answer.Render()
	if result.Answer.Ok() {
		a.appendLine(a.styles.BotLabel.Render("GrantBot: ") + answer)
	} else {
		a.appendLine(a.styles.BotLabel.Render("GrantBot: ") + a.styles.Error.Render(answer))
	}

	if result.HypotheticalDoc != "" {
		a.appendLine(a.styles.Muted.Render("Hypothetical doc: " + result.HypotheticalDoc))
	}

	if len(result.Matches) == 0 {
		a.appendLine(a.styles.Muted.Render("(no profiles matched)"))
	}
	for _, match := range result.Matches {
		line := fmt.Sprintf("%s (%.3f)", match.Content, match.Score)
		a.appendLine(a.styles.Evidence.Render(line))
	}
	a.appendLine("")
}

// appendLine adds a line to the transcript and scrolls to the bottom.
func (a *App) appendLine(line string) {
	a.transcript.WriteString(line)
	a.transcript.WriteString("\n")
	a.view.SetContent(a.transcript.String())
	a.view.GotoBottom()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("GrantU Chat Assistant"))
	b.WriteString("\n\n")

	if a.session.Len() == 0 {
		b.WriteString(a.styles.Muted.Render("Suggested prompts:"))
		b.WriteString("\n")
		for i, prompt := range presetPrompts {
			b.WriteString(a.styles.Muted.Render(fmt.Sprintf("  [%d] %s", i+1, prompt)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	} else {
		b.WriteString(a.view.View())
		b.WriteString("\n")
	}

	if a.thinking {
		b.WriteString(a.spin.View())
		b.WriteString(a.styles.Muted.Render(" thinking..."))
		b.WriteString("\n")
	}

	b.WriteString(a.styles.InputBox.Render(a.input.View()))
	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render("enter: send · 1-4: suggested prompt · esc: quit"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Session returns the chat transcript.
func (a *App) Session() *domain.QuerySession {
	return a.session
}

// Thinking reports whether a query is in flight.
func (a *App) Thinking() bool {
	return a.thinking
}

// Err returns the last pipeline error.
func (a *App) Err() error {
	return a.err
}
