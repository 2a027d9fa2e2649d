package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantu-labs/grantbot/internal/core/domain"
)

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [question]", askCmd.Use)
}

func TestAskCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_HasTopKFlag(t *testing.T) {
	flag := askCmd.Flags().Lookup("top-k")
	require.NotNil(t, flag, "top-k flag should exist")
	assert.Equal(t, "k", flag.Shorthand)
}

func TestAskCmd_Executes(t *testing.T) {
	cleanup, _, ask := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "Who knows ML?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "Who knows ML?", ask.question)
	assert.Contains(t, buf.String(), "Aditi Sharma fits best.")
	assert.Contains(t, buf.String(), "Retrieved profiles:")
	assert.Contains(t, buf.String(), "[1] Aditi Sharma (0.90)")
}

func TestAskCmd_TopKFlagReachesSettings(t *testing.T) {
	cleanup, _, ask := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "-k", "10", "Who knows ML?"})
	defer func() {
		rootCmd.SetArgs(nil)
		askTopK = 0
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 10, ask.settings.TopK)
}

func TestAskCmd_JSONOutput(t *testing.T) {
	cleanup, _, _ := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--json", "Who knows ML?"})
	defer func() {
		rootCmd.SetArgs(nil)
		askJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"answer\"")
	assert.Contains(t, buf.String(), "\"matches\"")
}

func TestAskCmd_ShowHyde(t *testing.T) {
	cleanup, _, _ := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--show-hyde", "Who knows ML?"})
	defer func() {
		rootCmd.SetArgs(nil)
		askShowHyde = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Hypothetical document:")
	assert.Contains(t, buf.String(), "A professional with ML experience")
}

func TestAskCmd_SynthesisErrorStillPrints(t *testing.T) {
	cleanup, _, ask := setupTestServices()
	defer cleanup()
	ask.result = &domain.QueryResult{
		Answer: domain.ErrAnswer(domain.AnswerErrorGeneration, "model timed out"),
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "Who knows ML?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "LLM error: model timed out")
	assert.Contains(t, buf.String(), "(no profiles matched)")
}

func TestAskCmd_PipelineError(t *testing.T) {
	cleanup, _, ask := setupTestServices()
	defer cleanup()
	ask.err = errMockFailure

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "Who knows ML?"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ask failed")
}

func TestAskCmd_NotConfigured(t *testing.T) {
	old := askFactory
	askFactory = nil
	defer func() { askFactory = old }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ask service not configured")
}
