package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/grantu-labs/grantbot/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Launch the interactive chat session",
	Long: `Launch the interactive chat interface for mentor search.

Each question runs the full retrieval pipeline and the answer is shown
with the profiles that grounded it.

Controls:
  enter    - Send question
  1-4      - Submit a suggested prompt
  esc      - Quit`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if askFactory == nil {
		return errors.New("ask service not configured")
	}

	service, err := askFactory(defaultQuerySettings)
	if err != nil {
		return fmt.Errorf("configuring query pipeline: %w", err)
	}

	app, err := tui.NewApp(service)
	if err != nil {
		return fmt.Errorf("failed to create chat UI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("chat error: %w", err)
	}
	return nil
}
