package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grantu-labs/grantbot/internal/core/domain"
)

var (
	askTopK     int
	askJSON     bool
	askShowHyde bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a one-off question about mentors",
	Long: `Answers a question by expanding it into a hypothetical mentor
description, retrieving the closest indexed profiles, and synthesising
an answer grounded in them.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0,
		"number of profiles to retrieve (default from config, 5 if unset)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the full result as JSON")
	askCmd.Flags().BoolVar(&askShowHyde, "show-hyde", false,
		"print the hypothetical document used for retrieval")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]

	if askFactory == nil {
		return errors.New("ask service not configured")
	}

	settings := defaultQuerySettings
	if askTopK > 0 {
		settings.TopK = askTopK
	}

	service, err := askFactory(settings)
	if err != nil {
		return fmt.Errorf("configuring query pipeline: %w", err)
	}

	result, err := service.Ask(cmd.Context(), question)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAskJSON(cmd, result)
	}
	return outputAskText(cmd, result)
}

func outputAskJSON(cmd *cobra.Command, result *domain.QueryResult) error {
	out := struct {
		Answer          string                  `json:"answer"`
		HypotheticalDoc string                  `json:"hypothetical_doc,omitempty"`
		Matches         []domain.RetrievedMatch `json:"matches"`
	}{
		Answer:  result.Answer.Render(),
		Matches: result.Matches,
	}
	if askShowHyde {
		out.HypotheticalDoc = result.HypotheticalDoc
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAskText(cmd *cobra.Command, result *domain.QueryResult) error {
	if askShowHyde {
		cmd.Println("Hypothetical document:")
		cmd.Printf("  %s\n\n", result.HypotheticalDoc)
	}

	cmd.Println(result.Answer.Render())

	if len(result.Matches) == 0 {
		cmd.Println("\n(no profiles matched)")
		return nil
	}

	cmd.Println("\nRetrieved profiles:")
	for i, match := range result.Matches {
		name, _ := match.Metadata["name"].(string)
		if name == "" {
			name = match.ID
		}
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, name, match.Score)
	}
	return nil
}
