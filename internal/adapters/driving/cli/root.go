// Package cli provides the cobra command tree. Services are injected
// from main as factories so command flags can adjust pipeline settings
// before construction.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driving"
	"github.com/grantu-labs/grantbot/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Factories build pipeline services on demand. Commands call them
// after flag parsing so flag overrides reach the service settings.
var (
	ingestFactory func(domain.IngestSettings) (driving.IngestService, error)
	askFactory    func(domain.QuerySettings) (driving.AskService, error)
)

// Default settings loaded from configuration; flags override per run.
var (
	defaultIngestSettings domain.IngestSettings
	defaultQuerySettings  domain.QuerySettings
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "grantbot",
	Short: "Mentor search powered by profile embeddings",
	Long: `GrantBot indexes mentor profiles into a vector index and answers
questions about them using retrieval-augmented generation.

Run 'grantbot ingest' to build the index from your profile source,
then 'grantbot ask' for one-off questions or 'grantbot chat' for an
interactive session.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable verbose diagnostic output on stderr")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetIngestFactory injects the ingestion service factory.
func SetIngestFactory(f func(domain.IngestSettings) (driving.IngestService, error)) {
	ingestFactory = f
}

// SetAskFactory injects the ask service factory.
func SetAskFactory(f func(domain.QuerySettings) (driving.AskService, error)) {
	askFactory = f
}

// SetDefaultIngestSettings sets the configured ingestion settings that
// command flags start from.
func SetDefaultIngestSettings(s domain.IngestSettings) {
	defaultIngestSettings = s
}

// SetDefaultQuerySettings sets the configured query settings that
// command flags start from.
func SetDefaultQuerySettings(s domain.QuerySettings) {
	defaultQuerySettings = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
