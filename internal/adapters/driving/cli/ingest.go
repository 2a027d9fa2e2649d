package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grantu-labs/grantbot/internal/core/domain"
)

var (
	ingestBatchSize int
	ingestStable    bool
	ingestRPS       float64
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Index mentor profiles into the vector index",
	Long: `Reads all mentor profiles from the configured profile source,
embeds them, and writes the vectors to the vector index in batches.

By default every run appends freshly-identified vectors, so re-running
ingestion duplicates profiles already in the index. Use --stable to
derive index IDs from source row keys instead, which makes re-runs
idempotent upserts.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().IntVar(&ingestBatchSize, "batch-size", 0,
		"profiles per index write (default from config, 100 if unset)")
	ingestCmd.Flags().BoolVar(&ingestStable, "stable", false,
		"derive index IDs from source keys so re-ingesting upserts in place")
	ingestCmd.Flags().Float64Var(&ingestRPS, "rps", 0,
		"throttle embedding requests per second (0 = unlimited)")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestFactory == nil {
		return errors.New("ingest service not configured")
	}

	settings := defaultIngestSettings
	if ingestBatchSize > 0 {
		settings.BatchSize = ingestBatchSize
	}
	if ingestStable {
		settings.Mode = domain.IngestModeStable
	}
	if ingestRPS > 0 {
		settings.RequestsPerSecond = ingestRPS
	}

	service, err := ingestFactory(settings)
	if err != nil {
		return fmt.Errorf("configuring ingestion: %w", err)
	}

	cmd.Println("Ingesting profiles...")

	report, err := service.Ingest(cmd.Context())
	if err != nil {
		// A partial report means some batches were flushed before the
		// failure; surface both.
		if report != nil && report.Indexed > 0 {
			cmd.Printf("Indexed %d of %d profiles (%d batches) before failure.\n",
				report.Indexed, report.Fetched, report.Batches)
		}
		return fmt.Errorf("ingestion failed: %w", err)
	}

	if report.Fetched == 0 {
		cmd.Println("Profile source is empty; nothing to index.")
		return nil
	}

	cmd.Printf("Indexed %d profiles in %d batches.\n", report.Indexed, report.Batches)
	return nil
}
