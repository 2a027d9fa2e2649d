// Command grantbot indexes mentor profiles into a vector index and
// answers questions about them through retrieval-augmented generation.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/grantu-labs/grantbot/internal/adapters/driven/ai"
	configfile "github.com/grantu-labs/grantbot/internal/adapters/driven/config/file"
	"github.com/grantu-labs/grantbot/internal/adapters/driven/profilesource"
	"github.com/grantu-labs/grantbot/internal/adapters/driven/vectorindex"
	"github.com/grantu-labs/grantbot/internal/adapters/driving/cli"
	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
	"github.com/grantu-labs/grantbot/internal/core/ports/driving"
	"github.com/grantu-labs/grantbot/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Secrets may come from a local .env file; absence is fine.
	_ = godotenv.Load()

	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	settings := configfile.LoadSettings(configStore)

	promptStore, err := configfile.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("creating prompt store: %w", err)
	}

	cli.SetVersion(version)
	cli.SetDefaultIngestSettings(settings.Ingest)
	cli.SetDefaultQuerySettings(settings.Query)

	// Adapters are built inside the factories so commands that never
	// touch the pipeline (version, help) start without network access.
	cli.SetIngestFactory(func(ingestSettings domain.IngestSettings) (driving.IngestService, error) {
		ctx := context.Background()

		embedder, err := buildEmbedder(&settings.Embedding)
		if err != nil {
			return nil, err
		}
		index, err := buildIndex(ctx, &settings.Index)
		if err != nil {
			return nil, err
		}
		source, err := profilesource.CreateSource(ctx, &settings.Source)
		if err != nil {
			return nil, fmt.Errorf("connecting to profile source: %w", err)
		}
		if source == nil {
			return nil, fmt.Errorf("no profile source configured; set source.provider and source.dsn in %s", configStore.Path())
		}

		return services.NewIngestService(source, embedder, index, ingestSettings), nil
	})

	cli.SetAskFactory(func(querySettings domain.QuerySettings) (driving.AskService, error) {
		ctx := context.Background()

		embedder, err := buildEmbedder(&settings.Embedding)
		if err != nil {
			return nil, err
		}
		llm, err := ai.CreateAndValidateLLMService(&settings.LLM)
		if err != nil {
			return nil, err
		}
		if llm == nil {
			return nil, fmt.Errorf("no LLM configured; set llm.provider in %s", configStore.Path())
		}
		index, err := buildIndex(ctx, &settings.Index)
		if err != nil {
			return nil, err
		}

		genOpts := driven.GenerateOptions{Temperature: settings.LLM.Temperature}
		service := services.NewAskService(embedder, llm, index, querySettings, genOpts)
		service.SetPromptStore(promptStore)
		return service, nil
	})

	return cli.Execute()
}

// buildEmbedder creates and validates the embedding service, turning
// the unconfigured case into a usable error.
func buildEmbedder(settings *domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	embedder, err := ai.CreateAndValidateEmbeddingService(settings)
	if err != nil {
		return nil, err
	}
	if embedder == nil {
		return nil, fmt.Errorf("no embedding service configured; set embedding.provider in the config file")
	}
	return embedder, nil
}

// buildIndex creates the vector index, turning the unconfigured case
// into a usable error.
func buildIndex(ctx context.Context, settings *domain.IndexSettings) (driven.VectorIndex, error) {
	index, err := vectorindex.CreateIndex(ctx, settings)
	if err != nil {
		return nil, err
	}
	if index == nil {
		return nil, fmt.Errorf("no vector index configured; set index.provider in the config file")
	}
	return index, nil
}
