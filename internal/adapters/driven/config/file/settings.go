package file

import (
	"os"

	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
)

// Settings bundles all typed configuration sections.
type Settings struct {
	Embedding domain.EmbeddingSettings
	LLM       domain.LLMSettings
	Index     domain.IndexSettings
	Source    domain.SourceSettings
	Ingest    domain.IngestSettings
	Query     domain.QuerySettings
}

// Configuration keys, dot-notation into the TOML file.
const (
	KeyEmbeddingProvider   = "embedding.provider"
	KeyEmbeddingModel      = "embedding.model"
	KeyEmbeddingBaseURL    = "embedding.base_url"
	KeyEmbeddingAPIKey     = "embedding.api_key"
	KeyEmbeddingDimensions = "embedding.dimensions"

	KeyLLMProvider    = "llm.provider"
	KeyLLMModel       = "llm.model"
	KeyLLMBaseURL     = "llm.base_url"
	KeyLLMAPIKey      = "llm.api_key"
	KeyLLMTemperature = "llm.temperature"

	KeyIndexProvider   = "index.provider"
	KeyIndexURL        = "index.url"
	KeyIndexAPIKey     = "index.api_key"
	KeyIndexCollection = "index.collection"
	KeyIndexDimensions = "index.dimensions"

	KeySourceProvider = "source.provider"
	KeySourceDSN      = "source.dsn"

	KeyIngestBatchSize = "ingest.batch_size"
	KeyIngestMode      = "ingest.mode"
	KeyIngestRPS       = "ingest.requests_per_second"

	KeyQueryTopK = "query.top_k"
)

// LoadSettings reads typed settings from the config store, applying
// environment variable overrides for secrets so API keys never have to
// live in the config file.
func LoadSettings(store driven.ConfigStore) Settings {
	s := Settings{
		Embedding: domain.EmbeddingSettings{
			Provider:   domain.AIProvider(store.GetString(KeyEmbeddingProvider)),
			Model:      store.GetString(KeyEmbeddingModel),
			BaseURL:    store.GetString(KeyEmbeddingBaseURL),
			APIKey:     store.GetString(KeyEmbeddingAPIKey),
			Dimensions: store.GetInt(KeyEmbeddingDimensions),
		},
		LLM: domain.LLMSettings{
			Provider:    domain.AIProvider(store.GetString(KeyLLMProvider)),
			Model:       store.GetString(KeyLLMModel),
			BaseURL:     store.GetString(KeyLLMBaseURL),
			APIKey:      store.GetString(KeyLLMAPIKey),
			Temperature: store.GetFloat(KeyLLMTemperature),
		},
		Index: domain.IndexSettings{
			Provider:   domain.IndexProvider(store.GetString(KeyIndexProvider)),
			URL:        store.GetString(KeyIndexURL),
			APIKey:     store.GetString(KeyIndexAPIKey),
			Collection: store.GetString(KeyIndexCollection),
			Dimensions: store.GetInt(KeyIndexDimensions),
		},
		Source: domain.SourceSettings{
			Provider: domain.SourceProvider(store.GetString(KeySourceProvider)),
			DSN:      store.GetString(KeySourceDSN),
		},
		Ingest: domain.IngestSettings{
			BatchSize:         store.GetInt(KeyIngestBatchSize),
			Mode:              domain.IngestMode(store.GetString(KeyIngestMode)),
			RequestsPerSecond: store.GetFloat(KeyIngestRPS),
		},
		Query: domain.QuerySettings{
			TopK: store.GetInt(KeyQueryTopK),
		},
	}

	applyEnvOverrides(&s)
	applyDefaults(&s)
	return s
}

// applyEnvOverrides lets environment variables supply secrets and the
// database connection string.
func applyEnvOverrides(s *Settings) {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" && s.LLM.Provider == domain.AIProviderAnthropic {
		s.LLM.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		if s.LLM.Provider == domain.AIProviderOpenAI && s.LLM.APIKey == "" {
			s.LLM.APIKey = key
		}
		if s.Embedding.Provider == domain.AIProviderOpenAI && s.Embedding.APIKey == "" {
			s.Embedding.APIKey = key
		}
	}
	if key := os.Getenv("PINECONE_API_KEY"); key != "" && s.Index.Provider == domain.IndexProviderPinecone {
		s.Index.APIKey = key
	}
	if key := os.Getenv("QDRANT_API_KEY"); key != "" && s.Index.Provider == domain.IndexProviderQdrant {
		s.Index.APIKey = key
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" && s.Source.DSN == "" {
		s.Source.Provider = domain.SourceProviderPostgres
		s.Source.DSN = dsn
	}
}

// applyDefaults fills unset sections with the local-first defaults the
// pipeline was built around.
func applyDefaults(s *Settings) {
	if s.Embedding.Provider == "" {
		s.Embedding.Provider = domain.AIProviderOpenAI
	}
	if s.Embedding.Dimensions == 0 {
		s.Embedding.Dimensions = domain.DefaultDimensions
	}
	if s.LLM.Provider == "" {
		s.LLM.Provider = domain.AIProviderOpenAI
	}
	if s.LLM.Temperature == 0 {
		s.LLM.Temperature = domain.DefaultTemperature
	}
	if s.Index.Provider == "" {
		s.Index.Provider = domain.IndexProviderQdrant
	}
	if s.Index.Collection == "" {
		s.Index.Collection = "profiles"
	}
	if s.Index.Dimensions == 0 {
		s.Index.Dimensions = s.Embedding.Dimensions
	}
	if s.Ingest.BatchSize == 0 {
		s.Ingest.BatchSize = domain.DefaultBatchSize
	}
	if s.Ingest.Mode == "" {
		s.Ingest.Mode = domain.IngestModeAppend
	}
	if s.Query.TopK == 0 {
		s.Query.TopK = domain.DefaultTopK
	}
}
