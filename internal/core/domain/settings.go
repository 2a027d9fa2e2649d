package domain

const unknownDescription = "Unknown"

// Pipeline defaults.
const (
	// DefaultDimensions matches all-MiniLM-L6-v2, the model the mentor
	// index was originally built with.
	DefaultDimensions = 384

	// DefaultBatchSize is the number of profiles per index upsert.
	DefaultBatchSize = 100

	// DefaultTopK is the number of neighbours retrieved per query.
	DefaultTopK = 5

	// DefaultTemperature is the generation creativity parameter.
	DefaultTemperature = 0.5
)

// AIProvider identifies an AI service provider for embeddings or LLM.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI API or any compatible endpoint
	// (LM Studio, vLLM, llama.cpp server).
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is the Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderAnthropic
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI-compatible (cloud or local)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// IndexProvider identifies a vector index backend.
type IndexProvider string

// Available vector index providers.
const (
	// IndexProviderQdrant is a Qdrant instance reached over REST.
	IndexProviderQdrant IndexProvider = "qdrant"

	// IndexProviderPinecone is the Pinecone cloud service.
	IndexProviderPinecone IndexProvider = "pinecone"
)

// IsValid returns true if the index provider is recognised.
func (p IndexProvider) IsValid() bool {
	return p == IndexProviderQdrant || p == IndexProviderPinecone
}

// String returns the string representation.
func (p IndexProvider) String() string {
	return string(p)
}

// SourceProvider identifies a profile source backend.
type SourceProvider string

// Available profile source providers.
const (
	// SourceProviderPostgres reads profiles from PostgreSQL.
	SourceProviderPostgres SourceProvider = "postgres"

	// SourceProviderSQLite reads profiles from a local SQLite file.
	SourceProviderSQLite SourceProvider = "sqlite"
)

// IsValid returns true if the source provider is recognised.
func (p SourceProvider) IsValid() bool {
	return p == SourceProviderPostgres || p == SourceProviderSQLite
}

// String returns the string representation.
func (p SourceProvider) String() string {
	return string(p)
}

// IngestMode controls how index IDs are generated at write time.
type IngestMode string

// Available ingestion modes.
const (
	// IngestModeAppend generates a fresh random ID per profile.
	// Re-running ingestion duplicates every profile in the index.
	// This is the documented legacy behaviour, not a bug.
	IngestModeAppend IngestMode = "append"

	// IngestModeStable derives the ID deterministically from the
	// profile source's own key, so re-running ingestion upserts in
	// place and is idempotent.
	IngestModeStable IngestMode = "stable"
)

// IsValid returns true if the ingestion mode is recognised.
func (m IngestMode) IsValid() bool {
	return m == IngestModeAppend || m == IngestModeStable
}

// String returns the string representation.
func (m IngestMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m IngestMode) Description() string {
	switch m {
	case IngestModeAppend:
		return "Append (fresh IDs, re-ingest duplicates)"
	case IngestModeStable:
		return "Stable (IDs derived from source keys, re-ingest upserts)"
	default:
		return unknownDescription
	}
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint.
	BaseURL string

	// APIKey is the API key, where the provider needs one.
	APIKey string

	// Dimensions is the vector size the model produces. Must match
	// the index the vectors are written to.
	Dimensions int
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// LLMSettings holds generation provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint.
	BaseURL string

	// APIKey is the API key, where the provider needs one.
	APIKey string

	// Temperature controls generation randomness.
	Temperature float64
}

// IsConfigured returns true if the LLM provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// IndexSettings holds vector index configuration.
type IndexSettings struct {
	// Provider is the vector index backend.
	Provider IndexProvider

	// URL is the index endpoint.
	URL string

	// APIKey authenticates against the index, where required.
	APIKey string

	// Collection is the collection or index name holding profiles.
	Collection string

	// Dimensions is the vector size the index was created with.
	Dimensions int
}

// IsConfigured returns true if the vector index is set up.
func (i IndexSettings) IsConfigured() bool {
	return i.Provider.IsValid() && i.Collection != ""
}

// SourceSettings holds profile source configuration.
type SourceSettings struct {
	// Provider is the profile source backend.
	Provider SourceProvider

	// DSN is the connection string (Postgres) or file path (SQLite).
	DSN string
}

// IsConfigured returns true if the profile source is set up.
func (s SourceSettings) IsConfigured() bool {
	return s.Provider.IsValid() && s.DSN != ""
}

// IngestSettings holds ingestion pipeline configuration.
type IngestSettings struct {
	// BatchSize is the number of profiles per upsert flush.
	BatchSize int

	// Mode controls index ID generation.
	Mode IngestMode

	// RequestsPerSecond throttles embedding calls. Zero disables
	// throttling.
	RequestsPerSecond float64
}

// QuerySettings holds query pipeline configuration.
type QuerySettings struct {
	// TopK is the number of neighbours retrieved per question.
	TopK int
}
