// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ProfileSource: Reads mentor profile rows for ingestion
//   - EmbeddingService: Maps text to fixed-dimension vectors
//   - VectorIndex: Stores vectors and answers nearest-neighbour queries
//   - LLMService: Text generation for query expansion and answering
//   - PromptStore: Customisable prompt templates
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
