// Package domain defines the core business entities for GrantBot.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ProfileRecord: A mentor profile row from the profile source
//   - IndexedProfile: A profile embedded and written to the vector index
//   - RetrievedMatch: A scored nearest-neighbour hit for one query
//   - Answer: The tagged result of answer synthesis
//   - QuerySession: An ordered chat transcript of user/assistant turns
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
