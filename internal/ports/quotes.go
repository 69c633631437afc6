// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNoQuotes, ErrUnavailable, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/jsamuelsen/quotewall/internal/domain"
)

// RandomSource produces uniformly distributed pseudo-random integers.
// The local quote source uses it to pick an index; tests substitute a
// deterministic implementation.
type RandomSource interface {
	// IntN returns an integer r with min <= r < max.
	// Implementations may panic if min >= max; callers are expected to
	// supply a valid range.
	IntN(min, max int) int
}

// QuoteSource supplies one quote chosen at random per call.
// Two adapters implement it: the in-process static repository and the
// remote HTTP quote API client.
type QuoteSource interface {
	// RandomQuote returns a single quote.
	// Returns domain.ErrNoQuotes if the source has nothing to select from,
	// domain.ErrMalformedQuote if the source data cannot be decoded, and
	// domain.ErrUnavailable if a remote source is unreachable.
	RandomQuote(ctx context.Context) (*domain.Quote, error)
}
