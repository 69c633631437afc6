// Package repository provides the in-process quote source: an ordered,
// immutable list of quotes selected by a random index.
package repository

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotewall/internal/domain"
	"github.com/jsamuelsen/quotewall/internal/ports"
)

// sourceName identifies this source in errors and logs.
const sourceName = "static"

// Static holds an ordered list of quotes and picks one at random per call.
// It implements ports.QuoteSource. The list is copied at construction and
// never mutated afterwards.
type Static struct {
	quotes []domain.Quote
	random ports.RandomSource
	logger *slog.Logger
}

// StaticConfig contains configuration for the static repository.
type StaticConfig struct {
	// Quotes is the ordered quote list. Defaults to the built-in list if nil.
	// An explicitly empty (non-nil, zero-length) list is kept as-is so the
	// empty-source contract can be exercised.
	Quotes []domain.Quote

	// Random picks the selection index. Required.
	Random ports.RandomSource

	// Logger is the structured logger. Defaults to slog.Default() if nil.
	Logger *slog.Logger
}

// NewStatic creates a static quote repository.
// Panics if Random is nil.
func NewStatic(cfg StaticConfig) *Static {
	if cfg.Random == nil {
		panic("repository.Static: Random is required")
	}

	quotes := cfg.Quotes
	if quotes == nil {
		quotes = defaultQuotes()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	owned := make([]domain.Quote, len(quotes))
	copy(owned, quotes)

	return &Static{
		quotes: owned,
		random: cfg.Random,
		logger: logger.With(slog.String("component", "repository.Static")),
	}
}

// Len returns the number of quotes in the list.
func (r *Static) Len() int {
	return len(r.quotes)
}

// At returns the quote at index i. Panics if i is out of range,
// matching slice semantics; use RandomQuote for guarded selection.
func (r *Static) At(i int) domain.Quote {
	return r.quotes[i]
}

// RandomQuote returns a quote at a uniformly chosen index.
// The chosen index i always satisfies 0 <= i < Len().
// Returns domain.ErrNoQuotes if the list is empty instead of selecting
// out of bounds.
func (r *Static) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	if len(r.quotes) == 0 {
		return nil, domain.NewNoQuotesError(sourceName)
	}

	i := r.random.IntN(0, len(r.quotes))
	quote := r.quotes[i]

	r.logger.DebugContext(ctx, "selected quote",
		slog.Int("index", i),
		slog.String("attribution", quote.Attribution),
	)

	return &quote, nil
}

// Name returns the health check name for this source.
// Implements ports.HealthChecker.
func (r *Static) Name() string {
	return sourceName + "-quotes"
}

// Check reports unhealthy only when the list is empty, since an empty
// list makes every RandomQuote call fail.
// Implements ports.HealthChecker.
func (r *Static) Check(_ context.Context) error {
	if len(r.quotes) == 0 {
		return domain.NewNoQuotesError(sourceName)
	}

	return nil
}

// defaultQuotes returns the built-in quote list.
func defaultQuotes() []domain.Quote {
	return []domain.Quote{
		{Text: "Testing leads to failure, and failure leads to understanding.", Attribution: "Burt Rutan"},
		{Text: "Talk is cheap. Show me the code.", Attribution: "Linus Torvalds"},
		{Text: "Programs must be written for people to read, and only incidentally for machines to execute.", Attribution: "Harold Abelson"},
		{Text: "Simplicity is the soul of efficiency.", Attribution: "Austin Freeman"},
		{Text: "Before software can be reusable it first has to be usable.", Attribution: "Ralph Johnson"},
		{Text: "Premature optimization is the root of all evil.", Attribution: "Donald Knuth"},
		{Text: "Do. Or do not. There is no try.", Attribution: "Yoda"},
	}
}
