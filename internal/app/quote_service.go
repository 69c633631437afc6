// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotewall/internal/domain"
	"github.com/jsamuelsen/quotewall/internal/ports"
)

// Quote source names accepted by GetRandomQuote.
const (
	// SourceLocal serves quotes from the built-in static list.
	SourceLocal = "local"

	// SourceRemote serves quotes from the external quote API.
	SourceRemote = "remote"
)

// QuoteService orchestrates quote-related use cases.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type QuoteService struct {
	local         ports.QuoteSource
	remote        ports.QuoteSource
	defaultSource string
	logger        *slog.Logger
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	// Local serves quotes from the static repository. Required.
	Local ports.QuoteSource

	// Remote serves quotes from the external quote API. Optional;
	// requests for the remote source fail with an unavailable error
	// when it is not configured.
	Remote ports.QuoteSource

	// DefaultSource is used when a request does not name a source.
	// Defaults to SourceLocal if empty.
	DefaultSource string

	Logger *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if Local is nil.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Local == nil {
		panic("QuoteService: Local source is required")
	}

	defaultSource := cfg.DefaultSource
	if defaultSource == "" {
		defaultSource = SourceLocal
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		local:         cfg.Local,
		remote:        cfg.Remote,
		defaultSource: defaultSource,
		logger:        logger,
	}
}

// DefaultSource returns the source used when a request doesn't name one.
func (s *QuoteService) DefaultSource() string {
	return s.defaultSource
}

// GetRandomQuote retrieves a random quote from the named source.
// An empty source selects the configured default. Unknown source names
// fail with a validation error.
func (s *QuoteService) GetRandomQuote(ctx context.Context, source string) (*domain.Quote, error) {
	if source == "" {
		source = s.defaultSource
	}

	s.logger.InfoContext(ctx, "fetching random quote",
		slog.String("source", source),
	)

	quoteSource, err := s.resolveSource(source)
	if err != nil {
		s.logger.WarnContext(ctx, "quote source not usable",
			slog.String("source", source),
			slog.Any("error", err),
		)
		return nil, err
	}

	quote, err := quoteSource.RandomQuote(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch random quote",
			slog.String("source", source),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "fetched random quote",
		slog.String("source", source),
		slog.String("attribution", quote.Attribution),
	)

	return quote, nil
}

// resolveSource maps a source name to a configured quote source.
func (s *QuoteService) resolveSource(source string) (ports.QuoteSource, error) {
	switch source {
	case SourceLocal:
		return s.local, nil

	case SourceRemote:
		if s.remote == nil {
			return nil, domain.NewUnavailableError("quote-api", "remote quote source is not configured")
		}
		return s.remote, nil

	default:
		return nil, domain.NewValidationError("source", "must be one of: local, remote")
	}
}
