// Package acl implements the Anti-Corruption Layer pattern for external services.
// ACL adapters translate between external API models and domain models,
// protecting the domain from external system changes.
package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen/quotewall/internal/adapters/clients"
	"github.com/jsamuelsen/quotewall/internal/domain"
	"github.com/jsamuelsen/quotewall/internal/platform/logging"
)

// randomQuotePath asks the quote API for posts in random order.
// The base URL already points at the posts collection, so only the
// query string is appended.
const randomQuotePath = "?filter[orderby]=rand"

// RemoteSourceConfig contains configuration for the remote quote source.
type RemoteSourceConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the quote API posts endpoint.
	Client *clients.Client

	// ServiceName identifies the downstream service in errors and health checks.
	// Defaults to "quote-api" if empty.
	ServiceName string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// RemoteSource implements ports.QuoteSource against a WordPress-style
// quote API. It translates the external post representation to the
// domain Quote type.
type RemoteSource struct {
	client      *clients.Client
	serviceName string
	logger      *slog.Logger
}

// NewRemoteSource creates a new remote quote source adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewRemoteSource(cfg RemoteSourceConfig) *RemoteSource {
	if cfg.Client == nil {
		panic("RemoteSource: Client is required")
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "quote-api"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &RemoteSource{
		client:      cfg.Client,
		serviceName: serviceName,
		logger:      logger,
	}
}

// quoteRecord is the external DTO from the quote API.
// This is an internal type - never exposed outside the ACL.
type quoteRecord struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// RandomQuote fetches a random quote from the external API.
// Implements ports.QuoteSource.
//
// The API returns a JSON array of posts in random order; only the first
// element is used. An empty or undecodable array is reported as a
// malformed quote error rather than silently returning nothing.
func (s *RemoteSource) RandomQuote(ctx context.Context) (*domain.Quote, error) {
	s.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", randomQuotePath))
	s.logger.DebugContext(ctx, "fetching random quote")

	resp, err := s.client.Get(ctx, randomQuotePath)
	if err != nil {
		return nil, domain.NewUnavailableError(s.serviceName, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	s.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("path", randomQuotePath),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return nil, s.handleErrorResponse(resp)
	}

	return s.parseQuoteResponse(ctx, resp.Body)
}

// parseQuoteResponse reads and translates the external DTO to a domain Quote.
// This is the core ACL translation function.
func (s *RemoteSource) parseQuoteResponse(ctx context.Context, body io.Reader) (*domain.Quote, error) {
	var records []quoteRecord

	err := json.NewDecoder(body).Decode(&records)
	if err != nil {
		return nil, domain.NewMalformedQuoteError(s.serviceName, fmt.Sprintf("decoding response: %v", err))
	}

	if len(records) == 0 {
		return nil, domain.NewMalformedQuoteError(s.serviceName, "response contained no quotes")
	}

	quote := s.translateToDomain(&records[0])

	s.logger.Log(ctx, logging.LevelTrace, "translated external DTO to domain",
		slog.String("attribution", quote.Attribution))

	return quote, nil
}

// translateToDomain converts the external post to a domain Quote.
// The post content carries the quote text and the title its attribution.
func (s *RemoteSource) translateToDomain(record *quoteRecord) *domain.Quote {
	return &domain.Quote{
		Text:        record.Content,
		Attribution: record.Title,
	}
}

// handleErrorResponse converts HTTP error responses to domain errors.
func (s *RemoteSource) handleErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	s.logger.Warn("quote API error",
		slog.Int("status_code", resp.StatusCode),
		slog.String("body", string(body)),
	)

	return domain.NewUnavailableError(s.serviceName, fmt.Sprintf("HTTP %d", resp.StatusCode))
}

// Name returns the health check name for this source.
// Implements ports.HealthChecker.
func (s *RemoteSource) Name() string {
	return s.serviceName
}

// Check performs a health check by fetching a random quote.
// Implements ports.HealthChecker.
func (s *RemoteSource) Check(ctx context.Context) error {
	resp, err := s.client.Get(ctx, randomQuotePath)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	return nil
}
