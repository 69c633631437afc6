package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotewall/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotewall/internal/app"
	"github.com/jsamuelsen/quotewall/internal/domain"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// QuoteResponse is the HTTP response structure for a quote.
type QuoteResponse struct {
	Text        string `json:"text"`
	Attribution string `json:"attribution"`
	Source      string `json:"source"`
}

// toQuoteResponse converts a domain Quote to an HTTP response.
func toQuoteResponse(q *domain.Quote, source string) *QuoteResponse {
	return &QuoteResponse{
		Text:        q.Text,
		Attribution: q.Attribution,
		Source:      source,
	}
}

// GetRandomQuote handles GET /api/v1/quotes/random
// Returns a random quote from the local list or the external quote API.
// The optional ?source=local|remote query parameter overrides the
// configured default source.
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	source := c.Query("source")

	quote, err := h.service.GetRandomQuote(c.Request.Context(), source)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	if source == "" {
		source = h.service.DefaultSource()
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote, source))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("/random", h.GetRandomQuote)
}
