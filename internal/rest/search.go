package rest

import (
	"context"
	"net/http"
	"time"

	"mediaMatcher/domain"
	"mediaMatcher/pkg/logger"

	"github.com/labstack/echo/v4"
)

const (
	searchResultLimit     = 10
	suggestionResultLimit = 5
	minSuggestionQueryLen = 2
)

// CatalogSearcher is the read side of the catalog used by the search and
// autocomplete endpoints.
type CatalogSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.Candidate, error)
}

type SearchHandler struct {
	movies  CatalogSearcher
	tv      CatalogSearcher
	books   CatalogSearcher
	timeout time.Duration
}

func NewSearchHandler(movies, tv, books CatalogSearcher) *SearchHandler {
	return &SearchHandler{
		movies:  movies,
		tv:      tv,
		books:   books,
		timeout: 10 * time.Second,
	}
}

// Search endpoints degrade to an empty list on upstream failure; the client
// treats "no results" and "catalog down" the same way.

func (h *SearchHandler) SearchMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lookup(c, h.movies, searchResultLimit, 1, true))
}

func (h *SearchHandler) SearchTV(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lookup(c, h.tv, searchResultLimit, 1, true))
}

// SearchBooks returns the single best match, or null.
func (h *SearchHandler) SearchBooks(c echo.Context) error {
	results := h.lookup(c, h.books, suggestionResultLimit, 1, false)
	if len(results) == 0 {
		return c.JSON(http.StatusOK, map[string]any{"book": nil})
	}
	return c.JSON(http.StatusOK, map[string]any{"book": results[0]})
}

func (h *SearchHandler) SuggestMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lookup(c, h.movies, suggestionResultLimit, minSuggestionQueryLen, false))
}

func (h *SearchHandler) SuggestTV(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lookup(c, h.tv, suggestionResultLimit, minSuggestionQueryLen, false))
}

func (h *SearchHandler) SuggestBooks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lookup(c, h.books, suggestionResultLimit, minSuggestionQueryLen, false))
}

func (h *SearchHandler) lookup(c echo.Context, catalog CatalogSearcher, limit, minQueryLen int, requirePoster bool) []domain.Candidate {
	query := c.QueryParam("query")
	if len(query) < minQueryLen {
		return []domain.Candidate{}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	results, err := catalog.Search(ctx, query, limit)
	if err != nil {
		logger.Warn("catalog search failed", "query", query, "error", err)
		return []domain.Candidate{}
	}

	if !requirePoster {
		return results
	}

	filtered := make([]domain.Candidate, 0, len(results))
	for _, r := range results {
		if r.PosterPath != "" {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
