package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"mediaMatcher/business/recommend"
	"mediaMatcher/domain"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ResponseError mirrors the catalog-era error body shape.
type ResponseError struct {
	Message string `json:"error"`
}

type (
	RecommendService interface {
		Recommend(ctx context.Context, userID uint, media domain.MediaType, liked []domain.LikedItem) (*domain.Recommendation, error)
	}

	RecommendHandler struct {
		validate *validator.Validate
		service  RecommendService
		timeout  time.Duration
	}

	likedScreenItem struct {
		ID               int     `json:"id" validate:"required"`
		Title            string  `json:"title"`
		Name             string  `json:"name"`
		GenreIDs         []int   `json:"genre_ids"`
		VoteAverage      float64 `json:"vote_average"`
		ReleaseDate      string  `json:"release_date"`
		FirstAirDate     string  `json:"first_air_date"`
		OriginalLanguage string  `json:"original_language"`
	}

	likedBook struct {
		ID            string   `json:"id" validate:"required"`
		Title         string   `json:"title" validate:"required"`
		Categories    []string `json:"categories"`
		Authors       []string `json:"authors"`
		VoteAverage   float64  `json:"vote_average"`
		PublishedDate string   `json:"published_date"`
		Language      string   `json:"language"`
	}

	MovieRecommendationRequest struct {
		Movies []likedScreenItem `json:"movies" validate:"required,min=3,dive"`
	}

	TVRecommendationRequest struct {
		TVSeries []likedScreenItem `json:"tv_series" validate:"required,min=3,dive"`
	}

	BookRecommendationRequest struct {
		Books []likedBook `json:"books" validate:"required,min=3,dive"`
	}
)

func NewRecommendHandler(service RecommendService) *RecommendHandler {
	return &RecommendHandler{
		validate: validator.New(),
		service:  service,
		timeout:  15 * time.Second,
	}
}

func (h *RecommendHandler) RecommendMovie(c echo.Context) error {
	var req MovieRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Please provide at least 3 movies"})
	}

	liked := make([]domain.LikedItem, 0, len(req.Movies))
	for _, m := range req.Movies {
		liked = append(liked, m.toLikedItem(false))
	}

	return h.respond(c, domain.MediaTypeMovie, liked)
}

func (h *RecommendHandler) RecommendTV(c echo.Context) error {
	var req TVRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Please provide at least 3 TV series"})
	}

	liked := make([]domain.LikedItem, 0, len(req.TVSeries))
	for _, t := range req.TVSeries {
		liked = append(liked, t.toLikedItem(true))
	}

	return h.respond(c, domain.MediaTypeTV, liked)
}

func (h *RecommendHandler) RecommendBook(c echo.Context) error {
	var req BookRecommendationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Please provide at least 3 books"})
	}

	liked := make([]domain.LikedItem, 0, len(req.Books))
	for _, b := range req.Books {
		liked = append(liked, domain.LikedItem{
			ID:          b.ID,
			Title:       b.Title,
			Tags:        b.Categories,
			Rating:      b.VoteAverage,
			ReleaseDate: b.PublishedDate,
			Language:    b.Language,
			Authors:     b.Authors,
		})
	}

	return h.respond(c, domain.MediaTypeBook, liked)
}

func (h *RecommendHandler) respond(c echo.Context, media domain.MediaType, liked []domain.LikedItem) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rec, err := h.service.Recommend(ctx, userID, media, liked)
	if err != nil {
		switch {
		case errors.Is(err, recommend.ErrInsufficientInput):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		case errors.Is(err, recommend.ErrNoCandidates):
			return c.JSON(http.StatusOK, map[string]any{
				"recommendation": nil,
				"message":        recommend.ExhaustionMessage,
			})
		default:
			return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to get recommendation"})
		}
	}

	return c.JSON(http.StatusOK, map[string]any{"recommendation": rec})
}

func (item likedScreenItem) toLikedItem(tv bool) domain.LikedItem {
	title := item.Title
	date := item.ReleaseDate
	if tv {
		title = item.Name
		date = item.FirstAirDate
	}

	tags := make([]string, 0, len(item.GenreIDs))
	for _, id := range item.GenreIDs {
		tags = append(tags, strconv.Itoa(id))
	}

	return domain.LikedItem{
		ID:          strconv.Itoa(item.ID),
		Title:       title,
		Tags:        tags,
		Rating:      item.VoteAverage,
		ReleaseDate: date,
		Language:    item.OriginalLanguage,
	}
}
