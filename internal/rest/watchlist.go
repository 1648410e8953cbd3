package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"mediaMatcher/business/watchlist"
	"mediaMatcher/domain"
	"mediaMatcher/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	WatchlistService interface {
		List(ctx context.Context, userID uint) ([]domain.WatchlistItem, error)
		Add(ctx context.Context, userID uint, item domain.WatchlistItem) error
		Remove(ctx context.Context, userID uint, itemID string) error
		ExportCSV(ctx context.Context, userID uint) ([]byte, error)
	}

	WatchlistHandler struct {
		validate *validator.Validate
		service  WatchlistService
		timeout  time.Duration
	}

	AddWatchlistRequest struct {
		ItemID      string   `json:"item_id" validate:"required"`
		Title       string   `json:"title" validate:"required"`
		ReleaseDate string   `json:"release_date"`
		PosterPath  string   `json:"poster_path"`
		Overview    string   `json:"overview"`
		VoteAverage float64  `json:"vote_average"`
		Genres      []string `json:"genres"`
	}

	RemoveWatchlistRequest struct {
		ItemID string `json:"item_id" validate:"required"`
	}
)

func NewWatchlistHandler(service WatchlistService) *WatchlistHandler {
	return &WatchlistHandler{
		validate: validator.New(),
		service:  service,
		timeout:  10 * time.Second,
	}
}

func (h *WatchlistHandler) List(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.service.List(ctx, userID)
	if err != nil {
		logger.Error("failed to list watchlist", "user_id", userID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to get watchlist"})
	}

	return c.JSON(http.StatusOK, map[string]any{"watchlist": items})
}

func (h *WatchlistHandler) Add(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req AddWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Item ID and title are required"})
	}

	tags, err := json.Marshal(req.Genres)
	if err != nil {
		tags = []byte("[]")
	}

	item := domain.WatchlistItem{
		ItemID:      req.ItemID,
		Title:       req.Title,
		ReleaseDate: req.ReleaseDate,
		PosterPath:  req.PosterPath,
		Overview:    req.Overview,
		Rating:      req.VoteAverage,
		Tags:        datatypes.JSON(tags),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.service.Add(ctx, userID, item); err != nil {
		if errors.Is(err, watchlist.ErrAlreadyInWatchlist) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "Item already in watchlist"})
		}
		logger.Error("failed to add watchlist item", "user_id", userID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to add to watchlist"})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("added to watchlist"))
}

func (h *WatchlistHandler) Remove(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req RemoveWatchlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "Item ID is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.service.Remove(ctx, userID, req.ItemID); err != nil {
		if errors.Is(err, watchlist.ErrNotInWatchlist) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: "Item not found in watchlist"})
		}
		logger.Error("failed to remove watchlist item", "user_id", userID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to remove from watchlist"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("removed from watchlist"))
}

func (h *WatchlistHandler) ExportCSV(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	data, err := h.service.ExportCSV(ctx, userID)
	if err != nil {
		logger.Error("failed to export watchlist", "user_id", userID, "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "Failed to download CSV"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=my-watchlist.csv`)
	return c.Blob(http.StatusOK, "text/csv", data)
}
