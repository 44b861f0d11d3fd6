package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mertozler/movie-watchlist/internal/middleware"
	"github.com/mertozler/movie-watchlist/internal/model"
)

type GenreStore interface {
	List(ctx context.Context) ([]model.Genre, error)
	GetOrCreate(ctx context.Context, name string) (model.Genre, error)
}

// Suggester asks the external AI backend for a genre fitting a title.
type Suggester interface {
	SuggestGenre(ctx context.Context, title string) (string, error)
}

// suggestFailMsg is the one message every suggestion failure maps to;
// the upstream is opaque and the only remedy is retrying later.
const suggestFailMsg = "suggestion service is overwhelmed at the moment, try later"

type GenreHandler struct {
	Genres  GenreStore
	Suggest Suggester
	Cache   CacheInvalidator
	Logger  *zap.Logger
}

func NewGenreHandler(genres GenreStore, suggest Suggester, cache CacheInvalidator, logger *zap.Logger) *GenreHandler {
	return &GenreHandler{Genres: genres, Suggest: suggest, Cache: cache, Logger: logger}
}

// List handles GET /api/genres.
func (h *GenreHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	genres, err := h.Genres.List(ctx)
	if err != nil {
		h.Logger.Error("list genres failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not load genres")
	}
	return c.JSON(http.StatusOK, genres)
}

// Create handles POST /api/genres/create. The body is the bare genre
// name as text/plain; creation is idempotent (create-or-get), so posting
// an existing name returns that genre.
func (h *GenreHandler) Create(c echo.Context) error {
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, 1024))
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	name := strings.TrimSpace(string(raw))
	if name == "" {
		return fail(c, http.StatusBadRequest, "Genre name is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	genre, err := h.Genres.GetOrCreate(ctx, name)
	if err != nil {
		h.Logger.Error("create genre failed", zap.String("name", name), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not create genre")
	}

	invalidate(ctx, h.Cache, middleware.GroupGenres)
	return c.JSON(http.StatusCreated, genre)
}

// SuggestGenre handles GET /api/genres/suggest/:title. Every upstream
// failure collapses into one 500 with a fixed retry message.
func (h *GenreHandler) SuggestGenre(c echo.Context) error {
	title := strings.TrimSpace(c.Param("title"))
	if title == "" {
		return fail(c, http.StatusBadRequest, "title is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	suggestion, err := h.Suggest.SuggestGenre(ctx, title)
	if err != nil {
		h.Logger.Warn("genre suggestion failed", zap.String("title", title), zap.Error(err))
		return fail(c, http.StatusInternalServerError, suggestFailMsg)
	}
	return c.JSON(http.StatusOK, suggestion)
}
