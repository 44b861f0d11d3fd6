package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mertozler/movie-watchlist/internal/middleware"
	"github.com/mertozler/movie-watchlist/internal/model"
	"github.com/mertozler/movie-watchlist/internal/repository"
)

type WatchlistStore interface {
	List(ctx context.Context) ([]model.WatchlistGroup, error)
	Create(ctx context.Context, name string) (model.WatchlistGroup, error)
	Rename(ctx context.Context, id int64, newName string) error
	Delete(ctx context.Context, id int64, deleteMovies bool) error
}

// GroupMovieLister fetches the movies of one group for one user.
type GroupMovieLister interface {
	ListByGroup(ctx context.Context, userID, groupID int64) ([]model.Movie, error)
}

type WatchlistHandler struct {
	Groups WatchlistStore
	Movies GroupMovieLister
	Cache  CacheInvalidator
	Logger *zap.Logger
}

func NewWatchlistHandler(groups WatchlistStore, movies GroupMovieLister, cache CacheInvalidator, logger *zap.Logger) *WatchlistHandler {
	return &WatchlistHandler{Groups: groups, Movies: movies, Cache: cache, Logger: logger}
}

// List handles GET /api/watchlists/get-all.
func (h *WatchlistHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	groups, err := h.Groups.List(ctx)
	if err != nil {
		h.Logger.Error("list watchlist groups failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not load categories")
	}
	return c.JSON(http.StatusOK, groups)
}

// MoviesByGroup handles GET /api/watchlists/movies-by-group/:userId/:groupId.
func (h *WatchlistHandler) MoviesByGroup(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badID(c, "user id")
	}
	groupID, ok := pathID(c, "groupId")
	if !ok {
		return badID(c, "group id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	movies, err := h.Movies.ListByGroup(ctx, userID, groupID)
	if err != nil {
		h.Logger.Error("list movies by group failed",
			zap.Int64("user_id", userID), zap.Int64("group_id", groupID), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not load movies")
	}
	return c.JSON(http.StatusOK, movies)
}

// Add handles POST /api/watchlists/add-directly?name=. Names are unique;
// a duplicate is 409 so the frontend can tell the user the name is taken.
func (h *WatchlistHandler) Add(c echo.Context) error {
	name := strings.TrimSpace(c.QueryParam("name"))
	if name == "" {
		return fail(c, http.StatusBadRequest, "Category name is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	group, err := h.Groups.Create(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fail(c, http.StatusConflict, "A category with this name already exists")
		}
		h.Logger.Error("create watchlist group failed", zap.String("name", name), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not create category")
	}

	invalidate(ctx, h.Cache, middleware.GroupWatchlists)
	return c.JSON(http.StatusCreated, group)
}

// Edit handles PUT /api/watchlists/edit/:id?newName=.
func (h *WatchlistHandler) Edit(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c, "group id")
	}
	newName := strings.TrimSpace(c.QueryParam("newName"))
	if newName == "" {
		return fail(c, http.StatusBadRequest, "Category name is required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Groups.Rename(ctx, id, newName); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return fail(c, http.StatusNotFound, "Category not found")
		case errors.Is(err, repository.ErrDuplicate):
			return fail(c, http.StatusConflict, "A category with this name already exists")
		default:
			h.Logger.Error("rename watchlist group failed", zap.Int64("group_id", id), zap.Error(err))
			return fail(c, http.StatusInternalServerError, "could not rename category")
		}
	}

	invalidate(ctx, h.Cache, middleware.GroupWatchlists, middleware.GroupMovies)
	return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /api/watchlists/delete/:id?deleteMovies=.
// With deleteMovies=false (the default) member movies survive and only
// lose the membership.
func (h *WatchlistHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return badID(c, "group id")
	}
	deleteMovies := strings.EqualFold(c.QueryParam("deleteMovies"), "true")

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Groups.Delete(ctx, id, deleteMovies); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "Category not found")
		}
		h.Logger.Error("delete watchlist group failed", zap.Int64("group_id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not delete category")
	}

	invalidate(ctx, h.Cache, middleware.GroupWatchlists, middleware.GroupMovies)
	return c.NoContent(http.StatusNoContent)
}
