package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mertozler/movie-watchlist/internal/middleware"
	"github.com/mertozler/movie-watchlist/internal/model"
	"github.com/mertozler/movie-watchlist/internal/queue"
	"github.com/mertozler/movie-watchlist/internal/repository"
	queue_publisher "github.com/mertozler/movie-watchlist/internal/service"
)

// MovieStore is the slice of the movie repository the handlers need.
// Declared here so tests can substitute a mock.
type MovieStore interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Movie, error)
	Filter(ctx context.Context, userID int64, f repository.MovieFilter) ([]model.Movie, error)
	Create(ctx context.Context, userID int64, in repository.MovieInput) (model.Movie, error)
	Update(ctx context.Context, movieID int64, in repository.MovieInput) (model.Movie, error)
	Delete(ctx context.Context, movieID int64) error
	MarkWatched(ctx context.Context, userID, movieID int64) error
	GetByID(ctx context.Context, movieID int64) (model.Movie, error)
}

// MovieHandler bundles dependencies for the movie endpoints.
type MovieHandler struct {
	Movies  MovieStore
	Cache   CacheInvalidator
	Logger  *zap.Logger
	Publish func(ctx context.Context, ev queue.EmailEvent) error
}

func NewMovieHandler(movies MovieStore, cache CacheInvalidator, logger *zap.Logger) *MovieHandler {
	return &MovieHandler{
		Movies:  movies,
		Cache:   cache,
		Logger:  logger,
		Publish: queue_publisher.PublishEmail,
	}
}

// GetAll handles GET /api/movies/get-all/user/:userId.
func (h *MovieHandler) GetAll(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badID(c, "user id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	movies, err := h.Movies.ListByUser(ctx, userID)
	if err != nil {
		h.Logger.Error("list movies failed", zap.Int64("user_id", userID), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not load movies")
	}
	return c.JSON(http.StatusOK, movies)
}

// Filter handles GET /api/movies/filter/user/:userId. Absent query
// parameters leave the corresponding constraint off entirely.
func (h *MovieHandler) Filter(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badID(c, "user id")
	}

	f := repository.MovieFilter{
		Genre:          c.QueryParam("genre"),
		Status:         c.QueryParam("status"),
		WatchlistOrder: c.QueryParam("watchlistOrder"),
		Sort:           c.QueryParam("sort"),
	}
	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid category id")
		}
		f.CategoryID = id
	}
	if f.Status != "" && !model.ValidStatus(f.Status) {
		return fail(c, http.StatusBadRequest, "Status must be one of: To Watch, Watched")
	}
	if f.WatchlistOrder != "" && !model.ValidWatchOrder(f.WatchlistOrder) {
		return fail(c, http.StatusBadRequest, "Watchlist order must be one of: Next Up, When I have time, Someday")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	movies, err := h.Movies.Filter(ctx, userID, f)
	if err != nil {
		h.Logger.Error("filter movies failed", zap.Int64("user_id", userID), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not load movies")
	}
	return c.JSON(http.StatusOK, movies)
}

// Add handles POST /api/movies/add/user/:userId.
func (h *MovieHandler) Add(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badID(c, "user id")
	}
	var dto AddMovieDTO
	if err := c.Bind(&dto); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	movie, err := h.Movies.Create(ctx, userID, movieInput(dto))
	if err != nil {
		h.Logger.Error("add movie failed", zap.Int64("user_id", userID), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not add movie")
	}

	invalidate(ctx, h.Cache, middleware.GroupMovies, middleware.GroupWatchlists, middleware.GroupGenres)
	h.notify(queue.KindMovieAdded, movie)
	return c.JSON(http.StatusCreated, movie)
}

// Edit handles PUT /api/movies/edit/:movieId. The group membership set
// is replaced wholesale with the names in the body.
func (h *MovieHandler) Edit(c echo.Context) error {
	movieID, ok := pathID(c, "movieId")
	if !ok {
		return badID(c, "movie id")
	}
	var dto AddMovieDTO
	if err := c.Bind(&dto); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	movie, err := h.Movies.Update(ctx, movieID, movieInput(dto))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "movie not found")
		}
		h.Logger.Error("edit movie failed", zap.Int64("movie_id", movieID), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not edit movie")
	}

	invalidate(ctx, h.Cache, middleware.GroupMovies, middleware.GroupWatchlists, middleware.GroupGenres)
	return c.JSON(http.StatusOK, movie)
}

// Delete handles DELETE /api/movies/delete/:movieId.
func (h *MovieHandler) Delete(c echo.Context) error {
	movieID, ok := pathID(c, "movieId")
	if !ok {
		return badID(c, "movie id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Movies.Delete(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "movie not found")
		}
		h.Logger.Error("delete movie failed", zap.Int64("movie_id", movieID), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not delete movie")
	}

	invalidate(ctx, h.Cache, middleware.GroupMovies, middleware.GroupWatchlists)
	return c.NoContent(http.StatusNoContent)
}

// MarkWatched handles PUT /api/movies/mark-watched/:userId/:movieId.
// Re-marking an already watched movie is a business error: 400 with the
// message shown to the user verbatim.
func (h *MovieHandler) MarkWatched(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badID(c, "user id")
	}
	movieID, ok := pathID(c, "movieId")
	if !ok {
		return badID(c, "movie id")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Movies.MarkWatched(ctx, userID, movieID); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyWatched):
			return fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			return fail(c, http.StatusNotFound, "movie not found")
		default:
			h.Logger.Error("mark watched failed",
				zap.Int64("user_id", userID), zap.Int64("movie_id", movieID), zap.Error(err))
			return fail(c, http.StatusInternalServerError, "could not mark movie as watched")
		}
	}

	// movies-by-group responses embed the status too, so the watchlists
	// group goes stale along with the movie lists.
	invalidate(ctx, h.Cache, middleware.GroupMovies, middleware.GroupWatchlists)
	if movie, err := h.Movies.GetByID(ctx, movieID); err == nil {
		h.notify(queue.KindMovieWatched, movie)
	}
	return c.JSON(http.StatusOK, "Movie marked as watched")
}

// notify publishes an email event when the owner opted in. Publish
// failures never fail the request.
func (h *MovieHandler) notify(kind string, movie model.Movie) {
	if h.Publish == nil || !movie.User.EmailEnabled {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	_ = h.Publish(ctx, queue.EmailEvent{
		Kind:       kind,
		UserID:     movie.User.UserID,
		Email:      movie.User.Email,
		MovieTitle: movie.Title,
		Genre:      movie.Genre.Name,
	})
}

func movieInput(dto AddMovieDTO) repository.MovieInput {
	return repository.MovieInput{
		Title:          dto.Title,
		Description:    dto.Description,
		Status:         dto.Status,
		WatchlistOrder: dto.WatchlistOrder,
		GenreName:      dto.GenreName,
		GroupNames:     dto.WatchlistGroupNames,
	}
}
