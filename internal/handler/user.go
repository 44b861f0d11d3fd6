package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mertozler/movie-watchlist/internal/middleware"
	"github.com/mertozler/movie-watchlist/internal/model"
	"github.com/mertozler/movie-watchlist/internal/repository"
)

type UserStore interface {
	GetOrCreateByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	ToggleNotification(ctx context.Context, id int64) (bool, error)
}

type UserHandler struct {
	Users  UserStore
	Cache  CacheInvalidator
	Logger *zap.Logger
}

func NewUserHandler(users UserStore, cache CacheInvalidator, logger *zap.Logger) *UserHandler {
	return &UserHandler{Users: users, Cache: cache, Logger: logger}
}

// Login handles POST /api/users/login. There is no password: the email is
// the whole identity, a new user is created on first sight, and the
// response body is the bare numeric user id the frontend stores locally.
func (h *UserHandler) Login(c echo.Context) error {
	var dto LoginDTO
	if err := c.Bind(&dto); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetOrCreateByEmail(ctx, dto.Email)
	if err != nil {
		h.Logger.Error("login failed", zap.String("email", dto.Email), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not log in")
	}
	return c.JSON(http.StatusOK, u.UserID)
}

// NotificationStatus handles GET /api/users/notification-status/:userId.
func (h *UserHandler) NotificationStatus(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badID(c, "user id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "user not found")
		}
		h.Logger.Error("load user failed", zap.Int64("user_id", userID), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not load user")
	}
	return c.JSON(http.StatusOK, echo.Map{"emailEnabled": u.EmailEnabled})
}

// ToggleNotification handles PUT /api/users/change-notification-status/:userId
// and returns the new flag value.
func (h *UserHandler) ToggleNotification(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return badID(c, "user id")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	enabled, err := h.Users.ToggleNotification(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "user not found")
		}
		h.Logger.Error("toggle notification failed", zap.Int64("user_id", userID), zap.Error(err))
		return fail(c, http.StatusInternalServerError, "could not change notification status")
	}

	// Every movie payload embeds user.emailEnabled, so the cached movie
	// and group lists go stale along with the user entries.
	invalidate(ctx, h.Cache, middleware.GroupUsers, middleware.GroupMovies, middleware.GroupWatchlists)
	return c.JSON(http.StatusOK, echo.Map{"emailEnabled": enabled})
}
