// Package handler contains the HTTP handlers for the watchlist API.
// Handlers classify failures at the boundary: validation and business
// errors become 400 with their message verbatim, duplicates 409, unknown
// ids 404, and anything else a generic 500 with the detail logged.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// dbTimeout bounds every storage call made from a handler.
const dbTimeout = 5 * time.Second

// CacheInvalidator purges cached read responses by logical group.
// Satisfied by middleware.Invalidator; declared here so tests can record
// which groups a mutation purges.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, groups ...string)
}

func invalidate(ctx context.Context, cache CacheInvalidator, groups ...string) {
	if cache != nil {
		cache.Invalidate(ctx, groups...)
	}
}

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// fail writes the uniform error body. The frontend reads the "message"
// field and shows it to the user for 400/409 responses.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"message": msg})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badID(c echo.Context, name string) error {
	return fail(c, http.StatusBadRequest, "invalid "+name)
}
