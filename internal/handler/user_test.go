package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mertozler/movie-watchlist/internal/middleware"
	"github.com/mertozler/movie-watchlist/internal/model"
	"github.com/mertozler/movie-watchlist/internal/repository"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) GetOrCreateByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) ToggleNotification(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newUserHandler(store UserStore) *UserHandler {
	return NewUserHandler(store, nil, zap.NewNop())
}

func TestLoginReturnsBareID(t *testing.T) {
	store := new(mockUserStore)
	store.On("GetOrCreateByEmail", mock.Anything, "user@example.com").
		Return(model.User{UserID: 42, Email: "user@example.com", EmailEnabled: true}, nil)

	c, rec := newContext(http.MethodPost, "/", `{"email":"user@example.com"}`)

	require.NoError(t, newUserHandler(store).Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// The body is the bare numeric id the frontend stores locally.
	assert.Equal(t, "42", strings.TrimSpace(rec.Body.String()))
	store.AssertExpectations(t)
}

func TestLoginNormalizesEmail(t *testing.T) {
	store := new(mockUserStore)
	store.On("GetOrCreateByEmail", mock.Anything, "user@example.com").
		Return(model.User{UserID: 42, Email: "user@example.com"}, nil)

	c, rec := newContext(http.MethodPost, "/", `{"email":"  User@Example.COM "}`)

	require.NoError(t, newUserHandler(store).Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	store.AssertExpectations(t)
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	store := new(mockUserStore)

	c, rec := newContext(http.MethodPost, "/", `{"email":"not-an-email"}`)

	require.NoError(t, newUserHandler(store).Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email is not valid")
	store.AssertNotCalled(t, "GetOrCreateByEmail", mock.Anything, mock.Anything)
}

func TestNotificationStatus(t *testing.T) {
	store := new(mockUserStore)
	store.On("GetByID", mock.Anything, int64(42)).
		Return(model.User{UserID: 42, EmailEnabled: true}, nil)

	c, rec := newContext(http.MethodGet, "/", "")
	c.SetParamNames("userId")
	c.SetParamValues("42")

	require.NoError(t, newUserHandler(store).NotificationStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"emailEnabled":true}`, rec.Body.String())
}

func TestToggleNotification(t *testing.T) {
	store := new(mockUserStore)
	store.On("ToggleNotification", mock.Anything, int64(42)).Return(false, nil)

	c, rec := newContext(http.MethodPut, "/", "")
	c.SetParamNames("userId")
	c.SetParamValues("42")

	require.NoError(t, newUserHandler(store).ToggleNotification(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"emailEnabled":false}`, rec.Body.String())
	store.AssertExpectations(t)
}

func TestToggleNotificationPurgesEmbeddingLists(t *testing.T) {
	store := new(mockUserStore)
	store.On("ToggleNotification", mock.Anything, int64(42)).Return(false, nil)

	cache := &recordingCache{}
	h := newUserHandler(store)
	h.Cache = cache

	c, _ := newContext(http.MethodPut, "/", "")
	c.SetParamNames("userId")
	c.SetParamValues("42")

	require.NoError(t, h.ToggleNotification(c))
	// movie payloads embed user.emailEnabled, so the cached movie and
	// group lists must be purged along with the user entries.
	assert.ElementsMatch(t,
		[]string{middleware.GroupUsers, middleware.GroupMovies, middleware.GroupWatchlists},
		cache.groups)
}

func TestToggleNotificationUnknownUser(t *testing.T) {
	store := new(mockUserStore)
	store.On("ToggleNotification", mock.Anything, int64(99)).
		Return(false, repository.ErrNotFound)

	c, rec := newContext(http.MethodPut, "/", "")
	c.SetParamNames("userId")
	c.SetParamValues("99")

	require.NoError(t, newUserHandler(store).ToggleNotification(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
