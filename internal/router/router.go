// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/mertozler/movie-watchlist/internal/handler"
)

// Register wires every API route onto the provided Echo instance. The
// route shapes mirror the paths the frontend calls, including the verb
// segments (get-all, add, edit, delete) baked into the original contract.
func Register(e *echo.Echo, movies *handler.MovieHandler, genres *handler.GenreHandler,
	users *handler.UserHandler, watchlists *handler.WatchlistHandler) {

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	m := api.Group("/movies")
	m.GET("/get-all/user/:userId", movies.GetAll)
	m.GET("/filter/user/:userId", movies.Filter)
	m.POST("/add/user/:userId", movies.Add)
	m.PUT("/edit/:movieId", movies.Edit)
	m.DELETE("/delete/:movieId", movies.Delete)
	m.PUT("/mark-watched/:userId/:movieId", movies.MarkWatched)

	g := api.Group("/genres")
	g.GET("", genres.List)
	g.POST("/create", genres.Create)
	g.GET("/suggest/:title", genres.SuggestGenre)

	u := api.Group("/users")
	u.POST("/login", users.Login)
	u.GET("/notification-status/:userId", users.NotificationStatus)
	u.PUT("/change-notification-status/:userId", users.ToggleNotification)

	w := api.Group("/watchlists")
	w.GET("/get-all", watchlists.List)
	w.GET("/movies-by-group/:userId/:groupId", watchlists.MoviesByGroup)
	w.POST("/add-directly", watchlists.Add)
	w.PUT("/edit/:id", watchlists.Edit)
	w.DELETE("/delete/:id", watchlists.Delete)
}
