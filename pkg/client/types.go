package client

// Movie status values accepted by the API.
const (
	StatusToWatch = "To Watch"
	StatusWatched = "Watched"
)

// Watch-order buckets for unwatched movies, from most to least urgent.
const (
	OrderNextUp   = "Next Up"
	OrderWhenFree = "When I have time"
	OrderSomeday  = "Someday"
)

// Genre is one entry of the shared genre taxonomy.
type Genre struct {
	GenreID int64  `json:"genreId"`
	Name    string `json:"name"`
}

// User is the owner embedded in every movie payload.
type User struct {
	UserID       int64  `json:"userId"`
	Email        string `json:"email"`
	EmailEnabled bool   `json:"emailEnabled"`
}

// Movie mirrors the wire shape of a watchlist entry: one genre, one
// owning user and the names of the groups it belongs to.
type Movie struct {
	MovieID             int64    `json:"movieId"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Status              string   `json:"status"`
	WatchlistOrder      string   `json:"watchlistOrder"`
	Genre               Genre    `json:"genre"`
	User                User     `json:"user"`
	WatchlistGroupNames []string `json:"watchlistGroupNames"`
}

// WatchlistGroup is a named bucket of movies (a "category" in the UI).
type WatchlistGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
