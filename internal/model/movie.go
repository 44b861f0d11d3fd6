package model

import "time"

// Movie status values.  The transition is one-directional: a movie moves
// from "To Watch" to "Watched" and never back.
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

// Statuses and WatchOrders list the accepted values in rank order.
// WatchOrders doubles as the sort order used by the filter endpoint.
var (
	Statuses    = []string{StatusToWatch, StatusWatched}
	WatchOrders = []string{OrderNextUp, OrderWhenFree, OrderSomeday}
)

// ValidStatus reports whether s is one of the accepted movie statuses.
func ValidStatus(s string) bool {
	return s == StatusToWatch || s == StatusWatched
}

// ValidWatchOrder reports whether s is one of the accepted watch-order buckets.
func ValidWatchOrder(s string) bool {
	for _, o := range WatchOrders {
		if s == o {
			return true
		}
	}
	return false
}

// Movie is a single entry in a user's watchlist.  Every movie belongs to
// exactly one user and has exactly one genre; group membership is optional
// and carried by name, matching the wire format consumed by the frontend.
//
// Fields:
//
//	MovieID             – primary key identifier (movies.id).
//	Title               – movie title.
//	Description         – free-form description.
//	Status              – "To Watch" or "Watched".
//	WatchlistOrder      – priority bucket for unwatched movies.
//	Genre               – owning genre (id + name).
//	User                – owning user.
//	WatchlistGroupNames – names of the groups the movie belongs to.
type Movie struct {
	MovieID             int64     `json:"movieId"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	Status              string    `json:"status"`
	WatchlistOrder      string    `json:"watchlistOrder"`
	Genre               Genre     `json:"genre"`
	User                User      `json:"user"`
	WatchlistGroupNames []string  `json:"watchlistGroupNames"`
	CreatedAt           time.Time `json:"-"`
	UpdatedAt           time.Time `json:"-"`
}
