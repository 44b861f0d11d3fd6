package model

// WatchlistGroup is a user-defined named bucket that movies can belong to.
// Membership is many-to-many through the movie_watchlist_groups join table.
// The frontend calls these "categories".
type WatchlistGroup struct {
	ID   int64  `json:"id"`   // watchlist_groups.id
	Name string `json:"name"` // watchlist_groups.name (unique)
}
