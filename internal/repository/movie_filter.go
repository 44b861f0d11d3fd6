package repository

import "strings"

// MovieFilter defines the optional constraints for the filtered movie
// fetch. Zero values mean "unconstrained"; absent query parameters never
// reach the SQL. Sort accepts "asc" or "desc" to order by watch-order
// bucket; anything else falls back to alphabetical by title.
type MovieFilter struct {
	Genre          string
	Status         string
	WatchlistOrder string
	Sort           string
	CategoryID     int64
}

// watchOrderField ranks the watch-order buckets from most to least urgent.
const watchOrderField = "FIELD(m.watchlist_order,'Next Up','When I have time','Someday')"

// buildWhere translates a MovieFilter into SQL condition fragments and
// their arguments. The user scope is always present; filter fields are
// appended only when set.
func (f MovieFilter) buildWhere(userID int64) (string, []any) {
	where := []string{"m.user_id = ?"}
	args := []any{userID}

	if f.Genre != "" {
		where = append(where, "g.name = ?")
		args = append(args, f.Genre)
	}
	if f.Status != "" {
		where = append(where, "m.status = ?")
		args = append(args, f.Status)
	}
	if f.WatchlistOrder != "" {
		where = append(where, "m.watchlist_order = ?")
		args = append(args, f.WatchlistOrder)
	}
	if f.CategoryID != 0 {
		where = append(where, "m.id IN (SELECT movie_id FROM movie_watchlist_groups WHERE group_id = ?)")
		args = append(args, f.CategoryID)
	}
	return strings.Join(where, " AND "), args
}

// orderBy returns the ORDER BY clause for the filter. Watch-order sorting
// keeps title as a tie breaker so results stay stable within a bucket.
func (f MovieFilter) orderBy() string {
	switch strings.ToLower(f.Sort) {
	case "asc":
		return watchOrderField + " ASC, m.title ASC"
	case "desc":
		return watchOrderField + " DESC, m.title ASC"
	default:
		return "m.title ASC"
	}
}
