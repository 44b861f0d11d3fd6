package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildWhereScopesToUserOnly(t *testing.T) {
	cond, args := MovieFilter{}.buildWhere(42)

	assert.Equal(t, "m.user_id = ?", cond)
	assert.Equal(t, []any{int64(42)}, args)
}

func TestBuildWhereAppendsOnlySetFields(t *testing.T) {
	f := MovieFilter{Genre: "Sci-Fi", Status: "To Watch"}
	cond, args := f.buildWhere(42)

	assert.Equal(t, "m.user_id = ? AND g.name = ? AND m.status = ?", cond)
	assert.Equal(t, []any{int64(42), "Sci-Fi", "To Watch"}, args)
}

func TestBuildWhereCategoryUsesMembershipSubquery(t *testing.T) {
	f := MovieFilter{CategoryID: 3}
	cond, args := f.buildWhere(42)

	assert.Contains(t, cond, "SELECT movie_id FROM movie_watchlist_groups WHERE group_id = ?")
	assert.Equal(t, []any{int64(42), int64(3)}, args)
}

func TestOrderByDefaultsToTitle(t *testing.T) {
	assert.Equal(t, "m.title ASC", MovieFilter{}.orderBy())
	assert.Equal(t, "m.title ASC", MovieFilter{Sort: "sideways"}.orderBy())
}

func TestOrderByWatchOrderBuckets(t *testing.T) {
	asc := MovieFilter{Sort: "asc"}.orderBy()
	desc := MovieFilter{Sort: "DESC"}.orderBy()

	assert.Equal(t, watchOrderField+" ASC, m.title ASC", asc)
	assert.Equal(t, watchOrderField+" DESC, m.title ASC", desc)
}
