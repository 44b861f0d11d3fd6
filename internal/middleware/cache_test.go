package middleware

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/api/movies/get-all/user/:userId", GroupMovies},
		{"/api/movies/filter/user/:userId", GroupMovies},
		{"/api/genres", GroupGenres},
		{"/api/genres/suggest/:title", GroupGenres},
		{"/api/users/notification-status/:userId", GroupUsers},
		{"/api/watchlists/get-all", GroupWatchlists},
		{"/healthz", "misc"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, groupFromPath(tc.path), tc.path)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	body := []byte(`[{"movieId":1}]`)

	payload, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "application/json", gotHdr.Get("Content-Type"))
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsTruncated(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{0, 0, 0})
	assert.False(t, ok)

	// Header length claims more bytes than the payload holds.
	bogus := []byte{0, 0, 0, 200, 0, 0, 1, 0}
	_, _, _, ok = decodePayload(bogus)
	assert.False(t, ok)
}

func TestInvalidatorNilSafe(t *testing.T) {
	var inv *Invalidator
	inv.Invalidate(context.Background(), GroupMovies)

	inv = &Invalidator{}
	inv.Invalidate(context.Background(), GroupMovies, GroupGenres)
}
