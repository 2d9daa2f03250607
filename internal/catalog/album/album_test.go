package album_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavecrate/wavecrate/internal/catalog/album"
)

/*
TestAlbumID verifies the derived tag: artist tag plus lowercase letter.
*/
func TestAlbumID(t *testing.T) {
	a := album.Album{GenreAbbr: "RK", ArtistNum: 12, Letter: "b"}

	assert.Equal(t, "RK12b", a.ID())
}

/*
TestAlbumIsNewAt exercises the 180-day new-bin window on both sides of
the boundary.
*/
func TestAlbumIsNewAt(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"added_today", 0, true},
		{"inside_window", 179 * 24 * time.Hour, true},
		{"outside_window", 181 * 24 * time.Hour, false},
		{"exactly_at_window", 180 * 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := album.Album{DateAdded: now.Add(-tt.age)}

			assert.Equal(t, tt.want, a.IsNewAt(now))
		})
	}
}

/*
TestAlbumMarshalJSON verifies the injected derived fields.
*/
func TestAlbumMarshalJSON(t *testing.T) {
	a := album.Album{
		GenreAbbr: "RK",
		ArtistNum: 12,
		Letter:    "b",
		Name:      "Basement Tapes",
		DateAdded: time.Now().Add(-24 * time.Hour),
	}

	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "RK12b", decoded["id"])
	assert.Equal(t, true, decoded["is_new"])
}

/*
TestFormat exercises the format bitmask helpers.
*/
func TestFormat(t *testing.T) {
	f := album.FormatVinyl.With(album.FormatSingle)

	assert.True(t, f.Has(album.FormatVinyl))
	assert.True(t, f.Has(album.FormatSingle))
	assert.False(t, f.Has(album.FormatCD))
	assert.True(t, f.Valid())
	assert.Equal(t, "vinyl|single", f.String())

	assert.Equal(t, "none", album.Format(0).String())
	assert.False(t, album.Format(64).Valid())
}

/*
TestReviewID verifies the album tag directly followed by the reviewer,
with no separator; only problem ids carry one.
*/
func TestReviewID(t *testing.T) {
	r := album.Review{GenreAbbr: "RK", ArtistNum: 12, Letter: "b", DJID: "dj-swift"}

	assert.Equal(t, "RK12bdj-swift", r.ID())

	numeric := album.Review{GenreAbbr: "RK", ArtistNum: 12, Letter: "b", DJID: "1"}
	assert.Equal(t, "RK12b1", numeric.ID())
}

/*
TestReviewIsRecentAt exercises the four-week recency window.
*/
func TestReviewIsRecentAt(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"entered_today", 0, true},
		{"three_weeks_old", 21 * 24 * time.Hour, true},
		{"five_weeks_old", 35 * 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := album.Review{DateEntered: now.Add(-tt.age)}

			assert.Equal(t, tt.want, r.IsRecentAt(now))
		})
	}
}

/*
TestProblemID verifies the bang-separated identifier that keeps problem
ids disjoint from review ids.
*/
func TestProblemID(t *testing.T) {
	p := album.Problem{GenreAbbr: "RK", ArtistNum: 12, Letter: "b", DJID: "dj-swift"}

	assert.Equal(t, "RK12b!dj-swift", p.ID())
}
