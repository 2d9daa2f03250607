package album

import (
	"encoding/json"
	"time"

	"github.com/wavecrate/wavecrate/internal/catalog/tag"
	"github.com/wavecrate/wavecrate/internal/platform/constants"
)

// Review is one DJ's writeup of an album. Keyed by the album's composite
// key plus the reviewing DJ, so a DJ reviews a given album at most once.
//
// DateEntered is always stamped by the service at creation; client-supplied
// values are discarded so a review's recency cannot be forged.
type Review struct {
	GenreAbbr   string    `json:"genre_abbr"`
	ArtistNum   int       `json:"artist_num"`
	Letter      string    `json:"letter"`
	DJID        string    `json:"dj_id"`
	Content     string    `json:"content"`
	DateEntered time.Time `json:"date_entered"`
}

// ID is the album tag directly followed by the reviewer, e.g.
// "RK12bdj-swift". Problem ids carry a "!" between the parts, which keeps
// the two families disjoint.
func (r Review) ID() string {
	return tag.Compose(r.GenreAbbr, r.ArtistNum, r.Letter) + r.DJID
}

// IsRecent reports whether the review was entered within the last four
// weeks.
func (r Review) IsRecent() bool {
	return r.IsRecentAt(time.Now())
}

// IsRecentAt is IsRecent against an explicit clock.
func (r Review) IsRecentAt(now time.Time) bool {
	return now.Sub(r.DateEntered) < constants.ReviewRecentWindow
}

func (r Review) MarshalJSON() ([]byte, error) {
	type plain Review
	return json.Marshal(struct {
		ID       string `json:"id"`
		IsRecent bool   `json:"is_recent"`
		plain
	}{ID: r.ID(), IsRecent: r.IsRecent(), plain: plain(r)})
}
