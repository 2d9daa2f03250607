package album

import (
	"encoding/json"
	"time"

	"github.com/wavecrate/wavecrate/internal/catalog/tag"
)

// Problem is a DJ's report that something is wrong with an album in the
// stacks (damaged sleeve, mislabeled disc, wrong pressing). Keyed like a
// review: one open report per DJ per album.
type Problem struct {
	GenreAbbr   string    `json:"genre_abbr"`
	ArtistNum   int       `json:"artist_num"`
	Letter      string    `json:"letter"`
	DJID        string    `json:"dj_id"`
	Content     string    `json:"content"`
	DateEntered time.Time `json:"date_entered"`
}

// ID marks problem reports with a bang so they never collide with review
// ids: "RK12b!dj-swift".
func (p Problem) ID() string {
	return tag.Compose(p.GenreAbbr, p.ArtistNum, p.Letter) + "!" + p.DJID
}

func (p Problem) MarshalJSON() ([]byte, error) {
	type plain Problem
	return json.Marshal(struct {
		ID string `json:"id"`
		plain
	}{ID: p.ID(), plain: plain(p)})
}
