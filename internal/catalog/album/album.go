package album

import (
	"encoding/json"
	"time"

	"github.com/wavecrate/wavecrate/internal/catalog/tag"
	"github.com/wavecrate/wavecrate/internal/platform/constants"
)

// Album is a single release filed in the stacks. Its composite key
// (genre_abbr, artist_num, letter) spells the album's tag: the artist's
// tag plus the letter ("RK12" + "b" = "RK12b").
//
// LabelID and PromoterID are soft references: nullable, unenforced by the
// schema, and resolved by join predicate only when non-nil.
type Album struct {
	GenreAbbr  string    `json:"genre_abbr"`
	ArtistNum  int       `json:"artist_num"`
	Letter     string    `json:"letter"`
	Name       string    `json:"name"`
	DateAdded  time.Time `json:"date_added"`
	Missing    bool      `json:"missing"`
	Format     Format    `json:"format"`
	LabelID    *int      `json:"label_id"`
	PromoterID *int      `json:"promoter_id"`
}

// ID returns the album's catalog tag. It is a pure function of the
// persisted key fields, recomputed on every read and never stored.
func (a Album) ID() string {
	return tag.Compose(a.GenreAbbr, a.ArtistNum, a.Letter)
}

// IsNew reports whether the album was added within the new-bin window
// (180 days).
func (a Album) IsNew() bool {
	return a.IsNewAt(time.Now())
}

// IsNewAt is IsNew against an explicit clock.
func (a Album) IsNewAt(now time.Time) bool {
	return now.Sub(a.DateAdded) < constants.AlbumNewWindow
}

// MarshalJSON injects the derived id and is_new flag so API responses
// always carry freshly computed values.
func (a Album) MarshalJSON() ([]byte, error) {
	type plain Album
	return json.Marshal(struct {
		ID    string `json:"id"`
		IsNew bool   `json:"is_new"`
		plain
	}{ID: a.ID(), IsNew: a.IsNew(), plain: plain(a)})
}

const (
	FieldGenreAbbr = "genre_abbr"
	FieldArtistNum = "artist_num"
	FieldLetter    = "letter"
	FieldName      = "name"
	FieldFormat    = "format"
	FieldContent   = "content"
	FieldDJID      = "dj_id"
)
