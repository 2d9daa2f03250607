package artist

import (
	"encoding/json"

	"github.com/wavecrate/wavecrate/internal/catalog/tag"
)

// Artist is a performer filed under a genre. The number is assigned by the
// music director and is unique within the genre; together they form both
// the composite primary key and the artist's tag ("RK12").
type Artist struct {
	GenreAbbr string `json:"genre_abbr"`
	Number    int    `json:"number"`
	Name      string `json:"name"`
}

// ID returns the artist's catalog tag. It is derived, never stored.
func (a Artist) ID() string {
	return tag.Compose(a.GenreAbbr, a.Number, "")
}

// MarshalJSON injects the derived id so API responses always carry the
// recomputed tag alongside the persisted fields.
func (a Artist) MarshalJSON() ([]byte, error) {
	type plain Artist
	return json.Marshal(struct {
		ID string `json:"id"`
		plain
	}{ID: a.ID(), plain: plain(a)})
}

const (
	FieldGenreAbbr = "genre_abbr"
	FieldNumber    = "number"
	FieldName      = "name"
)
