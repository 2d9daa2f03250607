package genre

// Genre is the top-level bucket of the music catalog. Its 2-character
// abbreviation is the prefix of every tag filed under it and the first
// column of every descendant's composite key.
type Genre struct {
	Abbreviation string `json:"abbreviation"`
	Name         string `json:"name"`
}

// ID returns the genre's catalog identifier, which is its abbreviation.
func (g Genre) ID() string {
	return g.Abbreviation
}

const (
	FieldAbbreviation = "abbreviation"
	FieldName         = "name"
)
