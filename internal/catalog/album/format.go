package album

import "strings"

// Format is the bitmask of physical and digital formats a release exists
// in. A single release can carry several bits at once (e.g. a single
// pressed on vinyl is FormatSingle|FormatVinyl).
type Format uint8

const (
	FormatVinyl Format = 1 << iota
	FormatCD
	FormatDigital
	FormatSingle
	FormatSevenInch
)

// formatNames is ordered by bit position.
var formatNames = []struct {
	flag Format
	name string
}{
	{FormatVinyl, "vinyl"},
	{FormatCD, "cd"},
	{FormatDigital, "digital"},
	{FormatSingle, "single"},
	{FormatSevenInch, "7inch"},
}

// Has reports whether all bits in flag are set.
func (f Format) Has(flag Format) bool {
	return f&flag == flag
}

// With returns f with the given bits set.
func (f Format) With(flag Format) Format {
	return f | flag
}

// Valid reports whether f only uses known bits.
func (f Format) Valid() bool {
	var all Format
	for _, entry := range formatNames {
		all |= entry.flag
	}
	return f&^all == 0
}

// String renders the set bits as a pipe-separated list, e.g. "vinyl|single".
func (f Format) String() string {
	if f == 0 {
		return "none"
	}

	var parts []string
	for _, entry := range formatNames {
		if f.Has(entry.flag) {
			parts = append(parts, entry.name)
		}
	}
	return strings.Join(parts, "|")
}
