package artist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavecrate/wavecrate/internal/catalog/artist"
	"github.com/wavecrate/wavecrate/internal/platform/apperr"
)

/*
TestNextFreeLetter verifies the gap-filling allocation policy.
*/
func TestNextFreeLetter(t *testing.T) {
	tests := []struct {
		name  string
		taken []string
		want  string
	}{
		{"empty_catalog", nil, "a"},
		{"sequential", []string{"a", "b"}, "c"},
		{"gap_is_filled_first", []string{"a", "c"}, "b"},
		{"leading_gap", []string{"b", "c", "d"}, "a"},
		{"unordered_input", []string{"c", "a", "b"}, "d"},
		{"ignores_junk_letters", []string{"a", "B", "!", "ab"}, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := artist.NextFreeLetter("RK12", tt.taken)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestNextFreeLetter_Exhausted verifies the hard failure when all 26
letters under an artist are in use.
*/
func TestNextFreeLetter_Exhausted(t *testing.T) {
	taken := strings.Split("abcdefghijklmnopqrstuvwxyz", "")

	_, err := artist.NextFreeLetter("RK12", taken)

	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, "LETTER_SPACE_EXHAUSTED"))
}
