package artist

import (
	"github.com/wavecrate/wavecrate/internal/platform/apperr"
)

// letterSpace is the ordered alphabet album letters are drawn from.
const letterSpace = "abcdefghijklmnopqrstuvwxyz"

// NextFreeLetter returns the lexicographically smallest letter in a..z not
// present in taken.
//
// Allocation is gap-filling, not count-based: an artist whose albums are
// {a, c} gets b next, reclaiming letters freed by deletions. When all 26
// letters are in use the result is a LETTER_SPACE_EXHAUSTED error; the
// catalog does not wrap around to double letters.
func NextFreeLetter(artistTag string, taken []string) (string, error) {
	var used [26]bool
	for _, letter := range taken {
		if len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' {
			used[letter[0]-'a'] = true
		}
	}

	for i := 0; i < len(letterSpace); i++ {
		if !used[i] {
			return string(letterSpace[i]), nil
		}
	}

	return "", apperr.LetterSpaceExhausted(artistTag)
}
