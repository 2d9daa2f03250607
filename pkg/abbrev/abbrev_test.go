// Copyright (c) 2026 Wavecrate. All rights reserved.

package abbrev_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wavecrate/wavecrate/pkg/abbrev"
)

/*
TestFromName verifies abbreviation derivation from genre names.
*/
func TestFromName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_ascii", "Rock", "RO"},
		{"two_words", "Hip Hop", "HI"},
		{"accented", "Électronique", "EL"},
		{"leading_digits_skipped", "80s Pop", "SP"},
		{"too_short", "A", ""},
		{"empty", "", ""},
		{"symbols_only", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, abbrev.FromName(tt.input))
		})
	}
}
