package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Simple title",
			input: "Apartament 3 camere",
			want:  "apartament-3-camere",
		},
		{
			name:  "Romanian diacritics folded",
			input: "Garsonieră în București",
			want:  "garsoniera-in-bucuresti",
		},
		{
			name:  "Cedilla variants folded",
			input: "Iaşi Mureş Constanţa",
			want:  "iasi-mures-constanta",
		},
		{
			name:  "Punctuation collapsed",
			input: "Vila -- de * lux!!",
			want:  "vila-de-lux",
		},
		{
			name:  "Leading and trailing separators trimmed",
			input: "  --casa noua--  ",
			want:  "casa-noua",
		},
		{
			name:  "Empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Apartament București"), Slugify("Apartament București"))
}

func TestShortHash(t *testing.T) {
	h := ShortHash("some-user-id", 6)
	assert.Len(t, h, 6)

	// Stable for the same input, differs across inputs
	assert.Equal(t, h, ShortHash("some-user-id", 6))
	assert.NotEqual(t, h, ShortHash("other-user-id", 6))

	// Length is clamped to the digest size
	assert.Len(t, ShortHash("x", 100), 32)
}

func TestHashBytes(t *testing.T) {
	// md5("hello")
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", HashBytes([]byte("hello")))
	assert.NotEqual(t, HashBytes([]byte("a")), HashBytes([]byte("b")))
}
