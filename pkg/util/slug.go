package util

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashes       = regexp.MustCompile(`-{2,}`)

	// Romanian diacritics fold to their ASCII base letters so that
	// "Bucuresti" and "București" produce the same slug.
	diacriticFolder = strings.NewReplacer(
		"ă", "a", "â", "a", "î", "i", "ș", "s", "ş", "s", "ț", "t", "ţ", "t",
		"Ă", "a", "Â", "a", "Î", "i", "Ș", "s", "Ş", "s", "Ț", "t", "Ţ", "t",
	)
)

// Slugify converts free text into a URL-safe slug: diacritics folded,
// lowercased, runs of anything non-alphanumeric collapsed to single hyphens.
func Slugify(s string) string {
	s = diacriticFolder.Replace(s)
	s = strings.ToLower(s)
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ShortHash returns the first length hex characters of the md5 of input.
// Listing slugs embed a 6-char owner hash; public usernames an 8-char one.
func ShortHash(input string, length int) string {
	sum := md5.Sum([]byte(input))
	hexSum := hex.EncodeToString(sum[:])
	if length > len(hexSum) {
		length = len(hexSum)
	}
	return hexSum[:length]
}

// HashBytes returns the full md5 hex digest of raw content. Photo
// deduplication keys on this value.
func HashBytes(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}
