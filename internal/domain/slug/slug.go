// Where: cli/internal/domain/slug/slug.go
// What: Slug normalization for project names.
// Why: Project names end up in package names, URLs and clone paths.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	separators = regexp.MustCompile(`[-_\s]+`)
)

// Letters that do not decompose into base + combining mark.
var foldings = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "Æ", "AE", "ø", "o", "Ø", "O",
	"œ", "oe", "Œ", "OE", "ł", "l", "Ł", "L", "đ", "d", "Đ", "D",
)

// Make converts arbitrary text into a lowercase, hyphen-separated slug.
// Diacritics are stripped, punctuation becomes a separator, runs of
// separators collapse to one hyphen and leading/trailing hyphens are trimmed.
func Make(text string) string {
	text = stripDiacritics(foldings.Replace(text))
	text = nonWord.ReplaceAllString(text, "-")
	text = strings.ToLower(strings.TrimSpace(text))
	text = separators.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

func stripDiacritics(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return out
}
