package processor

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// latinDisallowed matches everything outside the Latin allow-list.
var latinDisallowed = regexp.MustCompile(`[^A-Za-z0-9#' ]+`)

// Latin normalizes languages written in the 26-letter Latin alphabet.
type Latin struct{}

// NewLatin creates the generic Latin processor (Indonesian, Malay).
func NewLatin() ports.Processor {
	return &Latin{}
}

// Process drops non-ASCII characters, replaces everything outside
// letters, digits, '#', apostrophe and space with a space, collapses
// whitespace and upper-cases the result.
func (p *Latin) Process(text string) string {
	clean := latinDisallowed.ReplaceAllString(stripNonASCII(text), " ")
	return finishLatin(clean)
}

// stripNonASCII drops every character that cannot be encoded as ASCII.
func stripNonASCII(text string) string {
	nonASCII := runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })
	out, _, err := transform.String(runes.Remove(nonASCII), text)
	if err != nil {
		return strings.Map(func(r rune) rune {
			if r > unicode.MaxASCII {
				return -1
			}
			return r
		}, text)
	}
	return out
}

// finishLatin turns hyphens into spaces, since they are not spoken, then
// collapses whitespace and upper-cases.
func finishLatin(text string) string {
	text = collapseSpaces(replaceHyphens(text))
	return strings.ToUpper(text)
}

func replaceHyphens(text string) string {
	return strings.ReplaceAll(text, "-", " ")
}

func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
