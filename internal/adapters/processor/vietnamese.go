package processor

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/baditaflorin/go_text_normalizer/internal/core/script"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// Vietnamese keeps printable ASCII and the Vietnamese Latin letters, then
// drops ASCII punctuation.
type Vietnamese struct{}

// NewVietnamese creates the Vietnamese processor.
func NewVietnamese() ports.Processor {
	return &Vietnamese{}
}

// Process upper-cases, filters to the Vietnamese table, turns hyphens into
// spaces, removes ASCII punctuation and trims. Input is composed to NFC first
// so decomposed tone marks map onto the precomposed letters in the table.
func (p *Vietnamese) Process(text string) string {
	text = norm.NFC.String(text)
	text = cases.Upper(language.Vietnamese).String(text)
	text = script.Strip(text, script.Vietnamese)
	text = replaceHyphens(text)
	text = stripASCIIPunct(text)
	return strings.TrimSpace(text)
}

// isASCIIPunct matches the 32 ASCII punctuation and symbol characters.
func isASCIIPunct(r rune) bool {
	return r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

func stripASCIIPunct(text string) string {
	out, _, err := transform.String(runes.Remove(runes.Predicate(isASCIIPunct)), text)
	if err != nil {
		return strings.Map(func(r rune) rune {
			if isASCIIPunct(r) {
				return -1
			}
			return r
		}, text)
	}
	return out
}
