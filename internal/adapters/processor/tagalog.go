package processor

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// tagalogDisallowed extends the Latin allow-list with ñ/Ñ.
var tagalogDisallowed = regexp.MustCompile(`[^A-Za-z0-9#Ññ' ]+`)

// Tagalog is the Latin processor with the n tilde kept.
type Tagalog struct{}

// NewTagalog creates the Tagalog processor.
func NewTagalog() ports.Processor {
	return &Tagalog{}
}

// Process keeps the Tagalog allow-list, collapses whitespace and upper-cases.
// The ASCII strip is skipped because ñ is not ASCII.
func (p *Tagalog) Process(text string) string {
	clean := tagalogDisallowed.ReplaceAllString(text, " ")
	clean = collapseSpaces(replaceHyphens(clean))
	// cases.Caser is stateful; one per call.
	return cases.Upper(language.Filipino).String(clean)
}
