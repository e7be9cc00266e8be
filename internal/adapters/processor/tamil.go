package processor

import (
	"strings"

	"github.com/baditaflorin/go_text_normalizer/internal/core/script"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// Tamil keeps Tamil characters and spaces. Tamil has no case, so nothing is upper-cased.
type Tamil struct{}

// NewTamil creates the Tamil processor.
func NewTamil() ports.Processor {
	return &Tamil{}
}

// Process filters text to the Tamil table and trims it.
func (p *Tamil) Process(text string) string {
	return strings.TrimSpace(script.Strip(text, script.Tamil))
}
