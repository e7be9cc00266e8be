package processor

import (
	"github.com/baditaflorin/go_text_normalizer/internal/core/script"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// Thai keeps Thai characters and digits, one per space-separated token.
type Thai struct{}

// NewThai creates the Thai processor.
func NewThai() ports.Processor {
	return &Thai{}
}

// Process filters text to the Thai table.
func (p *Thai) Process(text string) string {
	return script.Filter(text, script.Thai, script.SpaceSeparator)
}
