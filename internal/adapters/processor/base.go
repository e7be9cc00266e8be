// Package processor holds one text processor per supported language family.
// Every processor is stateless apart from read-only tables built at
// construction, so a single instance may be shared across goroutines.
package processor

import (
	"strings"

	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// Base only trims leading and trailing whitespace.
type Base struct{}

// NewBase creates the trim-only processor.
func NewBase() ports.Processor {
	return &Base{}
}

// Process trims text.
func (p *Base) Process(text string) string {
	return strings.TrimSpace(text)
}
