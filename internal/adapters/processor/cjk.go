package processor

import (
	"github.com/baditaflorin/go_text_normalizer/internal/core/script"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// CJK keeps ideographs and digits, one per space-separated token, and
// optionally forces a single Chinese script variant.
type CJK struct {
	variant ports.ScriptConverter
	logger  ports.Logger
}

// NewCJK creates a CJK processor. With a nil variant converter both
// simplified and traditional characters are kept as written.
func NewCJK(variant ports.ScriptConverter, logger ports.Logger) ports.Processor {
	return &CJK{variant: variant, logger: logger}
}

// Process filters text to the CJK table and converts the script variant.
func (p *CJK) Process(text string) string {
	filtered := script.Filter(text, script.CJK, script.SpaceSeparator)
	if p.variant == nil || filtered == "" {
		return filtered
	}

	converted, err := p.variant.Convert(filtered)
	if err != nil {
		p.logger.Warn("Chinese script conversion failed, keeping filtered text",
			"error", err,
		)
		return filtered
	}
	return converted
}
