package processor

import (
	"errors"

	"github.com/baditaflorin/go_text_normalizer/internal/core/numwords"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// English is the Latin processor plus number-word conversion.
type English struct {
	numbers ports.NumberConverter
	logger  ports.Logger
}

// NewEnglish creates the English processor. Conversion failures are reported
// to logger as warnings and never reach the caller.
func NewEnglish(numbers ports.NumberConverter, logger ports.Logger) ports.Processor {
	return &English{numbers: numbers, logger: logger}
}

// Process normalizes like Latin and rewrites spelled-out numbers as digits
// ("twenty three" -> "23") before whitespace is collapsed.
func (p *English) Process(text string) string {
	clean := latinDisallowed.ReplaceAllString(stripNonASCII(text), " ")
	clean = p.convertNumbers(clean)
	return finishLatin(clean)
}

func (p *English) convertNumbers(text string) string {
	if p.numbers == nil {
		return text
	}
	converted, err := p.numbers.Convert(text)
	if err == nil {
		return converted
	}
	// Only the built-in converter promises a usable partial result.
	if errors.Is(err, numwords.ErrConversion) {
		p.logger.Warn("Number word conversion skipped malformed phrases",
			"error", err,
		)
		return converted
	}
	p.logger.Warn("Number word conversion failed, keeping unconverted text",
		"error", err,
	)
	return text
}
