package processor

import (
	"fmt"

	"github.com/baditaflorin/go_text_normalizer/internal/adapters/hanzi"
	"github.com/baditaflorin/go_text_normalizer/internal/core/numwords"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// ProcessorType identifies a processor variant.
type ProcessorType int

const (
	// BaseProcessorType only trims whitespace
	BaseProcessorType ProcessorType = iota
	// LatinProcessorType is the generic 26-letter Latin processor
	LatinProcessorType
	// EnglishProcessorType adds number-word conversion to Latin
	EnglishProcessorType
	// TagalogProcessorType keeps ñ
	TagalogProcessorType
	// CJKProcessorType keeps ideographs in whichever script they were written
	CJKProcessorType
	// SimplifiedChineseProcessorType forces simplified ideographs
	SimplifiedChineseProcessorType
	// TraditionalChineseProcessorType forces traditional ideographs
	TraditionalChineseProcessorType
	// ThaiProcessorType keeps Thai characters and digits
	ThaiProcessorType
	// VietnameseProcessorType keeps Vietnamese Latin letters
	VietnameseProcessorType
	// TamilProcessorType keeps Tamil characters
	TamilProcessorType
)

var typeNames = map[ProcessorType]string{
	BaseProcessorType:               "base",
	LatinProcessorType:              "latin",
	EnglishProcessorType:            "english",
	TagalogProcessorType:            "tagalog",
	CJKProcessorType:                "cjk",
	SimplifiedChineseProcessorType:  "chinese_simplified",
	TraditionalChineseProcessorType: "chinese_traditional",
	ThaiProcessorType:               "thai",
	VietnameseProcessorType:         "vietnamese",
	TamilProcessorType:              "tamil",
}

func (t ProcessorType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ProcessorType(%d)", int(t))
}

// Factory creates processors sharing one logger, one number converter and
// one converter per Chinese script variant.
type Factory struct {
	logger      ports.Logger
	numbers     ports.NumberConverter
	simplified  ports.ScriptConverter
	traditional ports.ScriptConverter
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithNumberConverter replaces the built-in number-word converter.
func WithNumberConverter(c ports.NumberConverter) FactoryOption {
	return func(f *Factory) {
		f.numbers = c
	}
}

// WithScriptConverters replaces the OpenCC-backed Chinese converters.
func WithScriptConverters(simplified, traditional ports.ScriptConverter) FactoryOption {
	return func(f *Factory) {
		f.simplified = simplified
		f.traditional = traditional
	}
}

// NewFactory creates a processor factory.
func NewFactory(logger ports.Logger, opts ...FactoryOption) *Factory {
	f := &Factory{
		logger:      logger,
		numbers:     numwords.New(),
		simplified:  hanzi.NewConverter(hanzi.Simplified),
		traditional: hanzi.NewConverter(hanzi.Traditional),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateProcessor creates a processor of the specified type.
// Unknown types get the Base processor.
func (f *Factory) CreateProcessor(t ProcessorType) ports.Processor {
	switch t {
	case LatinProcessorType:
		return NewLatin()
	case EnglishProcessorType:
		return NewEnglish(f.numbers, f.logger)
	case TagalogProcessorType:
		return NewTagalog()
	case CJKProcessorType:
		return NewCJK(nil, f.logger)
	case SimplifiedChineseProcessorType:
		return NewCJK(f.simplified, f.logger)
	case TraditionalChineseProcessorType:
		return NewCJK(f.traditional, f.logger)
	case ThaiProcessorType:
		return NewThai()
	case VietnameseProcessorType:
		return NewVietnamese()
	case TamilProcessorType:
		return NewTamil()
	default:
		return NewBase()
	}
}

// Loaders returns the converters that read their data lazily, so hosts can
// load it ahead of the first request.
func (f *Factory) Loaders() []interface{ Load() error } {
	var out []interface{ Load() error }
	for _, c := range []interface{}{f.numbers, f.simplified, f.traditional} {
		if ld, ok := c.(interface{ Load() error }); ok {
			out = append(out, ld)
		}
	}
	return out
}
