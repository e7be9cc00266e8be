package processor

import "github.com/baditaflorin/go_text_normalizer/internal/ports"

// Language codes with a dedicated processor. Codes are matched exactly and
// case-sensitively.
const (
	CodeEnglish    = "en"
	CodeChinese    = "zh"
	CodeMandarin   = "zh_cmn"
	CodeCantonese  = "zh_yue"
	CodeVietnamese = "vi"
	CodeTamil      = "ta"
	CodeTagalog    = "tl"
	CodeIndonesian = "id"
	CodeMalay      = "ms"
	CodeThai       = "th"
)

// LanguageTypes binds each supported language code to its processor type.
// Adding a language is a change to this table only.
var LanguageTypes = map[string]ProcessorType{
	CodeEnglish:    EnglishProcessorType,
	CodeChinese:    CJKProcessorType,
	CodeMandarin:   SimplifiedChineseProcessorType,
	CodeCantonese:  TraditionalChineseProcessorType,
	CodeVietnamese: VietnameseProcessorType,
	CodeTamil:      TamilProcessorType,
	CodeTagalog:    TagalogProcessorType,
	CodeIndonesian: LatinProcessorType,
	CodeMalay:      LatinProcessorType,
	CodeThai:       ThaiProcessorType,
}

// ForLanguages builds one processor per supported language code. Codes that
// share a processor type share the instance.
func (f *Factory) ForLanguages() map[string]ports.Processor {
	byType := make(map[ProcessorType]ports.Processor)
	out := make(map[string]ports.Processor, len(LanguageTypes))
	for code, t := range LanguageTypes {
		p, ok := byType[t]
		if !ok {
			p = f.CreateProcessor(t)
			byType[t] = p
		}
		out[code] = p
	}
	return out
}
