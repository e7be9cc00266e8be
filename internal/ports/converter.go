package ports

// NumberConverter rewrites spelled-out numbers as digits.
//
// On error the caller keeps its input. The exception is an error wrapping
// numwords.ErrConversion, whose string still holds every converted segment
// with the malformed ones left unchanged.
type NumberConverter interface {
	Convert(text string) (string, error)
}

// ScriptConverter maps Chinese ideographs onto a single script variant.
// Characters without a counterpart are returned unchanged.
type ScriptConverter interface {
	Convert(text string) (string, error)
}
