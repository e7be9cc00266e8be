package ports

// Processor normalizes text for a single language.
// Implementations are stateless and safe for concurrent use.
type Processor interface {
	Process(text string) string
}
