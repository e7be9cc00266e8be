// logger.go
// Package textnormalizer provides shared utilities for the go_text_normalizer package.
package textnormalizer

import (
	"github.com/baditaflorin/go_text_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// createDefaultLogger creates the logger used when the host supplies none.
// If the standard logger cannot be built, messages are discarded rather than
// failing normalization.
func createDefaultLogger() (ports.Logger, bool) {
	lg, err := logger.NewStdLogger()
	if err != nil {
		return logger.NewNopLogger(), false
	}
	return lg, true
}
