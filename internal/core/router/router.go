// Package router dispatches text to the processor registered for its
// language code.
package router

import (
	"reflect"
	"sort"

	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// Router maps language codes to processors. The table is fixed at
// construction, so a Router is safe for concurrent use.
type Router struct {
	processors map[string]ports.Processor
	fallback   ports.Processor
	logger     ports.Logger
}

// New creates a router over the given table. Codes missing from the table,
// including the empty code, are handled by fallback. That is the intended
// permissive default, not an error.
func New(table map[string]ports.Processor, fallback ports.Processor, logger ports.Logger) *Router {
	processors := make(map[string]ports.Processor, len(table))
	for code, p := range table {
		processors[code] = p
	}
	return &Router{
		processors: processors,
		fallback:   fallback,
		logger:     logger,
	}
}

// Normalize processes text with the processor registered for code.
func (r *Router) Normalize(code, text string) string {
	p, ok := r.processors[code]
	if !ok {
		if code != "" {
			r.logger.Debug("No processor for language code, using fallback", "language", code)
		}
		p = r.fallback
	}
	return p.Process(text)
}

// Lookup returns the processor for code and whether code is registered.
// Unregistered codes return the fallback processor.
func (r *Router) Lookup(code string) (ports.Processor, bool) {
	if p, ok := r.processors[code]; ok {
		return p, true
	}
	return r.fallback, false
}

// Languages returns the registered codes in sorted order.
func (r *Router) Languages() []string {
	codes := make([]string, 0, len(r.processors))
	for code := range r.processors {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Processors returns every distinct processor, fallback included.
func (r *Router) Processors() []ports.Processor {
	out := []ports.Processor{r.fallback}
	for _, code := range r.Languages() {
		if p := r.processors[code]; !containsProcessor(out, p) {
			out = append(out, p)
		}
	}
	return out
}

// containsProcessor compares by identity. Processors of non-comparable types
// (func adapters) are never considered duplicates.
func containsProcessor(list []ports.Processor, p ports.Processor) bool {
	if !reflect.TypeOf(p).Comparable() {
		return false
	}
	for _, q := range list {
		if q == p {
			return true
		}
	}
	return false
}
