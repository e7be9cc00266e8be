package script

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/baditaflorin/go_text_normalizer/internal/pool"
)

// SpaceSeparator puts every kept character into its own token.
const SpaceSeparator = " "

var buffers = pool.NewBufferPool(512)

// Filter returns the characters of text admitted by table, in their original
// order, joined with sep. Characters outside the table are dropped.
func Filter(text string, table *Table, sep string) string {
	if text == "" {
		return ""
	}

	buf := buffers.Get()
	defer buffers.Put(buf)

	first := true
	for _, r := range text {
		if !table.Contains(r) {
			continue
		}
		if !first {
			*buf = append(*buf, sep...)
		}
		pool.AppendRune(buf, r)
		first = false
	}
	return string(*buf)
}

// Keep returns a transformer that removes every character outside table.
// A new transformer is returned on each call; transformers are not shared
// between goroutines.
func Keep(table *Table) transform.Transformer {
	return runes.Remove(runes.NotIn(table.RangeTable()))
}

// Strip removes every character outside table and concatenates the rest.
func Strip(text string, table *Table) string {
	if text == "" {
		return ""
	}
	out, _, err := transform.String(Keep(table), text)
	if err != nil {
		return Filter(text, table, "")
	}
	return out
}
