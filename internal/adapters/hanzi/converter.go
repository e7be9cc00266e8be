// Package hanzi converts Chinese text between the simplified and traditional
// character sets using the OpenCC dictionaries.
package hanzi

import (
	"fmt"
	"sync"

	"github.com/longbridgeapp/opencc"

	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// Variant selects the target character set.
type Variant int

const (
	// Simplified converts traditional ideographs to simplified ones.
	Simplified Variant = iota
	// Traditional converts simplified ideographs to traditional ones.
	Traditional
)

func (v Variant) String() string {
	switch v {
	case Simplified:
		return "simplified"
	case Traditional:
		return "traditional"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// conversion returns the OpenCC configuration name for the variant.
func (v Variant) conversion() string {
	if v == Traditional {
		return "s2t"
	}
	return "t2s"
}

// Converter lazily loads its dictionary on first use and is read-only afterwards.
type Converter struct {
	variant Variant

	once sync.Once
	cc   *opencc.OpenCC
	err  error
}

var _ ports.ScriptConverter = (*Converter)(nil)

// NewConverter creates a converter towards the given variant.
func NewConverter(v Variant) *Converter {
	return &Converter{variant: v}
}

// Variant returns the target variant.
func (c *Converter) Variant() Variant {
	return c.variant
}

// Load reads the dictionary if it has not been read yet.
func (c *Converter) Load() error {
	c.once.Do(func() {
		c.cc, c.err = opencc.New(c.variant.conversion())
		if c.err != nil {
			c.err = fmt.Errorf("hanzi: load %s dictionary: %w", c.variant, c.err)
		}
	})
	return c.err
}

// Convert maps every character of text to the target variant.
// On failure the input is returned together with the error.
func (c *Converter) Convert(text string) (string, error) {
	if text == "" {
		return "", nil
	}
	if err := c.Load(); err != nil {
		return text, err
	}
	out, err := c.cc.Convert(text)
	if err != nil {
		return text, fmt.Errorf("hanzi: convert to %s: %w", c.variant, err)
	}
	return out, nil
}
