// Package script holds the code-point range tables of the supported writing
// systems and the filter that keeps only the admissible characters of a text.
package script

import (
	"errors"
	"fmt"
	"sort"
	"unicode"
)

// ErrInvalidRange is returned when a range has its lower bound above its upper bound.
var ErrInvalidRange = errors.New("script: invalid code point range")

// Range is an inclusive interval of Unicode code points.
type Range struct {
	Lo uint32
	Hi uint32
}

// Contains reports whether r lies within the range.
func (rg Range) Contains(r rune) bool {
	return r >= 0 && uint32(r) >= rg.Lo && uint32(r) <= rg.Hi
}

// Table is an immutable set of ranges describing the admissible characters of
// one script family. Declared ranges may be unsorted or overlap; membership is
// a disjunction over all of them.
type Table struct {
	name   string
	ranges []Range
	lookup *unicode.RangeTable
}

// NewTable validates the ranges and builds a table from them.
func NewTable(name string, ranges ...Range) (*Table, error) {
	for i, rg := range ranges {
		if rg.Lo > rg.Hi {
			return nil, fmt.Errorf("%w: %s[%d] %#04x > %#04x", ErrInvalidRange, name, i, rg.Lo, rg.Hi)
		}
		if rg.Hi > unicode.MaxRune {
			return nil, fmt.Errorf("%w: %s[%d] %#04x beyond U+10FFFF", ErrInvalidRange, name, i, rg.Hi)
		}
	}

	declared := make([]Range, len(ranges))
	copy(declared, ranges)

	return &Table{
		name:   name,
		ranges: declared,
		lookup: compile(declared),
	}, nil
}

// MustTable is like NewTable but panics on invalid ranges.
// It is meant for the package-level tables, which are static data.
func MustTable(name string, ranges ...Range) *Table {
	t, err := NewTable(name, ranges...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Ranges returns a copy of the ranges in declaration order.
func (t *Table) Ranges() []Range {
	out := make([]Range, len(t.ranges))
	copy(out, t.ranges)
	return out
}

// Contains reports whether r falls in any range of the table.
func (t *Table) Contains(r rune) bool {
	if r < 0 {
		return false
	}
	return unicode.Is(t.lookup, r)
}

// RangeTable exposes the compiled lookup table for use with unicode and x/text/runes.
func (t *Table) RangeTable() *unicode.RangeTable {
	return t.lookup
}

// compile sorts and merges the ranges into a unicode.RangeTable so lookups
// are a binary search instead of a scan over every declared range.
func compile(ranges []Range) *unicode.RangeTable {
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })

	var merged []Range
	for _, rg := range sorted {
		if n := len(merged); n > 0 && uint64(rg.Lo) <= uint64(merged[n-1].Hi)+1 {
			if rg.Hi > merged[n-1].Hi {
				merged[n-1].Hi = rg.Hi
			}
			continue
		}
		merged = append(merged, rg)
	}

	rt := &unicode.RangeTable{}
	for _, rg := range merged {
		if rg.Lo <= 0xFFFF {
			hi := rg.Hi
			if hi > 0xFFFF {
				hi = 0xFFFF
			}
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(rg.Lo), Hi: uint16(hi), Stride: 1})
			if hi <= unicode.MaxLatin1 {
				rt.LatinOffset++
			}
			if rg.Hi <= 0xFFFF {
				continue
			}
			rg.Lo = 0x10000
		}
		rt.R32 = append(rt.R32, unicode.Range32{Lo: rg.Lo, Hi: rg.Hi, Stride: 1})
	}
	return rt
}
