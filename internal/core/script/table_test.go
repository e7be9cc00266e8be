package script

import (
	"errors"
	"testing"
)

// linearContains is the reference membership test: OR over declared ranges.
func linearContains(t *Table, r rune) bool {
	for _, rg := range t.Ranges() {
		if rg.Contains(r) {
			return true
		}
	}
	return false
}

func TestNewTableRejectsInvertedRange(t *testing.T) {
	_, err := NewTable("broken", Range{0x20, 0x7E}, Range{0x100, 0x50})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestNewTableRejectsBeyondMaxRune(t *testing.T) {
	_, err := NewTable("broken", Range{0x10FFFF, 0x110000})
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestContainsMatchesLinearScan(t *testing.T) {
	tables := []*Table{CJK, Thai, Vietnamese, Tamil}

	for _, table := range tables {
		t.Run(table.Name(), func(t *testing.T) {
			for r := rune(0); r <= 0x30000; r++ {
				if got, want := table.Contains(r), linearContains(table, r); got != want {
					t.Fatalf("Contains(%#U) = %v, linear scan = %v", r, got, want)
				}
			}
		})
	}
}

func TestContainsUnsortedOverlappingRanges(t *testing.T) {
	table := MustTable("mixed",
		Range{0x200, 0x2FF},
		Range{0x41, 0x5A},
		Range{0x50, 0x60},
		Range{0xFFF0, 0x10010},
		Range{0x61, 0x61},
	)

	tests := []struct {
		r    rune
		want bool
	}{
		{'@', false},
		{'A', true},
		{'Z', true},
		{'`', true},
		{'a', true},
		{'b', false},
		{0x1FF, false},
		{0x250, true},
		{0xFFFF, true},
		{0x10000, true},
		{0x10010, true},
		{0x10011, false},
		{-1, false},
	}

	for _, tc := range tests {
		if got := table.Contains(tc.r); got != tc.want {
			t.Errorf("Contains(%#x) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestRangesReturnsCopy(t *testing.T) {
	ranges := Thai.Ranges()
	ranges[0] = Range{0, 0x10FFFF}

	if Thai.Contains('a') {
		t.Fatal("mutating Ranges() result must not change the table")
	}
	if len(CJK.Ranges()) != 18 {
		t.Errorf("expected 18 CJK ranges, got %d", len(CJK.Ranges()))
	}
}
