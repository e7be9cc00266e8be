// Package numwords rewrites spelled-out English numbers as digits, e.g.
// "twenty three" becomes "23", "three point one four" becomes "3.14" and
// "twenty first" becomes "21st".
//
// Conversion is best effort. A phrase that starts like a number but cannot be
// completed (a dangling "point") is left as written and reported through an
// error wrapping ErrConversion; everything else in the text is still converted.
package numwords

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrConversion marks a number phrase that could not be converted.
var ErrConversion = errors.New("numwords: malformed number phrase")

type kind int

const (
	kindZero kind = iota + 1
	kindUnit
	kindTeen
	kindTen
	kindHundred
	kindScale
)

type word struct {
	kind  kind
	value int64
}

var vocabulary = map[string]word{
	"zero":      {kindZero, 0},
	"one":       {kindUnit, 1},
	"two":       {kindUnit, 2},
	"three":     {kindUnit, 3},
	"four":      {kindUnit, 4},
	"five":      {kindUnit, 5},
	"six":       {kindUnit, 6},
	"seven":     {kindUnit, 7},
	"eight":     {kindUnit, 8},
	"nine":      {kindUnit, 9},
	"ten":       {kindTeen, 10},
	"eleven":    {kindTeen, 11},
	"twelve":    {kindTeen, 12},
	"thirteen":  {kindTeen, 13},
	"fourteen":  {kindTeen, 14},
	"fifteen":   {kindTeen, 15},
	"sixteen":   {kindTeen, 16},
	"seventeen": {kindTeen, 17},
	"eighteen":  {kindTeen, 18},
	"nineteen":  {kindTeen, 19},
	"twenty":    {kindTen, 20},
	"thirty":    {kindTen, 30},
	"forty":     {kindTen, 40},
	"fifty":     {kindTen, 50},
	"sixty":     {kindTen, 60},
	"seventy":   {kindTen, 70},
	"eighty":    {kindTen, 80},
	"ninety":    {kindTen, 90},
	"hundred":   {kindHundred, 100},
	"thousand":  {kindScale, 1_000},
	"million":   {kindScale, 1_000_000},
	"billion":   {kindScale, 1_000_000_000},
	"trillion":  {kindScale, 1_000_000_000_000},
}

// ordinals maps each ordinal word to its cardinal. An ordinal ends the phrase
// it appears in.
var ordinals = map[string]string{
	"first":       "one",
	"second":      "two",
	"third":       "three",
	"fourth":      "four",
	"fifth":       "five",
	"sixth":       "six",
	"seventh":     "seven",
	"eighth":      "eight",
	"ninth":       "nine",
	"tenth":       "ten",
	"eleventh":    "eleven",
	"twelfth":     "twelve",
	"thirteenth":  "thirteen",
	"fourteenth":  "fourteen",
	"fifteenth":   "fifteen",
	"sixteenth":   "sixteen",
	"seventeenth": "seventeen",
	"eighteenth":  "eighteen",
	"nineteenth":  "nineteen",
	"twentieth":   "twenty",
	"thirtieth":   "thirty",
	"fortieth":    "forty",
	"fiftieth":    "fifty",
	"sixtieth":    "sixty",
	"seventieth":  "seventy",
	"eightieth":   "eighty",
	"ninetieth":   "ninety",
	"hundredth":   "hundred",
	"thousandth":  "thousand",
	"millionth":   "million",
	"billionth":   "billion",
	"trillionth":  "trillion",
}

// continuationOnly ordinals are converted inside a phrase ("twenty second")
// but not on their own, where they usually mean something else.
var continuationOnly = map[string]bool{
	"second": true,
}

// term is a looked-up token.
type term struct {
	word
	ordinal bool
	// leading reports whether the term may start a phrase.
	leading bool
}

const (
	conjunction  = "and"
	decimalPoint = "point"
)

// Converter converts number words to digits. The zero value is ready to use
// and safe for concurrent use.
type Converter struct{}

// New returns a Converter.
func New() *Converter {
	return &Converter{}
}

// Convert replaces every number phrase in text with its digits. Text outside
// number phrases, including its spacing, is preserved. Malformed phrases are
// kept verbatim and reported in the returned error.
func (c *Converter) Convert(text string) (string, error) {
	toks := tokenize(text)
	if len(toks) == 0 {
		return text, nil
	}

	var (
		sb     strings.Builder
		errs   []error
		cursor int
	)

	for i := 0; i < len(toks); {
		t, ok := lookup(toks[i].text)
		if !ok || !t.leading || !t.startsNumber() {
			i++
			continue
		}

		n := phrase{}
		n.add(t)
		j := i + 1
		malformed := false

	scan:
		for j < len(toks) && !n.ordinal {
			lw := strings.ToLower(toks[j].text)
			switch {
			case lw == conjunction:
				if !n.allowsConjunction() || j+1 >= len(toks) {
					break scan
				}
				next, ok := lookup(toks[j+1].text)
				if !ok || !n.accepts(next.word) {
					break scan
				}
				n.add(next)
				j += 2
			case lw == decimalPoint:
				k := j + 1
				var digits strings.Builder
				for k < len(toks) {
					d, ok := lookup(toks[k].text)
					if !ok || d.ordinal || (d.kind != kindUnit && d.kind != kindZero) {
						break
					}
					digits.WriteString(strconv.FormatInt(d.value, 10))
					k++
				}
				if digits.Len() == 0 {
					errs = append(errs, fmt.Errorf("%w: %q", ErrConversion, text[toks[i].start:toks[j].end]))
					malformed = true
					j++
				} else {
					n.fraction = digits.String()
					j = k
				}
				break scan
			default:
				next, ok := lookup(toks[j].text)
				if !ok || !n.accepts(next.word) {
					break scan
				}
				n.add(next)
				j++
			}
		}

		if !malformed {
			sb.WriteString(text[cursor:toks[i].start])
			sb.WriteString(n.String())
			cursor = toks[j-1].end
		}
		i = j
	}

	sb.WriteString(text[cursor:])
	return sb.String(), errors.Join(errs...)
}

func lookup(token string) (term, bool) {
	lw := strings.ToLower(token)
	if w, ok := vocabulary[lw]; ok {
		return term{word: w, leading: true}, true
	}
	if cardinal, ok := ordinals[lw]; ok {
		return term{word: vocabulary[cardinal], ordinal: true, leading: !continuationOnly[lw]}, true
	}
	return term{}, false
}

func (w word) startsNumber() bool {
	return w.kind == kindZero || w.kind == kindUnit || w.kind == kindTeen || w.kind == kindTen
}

// phrase accumulates one number while its words are read left to right.
type phrase struct {
	total     int64
	current   int64
	last      kind
	lastScale int64
	fraction  string
	ordinal   bool
}

func (p *phrase) accepts(w word) bool {
	switch w.kind {
	case kindUnit:
		switch p.last {
		case kindTen:
			return p.current%10 == 0
		case kindHundred, kindScale:
			return true
		}
	case kindTeen, kindTen:
		return p.last == kindHundred || p.last == kindScale
	case kindHundred:
		return (p.last == kindUnit || p.last == kindTeen) && p.current > 0 && p.current < 100
	case kindScale:
		return p.last != kindZero && p.last != kindScale && p.current > 0 &&
			(p.lastScale == 0 || w.value < p.lastScale)
	}
	return false
}

func (p *phrase) allowsConjunction() bool {
	return p.last == kindHundred || p.last == kindScale
}

func (p *phrase) add(t term) {
	w := t.word
	p.ordinal = t.ordinal
	switch w.kind {
	case kindHundred:
		p.current *= w.value
	case kindScale:
		p.total += p.current * w.value
		p.current = 0
		p.lastScale = w.value
	default:
		p.current += w.value
	}
	p.last = w.kind
}

func (p *phrase) String() string {
	n := p.total + p.current
	s := strconv.FormatInt(n, 10)
	if p.fraction != "" {
		s += "." + p.fraction
	}
	if p.ordinal {
		s += ordinalSuffix(n)
	}
	return s
}

func ordinalSuffix(n int64) string {
	if r := n % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

type token struct {
	text       string
	start, end int
}

func tokenize(text string) []token {
	var toks []token
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, token{text: text[start:i], start: start, end: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, token{text: text[start:], start: start, end: len(text)})
	}
	return toks
}
