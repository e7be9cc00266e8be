package router

import (
	"reflect"
	"strings"
	"testing"

	"github.com/baditaflorin/go_text_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

type processorFunc func(string) string

func (f processorFunc) Process(text string) string { return f(text) }

type upper struct{}

func (upper) Process(text string) string { return strings.ToUpper(text) }

type trim struct{}

func (trim) Process(text string) string { return strings.TrimSpace(text) }

func newTestRouter(rec ports.Logger) *Router {
	shared := upper{}
	table := map[string]ports.Processor{
		"en": shared,
		"id": shared,
		"th": processorFunc(func(s string) string { return "th:" + s }),
	}
	return New(table, trim{}, rec)
}

func TestNormalizeDispatch(t *testing.T) {
	r := newTestRouter(logger.NewNopLogger())

	tests := []struct {
		code, text, want string
	}{
		{"en", "hello", "HELLO"},
		{"id", "apa", "APA"},
		{"th", "x", "th:x"},
		{"", "  mixed CASE  ", "mixed CASE"},
		{"EN", "  hello ", "hello"},
		{"fr", " bonjour ", "bonjour"},
	}

	for _, tc := range tests {
		if got := r.Normalize(tc.code, tc.text); got != tc.want {
			t.Errorf("Normalize(%q, %q) = %q, want %q", tc.code, tc.text, got, tc.want)
		}
	}
}

func TestUnknownCodeLogsDebug(t *testing.T) {
	rec := logger.NewRecorder()
	r := newTestRouter(rec)

	r.Normalize("", "x")
	if n := len(rec.Entries("")); n != 0 {
		t.Errorf("empty code should not be logged, got %d entries", n)
	}

	r.Normalize("xx", "x")
	if n := len(rec.Entries("debug")); n != 1 {
		t.Errorf("expected one debug entry for unknown code, got %d", n)
	}
}

func TestLookup(t *testing.T) {
	r := newTestRouter(logger.NewNopLogger())

	if _, ok := r.Lookup("en"); !ok {
		t.Error("en should be registered")
	}
	p, ok := r.Lookup("nope")
	if ok {
		t.Error("nope should not be registered")
	}
	if _, isTrim := p.(trim); !isTrim {
		t.Errorf("expected fallback processor, got %T", p)
	}
}

func TestLanguagesSorted(t *testing.T) {
	r := newTestRouter(logger.NewNopLogger())
	if got, want := r.Languages(), []string{"en", "id", "th"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}
}

func TestProcessorsDeduplicated(t *testing.T) {
	r := New(map[string]ports.Processor{"en": upper{}, "id": upper{}}, trim{}, logger.NewNopLogger())
	if got := len(r.Processors()); got != 2 {
		t.Errorf("expected fallback plus one shared processor, got %d", got)
	}
}

func TestTableCopiedAtConstruction(t *testing.T) {
	table := map[string]ports.Processor{"en": upper{}}
	r := New(table, trim{}, logger.NewNopLogger())
	table["xx"] = upper{}

	if _, ok := r.Lookup("xx"); ok {
		t.Error("router must not observe later changes to the input table")
	}
}

func TestProcessorsWithFuncAdapters(t *testing.T) {
	r := newTestRouter(logger.NewNopLogger())
	if got := len(r.Processors()); got != 3 {
		t.Errorf("expected fallback, upper and func processor, got %d", got)
	}
}
