// normalizer_test.go
package textnormalizer

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/baditaflorin/go_text_normalizer/internal/adapters/logger"
)

func withNopLogger() Option {
	return func(cfg *config) {
		cfg.Logger = logger.NewNopLogger()
	}
}

func newTestNormalizer(t *testing.T, opts ...Option) *Normalizer {
	t.Helper()
	n, err := New(append([]Option{withNopLogger()}, opts...)...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return n
}

func TestNormalize(t *testing.T) {
	n := newTestNormalizer(t)

	tests := []struct {
		name     string
		language string
		text     string
		want     string
	}{
		{"default trims only", "", "  mixed CASE  ", "mixed CASE"},
		{"unknown code falls back", "fr", "  Bonjour, le monde!  ", "Bonjour, le monde!"},
		{"codes are case sensitive", "EN", " twenty ", "twenty"},
		{"generic latin", "id", "Hello -world 123!", "HELLO WORLD 123"},
		{"malay is generic latin", "ms", "Apa khabar?", "APA KHABAR"},
		{"english numbers", "en", "i have twenty three cats", "I HAVE 23 CATS"},
		{"tagalog keeps n tilde", "tl", "Pangalan niña", "PANGALAN NIÑA"},
		{"cjk", "zh", "你好, world! 123", "你 好 1 2 3"},
		{"mandarin simplified", "zh_cmn", "漢語和汉语", "汉 语 和 汉 语"},
		{"cantonese traditional", "zh_yue", "汉语和漢語", "漢 語 和 漢 語"},
		{"thai", "th", "ขอบคุณ hello", "ข อ บ ค \u0e38 ณ"},
		{"vietnamese", "vi", "Xin chào, thế giới!", "XIN CHÀO THẾ GIỚI"},
		{"tamil", "ta", "வணக்கம் world", "வணக்கம்"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Normalize(tc.language, tc.text); got != tc.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tc.language, tc.text, got, tc.want)
			}
		})
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	n := newTestNormalizer(t)
	for _, code := range append(n.Languages(), "", "xx") {
		if got := n.Normalize(code, ""); got != "" {
			t.Errorf("Normalize(%q, \"\") = %q, want empty", code, got)
		}
	}
}

func TestBaseIsTrim(t *testing.T) {
	n := newTestNormalizer(t)
	inputs := []string{"", " a ", "\n\tb c\r\n", "  你好  ", "x"}
	for _, in := range inputs {
		if got := n.Normalize("", in); got != strings.TrimSpace(in) {
			t.Errorf("Normalize(\"\", %q) = %q, want %q", in, got, strings.TrimSpace(in))
		}
	}
}

func TestLanguages(t *testing.T) {
	n := newTestNormalizer(t)
	want := []string{"en", "id", "ms", "ta", "th", "tl", "vi", "zh", "zh_cmn", "zh_yue"}
	if got := n.Languages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}
	if !n.Supports("zh_yue") || n.Supports("") || n.Supports("Zh") {
		t.Error("Supports reports wrong membership")
	}
}

func TestNormalizeAll(t *testing.T) {
	n := newTestNormalizer(t)
	got := n.NormalizeAll("en", []string{"one dog", "Two-cats!", ""})
	want := []string{"1 DOG", "2 CATS", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeAll = %v, want %v", got, want)
	}
}

type brokenConverter struct{}

func (brokenConverter) Convert(text string) (string, error) {
	return text, errors.New("decimal operation failed")
}

func TestWithNumberConverterFailureIsNotFatal(t *testing.T) {
	rec := logger.NewRecorder()
	n, err := New(
		func(cfg *config) { cfg.Logger = rec },
		WithNumberConverter(brokenConverter{}),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if got := n.Normalize("en", "twenty three"); got != "TWENTY THREE" {
		t.Errorf("expected unconverted text, got %q", got)
	}
	if len(rec.Entries("warn")) != 1 {
		t.Errorf("expected the failure to be logged as a warning")
	}
}

type zeroOnErrorConverter struct{}

func (zeroOnErrorConverter) Convert(string) (string, error) {
	return "", errors.New("decimal operation failed")
}

func TestWithNumberConverterZeroValueOnError(t *testing.T) {
	n := newTestNormalizer(t, WithNumberConverter(zeroOnErrorConverter{}))

	if got := n.Normalize("en", "i have twenty three cats"); got != "I HAVE TWENTY THREE CATS" {
		t.Errorf("expected unconverted text, got %q", got)
	}
}

func TestWarmUp(t *testing.T) {
	n := newTestNormalizer(t, WithWarmUpConfig(WarmupConfig{
		Concurrency: 2,
		Iterations:  3,
		SampleWords: 20,
		Duration:    10 * time.Second,
	}))

	// Second call is a no-op.
	if err := n.WarmUp(context.Background(), DefaultWarmupConfig()); err != nil {
		t.Errorf("WarmUp() error: %v", err)
	}
	if got := n.Normalize("zh_cmn", "漢"); got != "汉" {
		t.Errorf("unexpected result after warm-up: %q", got)
	}
}

func TestConcurrentNormalize(t *testing.T) {
	n := newTestNormalizer(t)
	languages := append(n.Languages(), "")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := languages[i%len(languages)]
			want := n.Normalize(code, "Hello twenty one 你好 漢語 สวัสดี chào வணக்கம் niña")
			for j := 0; j < 50; j++ {
				if got := n.Normalize(code, "Hello twenty one 你好 漢語 สวัสดี chào வணக்கம் niña"); got != want {
					t.Errorf("%s: got %q, want %q", code, got, want)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestPackageLevelNormalize(t *testing.T) {
	if got := Normalize("id", "selamat pagi!"); got != "SELAMAT PAGI" {
		t.Errorf("Normalize = %q", got)
	}
	if Default() != Default() {
		t.Error("Default must return the shared instance")
	}
}

func TestCloseOnlyClosesOwnLogger(t *testing.T) {
	n := newTestNormalizer(t)
	if err := n.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
