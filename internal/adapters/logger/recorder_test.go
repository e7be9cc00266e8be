package logger

import (
	"sync"
	"testing"
)

func TestRecorderEntries(t *testing.T) {
	rec := NewRecorder()
	rec.Debug("d")
	rec.Warn("w1", "language", "en")
	rec.Info("i")
	rec.Warn("w2")

	tests := []struct {
		level string
		want  []string
	}{
		{"warn", []string{"w1", "w2"}},
		{"debug", []string{"d"}},
		{"error", nil},
		{"", []string{"d", "w1", "i", "w2"}},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			got := rec.Entries(tt.level)
			if len(got) != len(tt.want) {
				t.Fatalf("Entries(%q) returned %d entries, want %d", tt.level, len(got), len(tt.want))
			}
			for i, e := range got {
				if e.Msg != tt.want[i] {
					t.Errorf("Entries(%q)[%d].Msg = %q, want %q", tt.level, i, e.Msg, tt.want[i])
				}
			}
		})
	}

	if kv := rec.Entries("warn")[0].KeysAndValues; len(kv) != 2 || kv[1] != "en" {
		t.Errorf("KeysAndValues = %v, want [language en]", kv)
	}
}

func TestRecorderConcurrentUse(t *testing.T) {
	rec := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rec.Info("msg")
			}
		}()
	}
	wg.Wait()

	if n := len(rec.Entries("info")); n != 800 {
		t.Errorf("recorded %d entries, want 800", n)
	}
}
