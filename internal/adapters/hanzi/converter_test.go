package hanzi

import "testing"

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		in      string
		want    string
	}{
		{"to simplified", Simplified, "漢 語", "汉 语"},
		{"to traditional", Traditional, "汉 语", "漢 語"},
		{"simplified passthrough", Simplified, "汉 语", "汉 语"},
		{"digits passthrough", Traditional, "1 2 3", "1 2 3"},
		{"empty", Simplified, "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConverter(tc.variant).Convert(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Convert(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestVariantString(t *testing.T) {
	if Simplified.String() != "simplified" || Traditional.String() != "traditional" {
		t.Errorf("unexpected variant names %q %q", Simplified, Traditional)
	}
	if Variant(7).String() != "Variant(7)" {
		t.Errorf("unexpected name for unknown variant: %q", Variant(7))
	}
}
