package config

import (
	"sort"
	"testing"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ur", "ur"},
		{"UR", "ur"},
		{"Urdu", "ur"},
		{"urdu", "ur"},
		{" es ", "es"},
		{"Spanish", "es"},
		{"klingon", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeLanguage(tt.in); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLanguageName(t *testing.T) {
	if got := LanguageName("ur"); got != "Urdu" {
		t.Errorf("LanguageName(ur) = %q, want Urdu", got)
	}
	if got := LanguageName("xx"); got != "" {
		t.Errorf("LanguageName(xx) = %q, want empty", got)
	}
}

func TestLanguageCodes_Sorted(t *testing.T) {
	codes := LanguageCodes()
	if len(codes) == 0 {
		t.Fatal("no language codes")
	}
	if !sort.StringsAreSorted(codes) {
		t.Error("codes not sorted")
	}
	if !IsSupportedLanguage(codes[0]) {
		t.Errorf("code %q from the table should be supported", codes[0])
	}
}
