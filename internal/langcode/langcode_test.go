package langcode

import "testing"

func TestCanonical(t *testing.T) {
	tests := []struct{ in, want string }{
		{"en", "en"},
		{"EN", "en"},
		{"ru_RU", "ru-RU"},
		{"pt-br", "pt-BR"},
		{"zh-hans", "zh-Hans"},
		{"not a code", "not a code"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Canonical(tt.in); got != tt.want {
			t.Errorf("Canonical(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
