package i18n

import (
	"errors"
	"testing"
)

func TestParseFlat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]string
	}{
		{"empty object", `{}`, map[string]string{}},
		{"single pair", `{"a": "b"}`, map[string]string{"a": "b"}},
		{
			"several pairs with noise whitespace",
			"{\n\t\"a\" : \"1\",\r\n \"b\":\"2\" ,, \"c\" : \"3\"\n}",
			map[string]string{"a": "1", "b": "2", "c": "3"},
		},
		{"duplicate key keeps last", `{"k": "1", "k": "2"}`, map[string]string{"k": "2"}},
		{"empty strings", `{"": ""}`, map[string]string{"": ""}},
		{
			"standard escapes",
			`{"a": "x\ny\t\"q\"\\\/"}`,
			map[string]string{"a": "x\ny\t\"q\"\\/"},
		},
		{
			"unicode escape",
			`{"ship": "Корабль"}`,
			map[string]string{"ship": "Корабль"},
		},
		{
			"short unicode escape stops at non-hex",
			`{"a": "\u41!"}`,
			map[string]string{"a": "A!"},
		},
		{
			"unknown escape keeps character literally",
			`{"a": "\q\z"}`,
			map[string]string{"a": "qz"},
		},
		{"utf8 passthrough", `{"greet": "привет"}`, map[string]string{"greet": "привет"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlat(tt.in)
			if err != nil {
				t.Fatalf("parseFlat(%q) error = %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseFlat(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("key %q = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestParseFlatMalformed(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantKeys map[string]string
	}{
		{"empty input", ``, nil},
		{"no opening brace", `"a": "b"`, nil},
		{"missing closing brace", `{"a": "b"`, map[string]string{"a": "b"}},
		{"non-string value", `{"a": "b", "c": 1}`, map[string]string{"a": "b"}},
		{"missing colon", `{"a" "b"}`, nil},
		{"unterminated value", `{"a": "b", "c": "oops`, map[string]string{"a": "b"}},
		{"unterminated key", `{"a": "b", "c`, map[string]string{"a": "b"}},
		{"nested object rejected", `{"a": {"b": "c"}}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlat(tt.in)
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("parseFlat(%q) error = %v, want ErrMalformed", tt.in, err)
			}
			if len(got) != len(tt.wantKeys) {
				t.Fatalf("partial table = %v, want %v", got, tt.wantKeys)
			}
			for k, v := range tt.wantKeys {
				if got[k] != v {
					t.Errorf("partial key %q = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}
