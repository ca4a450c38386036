package sapling

import (
	"testing"

	"golang.org/x/text/language"
)

func TestIndexFormatter(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{"single", "{0} units", []any{5}, "5 units"},
		{"repeated", "{0}-{0}", []any{"a"}, "a-a"},
		{"multiple", "{1} of {0}", []any{10, 3}, "3 of 10"},
		{"no placeholders", "plain", []any{1}, "plain"},
		{"escaped braces", "{{0}} is {0}", []any{7}, "{0} is 7"},
		{"out of range", "{3}", []any{1}, "{3}"},
		{"not a number", "{name}", []any{1}, "{name}"},
		{"negative", "{-1}", []any{1}, "{-1}"},
		{"unterminated", "value {0", []any{1}, "value {0"},
		{"value arg", "{0}!", []any{StringValue("hi")}, "hi!"},
		{"float", "{0}", []any{0.1}, "0.1"},
		{"empty", "", nil, ""},
		{"lone close brace", "a}b", nil, "a}b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IndexFormatter{}.Format(tt.template, tt.args...)
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestPrintfFormatter(t *testing.T) {
	got := PrintfFormatter{}.Format("%d/%d", 3, 4)
	if got != "3/4" {
		t.Errorf("Format = %q, want %q", got, "3/4")
	}
}

func TestLocaleFormatter(t *testing.T) {
	tests := []struct {
		tag  language.Tag
		want string
	}{
		{language.English, "1,234,567 pts"},
		{language.German, "1.234.567 pts"},
	}
	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			got := LocaleFormatter{Tag: tt.tag}.Format("%d pts", 1234567)
			if got != tt.want {
				t.Errorf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetDefaultFormatterNil(t *testing.T) {
	SetDefaultFormatter(PrintfFormatter{})
	SetDefaultFormatter(nil)
	if _, ok := DefaultFormatter().(IndexFormatter); !ok {
		t.Errorf("DefaultFormatter() = %T, want IndexFormatter", DefaultFormatter())
	}
}
