package formatting_test

import (
	"testing"

	"github.com/JaimeStill/loom/pkg/formatting"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name      string
		n         int64
		precision int
		want      string
	}{
		{name: "zero", n: 0, precision: 2, want: "0 B"},
		{name: "bytes", n: 512, precision: 0, want: "512 B"},
		{name: "kilobytes", n: 2048, precision: 1, want: "2.0 KB"},
		{name: "megabytes", n: 50 * 1024 * 1024, precision: 0, want: "50 MB"},
		{name: "negative precision clamped", n: 1024, precision: -3, want: "1 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
				t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
			}
		})
	}
}

func TestParseBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "bare number", input: "1024", want: 1024},
		{name: "megabytes", input: "50MB", want: 50 * 1024 * 1024},
		{name: "with space", input: "2 GB", want: 2 * 1024 * 1024 * 1024},
		{name: "lowercase unit", input: "10kb", want: 10 * 1024},
		{name: "fractional", input: "1.5KB", want: 1536},
		{name: "surrounding whitespace", input: "  5MB  ", want: 5 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if err != nil {
				t.Fatalf("ParseBytes(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBytesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "unknown unit", input: "10XB"},
		{name: "not a number", input: "abc"},
		{name: "negative", input: "-5MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := formatting.ParseBytes(tt.input); err == nil {
				t.Errorf("ParseBytes(%q) expected error, got nil", tt.input)
			}
		})
	}
}
