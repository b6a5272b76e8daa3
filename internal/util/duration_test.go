package util

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{"zero", 0, "0.00 µs"},
		{"half millisecond", 500 * time.Microsecond, "500.00 µs"},
		{"sub microsecond", 250 * time.Nanosecond, "0.25 µs"},
		{"exactly one millisecond", time.Millisecond, "1.00 ms"},
		{"42 milliseconds", 42 * time.Millisecond, "42.00 ms"},
		{"fractional milliseconds", 1500 * time.Microsecond, "1.50 ms"},
		{"five seconds", 5 * time.Second, "5.00 s"},
		{"just under a minute", 59990 * time.Millisecond, "59.99 s"},
		{"ninety seconds", 90 * time.Second, "1.50 min"},
		{"hour", time.Hour, "60.00 min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatElapsed(tt.input)
			if result != tt.expected {
				t.Errorf("FormatElapsed(%v) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 60)
	exact := strings.Repeat("y", 48)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"short unchanged", "42", "42"},
		{"at limit unchanged", exact, exact},
		{"one over limit", exact + "z", strings.Repeat("y", 45) + "..."},
		{"long", long, strings.Repeat("x", 45) + "..."},
		{"multibyte counted as runes", strings.Repeat("é", 49), strings.Repeat("é", 45) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, 48, 45)
			if result != tt.expected {
				t.Errorf("Truncate(%q) = %q, want %q", tt.input, result, tt.expected)
			}
			if utf8.RuneCountInString(tt.input) > 48 {
				visible := strings.TrimSuffix(result, "...")
				if utf8.RuneCountInString(visible) != 45 {
					t.Errorf("expected 45 visible runes, got %d", utf8.RuneCountInString(visible))
				}
			}
		})
	}
}
