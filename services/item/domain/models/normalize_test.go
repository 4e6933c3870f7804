package models

import (
	"encoding/json"
	"testing"
)

func TestParsePriceOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback float64
		want     float64
	}{
		{"JSON number", `9.99`, 0, 9.99},
		{"integer number", `42`, 0, 42},
		{"numeric string", `"9.99"`, 0, 9.99},
		{"numeric string with spaces", `"  3.5 "`, 0, 3.5},
		{"zero", `0`, 7, 0},
		{"absent", ``, 7, 7},
		{"null", `null`, 7, 7},
		{"non-numeric string", `"abc"`, 7, 7},
		{"empty string", `""`, 7, 7},
		{"boolean", `true`, 7, 7},
		{"object", `{"v":1}`, 7, 7},
		{"array", `[1]`, 7, 7},
		{"negative number", `-5`, 7, 7},
		{"negative string", `"-5"`, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw json.RawMessage
			if tt.raw != "" {
				raw = json.RawMessage(tt.raw)
			}
			got := ParsePriceOrDefault(raw, tt.fallback)
			if got != tt.want {
				t.Fatalf("ParsePriceOrDefault(%q, %v) = %v, want %v", tt.raw, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestParseQuantityOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback int64
		want     int64
	}{
		{"JSON number", `5`, 0, 5},
		{"numeric string", `"12"`, 0, 12},
		{"fractional truncates toward zero", `3.9`, 0, 3},
		{"fractional string truncates", `"3.9"`, 0, 3},
		{"zero", `0`, 7, 0},
		{"absent", ``, 7, 7},
		{"null", `null`, 7, 7},
		{"non-numeric string", `"many"`, 7, 7},
		{"boolean", `false`, 7, 7},
		{"negative number", `-1`, 7, 7},
		{"negative string", `"-1"`, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw json.RawMessage
			if tt.raw != "" {
				raw = json.RawMessage(tt.raw)
			}
			got := ParseQuantityOrDefault(raw, tt.fallback)
			if got != tt.want {
				t.Fatalf("ParseQuantityOrDefault(%q, %v) = %v, want %v", tt.raw, tt.fallback, got, tt.want)
			}
		})
	}
}
