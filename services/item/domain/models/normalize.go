package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Clients send price and quantity as either JSON numbers or numeric strings
// ({"price": 9.99} and {"price": "9.99"} are both accepted). Anything that
// fails to parse falls back silently instead of erroring: 0 on create, the
// existing stored value on update. Negative input counts as unparsable so the
// fields never go negative. Tests pin this contract; do not tighten it here.

// ParsePriceOrDefault interprets raw as a non-negative decimal price.
// Returns fallback when raw is absent, null, non-numeric, or negative.
func ParsePriceOrDefault(raw json.RawMessage, fallback float64) float64 {
	f, ok := parseNumber(raw)
	if !ok || f < 0 {
		return fallback
	}
	return f
}

// ParseQuantityOrDefault interprets raw as a non-negative integer quantity.
// Fractional input is truncated toward zero. Returns fallback when raw is
// absent, null, non-numeric, or negative.
func ParseQuantityOrDefault(raw json.RawMessage, fallback int64) int64 {
	f, ok := parseNumber(raw)
	if !ok || f < 0 {
		return fallback
	}
	return int64(f)
}

// parseNumber accepts a JSON number or a string containing one.
func parseNumber(raw json.RawMessage) (float64, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(trimmed, &n); err == nil {
		return n, true
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
