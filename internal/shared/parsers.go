package shared

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseOptionalInt parses an optional integer field. Blank input means absent and yields nil.
func ParseOptionalInt(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return &v, nil
}

// ParseOptionalInt64 is ParseOptionalInt for identifiers.
func ParseOptionalInt64(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return &v, nil
}

// ParseOptionalFloat parses an optional decimal field. A comma decimal separator is accepted.
// Infinities and NaN are rejected.
func ParseOptionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return &v, nil
}
