package cart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a currency-like string to a plain decimal. It accepts
// "24.99" and "$24.99" forms since legacy catalog exports carry the currency
// symbol inline.
func ParseAmount(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "$")
	if trimmed == "" {
		return 0, fmt.Errorf("empty amount")
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount %q is not finite", s)
	}
	return v, nil
}

// Round2 rounds to two decimal places, half away from zero. Applied only at
// the display/summary boundary; intermediate sums keep full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
