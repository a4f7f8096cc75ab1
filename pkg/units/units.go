// Package units provides unit conversion and dimension formatting for
// wardrobe measurements. The model stores all lengths in millimeters;
// imperial display is derived at the edges.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Exact conversion factors. No rounding is applied by the conversion
// functions themselves.
const (
	MMPerInch = 25.4
	MMPerCM   = 10.0
)

// MMToInches converts millimeters to inches.
func MMToInches(mm float64) float64 { return mm / MMPerInch }

// InchesToMM converts inches to millimeters.
func InchesToMM(in float64) float64 { return in * MMPerInch }

// MMToCM converts millimeters to centimeters.
func MMToCM(mm float64) float64 { return mm / MMPerCM }

// CMToMM converts centimeters to millimeters.
func CMToMM(cm float64) float64 { return cm * MMPerCM }

// FormatDimension formats a millimeter value for display.
// Metric output carries a " mm" suffix; imperial output is converted to
// inches and carries a trailing double quote.
func FormatDimension(mm float64, metric bool, precision int) string {
	if metric {
		return fmt.Sprintf("%.*f mm", precision, mm)
	}
	return fmt.Sprintf("%.*f\"", precision, MMToInches(mm))
}

// ParseDimension parses a dimension string to millimeters.
// Accepted forms: "500", "500mm", "50cm", "20\"", "20in". Input is
// trimmed and lowercased first; a bare number is interpreted as
// millimeters. Malformed numeric payloads return (0, false).
func ParseDimension(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	convert := func(payload string, toMM func(float64) float64) (float64, bool) {
		v, err := strconv.ParseFloat(strings.TrimSpace(payload), 64)
		if err != nil {
			return 0, false
		}
		return toMM(v), true
	}

	switch {
	case strings.HasSuffix(s, "mm"):
		return convert(s[:len(s)-2], func(v float64) float64 { return v })
	case strings.HasSuffix(s, "cm"):
		return convert(s[:len(s)-2], CMToMM)
	case strings.HasSuffix(s, `"`):
		return convert(s[:len(s)-1], InchesToMM)
	case strings.HasSuffix(s, "in"):
		return convert(s[:len(s)-2], InchesToMM)
	default:
		return convert(s, func(v float64) float64 { return v })
	}
}
