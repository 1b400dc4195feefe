package core

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"pfasscreen/pkg/domain"
)

// NormalizeToMgL converts a concentration expressed in unit to mg/L.
// Labels are compared case-insensitively after Unicode compatibility
// folding, so the micro sign and the Greek mu are interchangeable.
// Unrecognised labels are treated as mg/L.
func NormalizeToMgL(value float64, unit domain.Unit) float64 {
	switch canonicalUnit(unit) {
	case "mg/l", "ppm":
		return value
	case "ug/l", "μg/l":
		return value / 1_000
	case "ng/l":
		return value / 1_000_000
	default:
		return value
	}
}

func canonicalUnit(unit domain.Unit) string {
	// NFKC maps U+00B5 MICRO SIGN onto U+03BC GREEK SMALL LETTER MU.
	return strings.ToLower(norm.NFKC.String(strings.TrimSpace(string(unit))))
}
