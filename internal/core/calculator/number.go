package calculator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numericPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// parseNumber reads the longest numeric prefix of text, the way a browser
// parseFloat does. Text without a numeric prefix yields NaN.
func parseNumber(text string) float64 {
	text = strings.TrimLeft(text, " \t\n\r\v\f\u00a0\ufeff")
	match := numericPrefix.FindString(text)
	if match == "" {
		return math.NaN()
	}

	unsigned := strings.TrimLeft(match, "+-")
	if unsigned == "Infinity" {
		if strings.HasPrefix(match, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	// Out-of-range literals still come back as ±Inf or 0, which is what we want.
	value, _ := strconv.ParseFloat(match, 64)
	return value
}

// formatNumber renders value the way a browser's Number#toString does.
func formatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case value == 0:
		return "0"
	}

	abs := math.Abs(value)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	formatted := strconv.FormatFloat(value, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(formatted, "e")
	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}
