package util

import "strconv"

// IsNumeric reports whether s is a decimal number token: an optional leading
// sign, digits, and at most one dot. This is the shape the tokenizer uses to
// auto-detect values, so it is deliberately narrower than strconv.ParseFloat
// (no exponents, no hex) - "1e5" stays a string until a definition says
// otherwise.
func IsNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}

	start := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}

	hasDigit := false
	hasDot := false
	for i := start; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			hasDigit = true
		case s[i] == '.':
			if hasDot {
				return false
			}
			hasDot = true
		default:
			return false
		}
	}

	return hasDigit
}

// ParseNumeric parses a numeric token accepted by IsNumeric
func ParseNumeric(s string) (float64, bool) {
	if !IsNumeric(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}
