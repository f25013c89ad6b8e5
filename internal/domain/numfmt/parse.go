package numfmt

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads a decimal number from the start of raw, the way a forgiving
// input field does: leading whitespace is skipped and anything after the
// longest numeric prefix is ignored, so "12abc" reads as 12 and a half-typed
// "2e" reads as 2. The decimal separator is always '.'.
//
// It reports false when raw has no numeric prefix or the prefix does not fit
// in a finite float64.
func Parse(raw string) (float64, bool) {
	s := strings.TrimLeftFunc(raw, isLeadingSpace)
	end := numericPrefix(s)
	if end == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// numericPrefix returns the length of the longest prefix of s of the form
// [sign] digits [. digits] [(e|E) [sign] digits], requiring at least one
// mantissa digit. An exponent without digits is not part of the prefix.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}
	return end
}

// isLeadingSpace also skips a byte order mark, which pasted text often starts with.
func isLeadingSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
