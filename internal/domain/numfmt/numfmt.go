// Package numfmt turns conversion results into display strings and display
// input back into numbers.
//
// Formatting switches to scientific notation for very large and very small
// magnitudes and otherwise shows a plain decimal rounded to a fixed number of
// significant digits, with no trailing zeros. Rounding resolves exact ties away
// from zero.
package numfmt

import (
	"math"
	"strconv"
	"strings"
)

// Display policy. Values whose magnitude is at least ScientificAbove, or
// below ScientificBelow but non-zero, are written in scientific notation.
const (
	ScientificAbove = 1e9
	ScientificBelow = 1e-4

	// SignificantDigits is the precision of the plain decimal form.
	SignificantDigits = 10

	// MantissaDecimals is the number of digits after the mantissa's decimal
	// point in scientific notation.
	MantissaDecimals = 6
)

// exactDigits is enough significant digits to spell out any float64 exactly.
const exactDigits = 767

// Format renders v for display.
func Format(v float64) string {
	if v == 0 {
		// Covers negative zero.
		return "0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	abs := math.Abs(v)
	if abs >= ScientificAbove || abs < ScientificBelow {
		return scientific(v)
	}
	return decimal(v)
}

// scientific writes v as d.dddddde±x, with an unpadded exponent.
func scientific(v float64) string {
	digits, exp := roundSignificant(math.Abs(v), MantissaDecimals+1)

	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
	}
	b.WriteString(digits[:1])
	b.WriteByte('.')
	b.WriteString(digits[1:])
	b.WriteByte('e')
	if exp < 0 {
		b.WriteByte('-')
		exp = -exp
	} else {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}

// decimal rounds v to SignificantDigits and writes the shortest plain decimal
// that identifies the rounded value.
func decimal(v float64) string {
	digits, exp := roundSignificant(math.Abs(v), SignificantDigits)

	rounded, err := strconv.ParseFloat(digits[:1]+"."+digits[1:]+"e"+strconv.Itoa(exp), 64)
	if err != nil {
		// Unreachable for finite input below ScientificAbove.
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v < 0 {
		rounded = -rounded
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// roundSignificant rounds the positive finite value abs to n significant
// digits, resolving exact ties away from zero. It returns the n digits and the
// decimal exponent of the first one.
func roundSignificant(abs float64, n int) (string, int) {
	// The exact expansion is needed because strconv rounds ties to even.
	exact := strconv.FormatFloat(abs, 'e', exactDigits, 64)
	mantissa, expPart, _ := strings.Cut(exact, "e")
	exp, _ := strconv.Atoi(expPart)

	all := mantissa[:1] + mantissa[2:]
	digits := []byte(all[:n])
	if all[n] < '5' {
		return string(digits), exp
	}

	i := n - 1
	for ; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			break
		}
		digits[i] = '0'
	}
	if i < 0 {
		// Carried out of the leading digit: 9.99… became 10.0…
		digits[0] = '1'
		exp++
	}
	return string(digits), exp
}
