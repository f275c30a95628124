package req

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var decimalRegexp = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber coerces s into a finite float64.
//
// Surrounding whitespace is trimmed and an empty string is 0.
// Decimal literals may carry a sign, a fraction and an exponent.
// Unsigned integer literals prefixed with 0x, 0o or 0b are read in base 16, 8 or 2.
// Anything else, including infinities and values overflowing a float64, is not a number.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimFunc(s, isNumberSpace)
	if s == "" {
		return 0, true
	}

	if base := prefixBase(s); base != 0 {
		digits := s[2:]
		if digits == "" || strings.ContainsAny(digits, "+-_") {
			return 0, false
		}

		n, ok := new(big.Int).SetString(digits, base)
		if !ok {
			return 0, false
		}

		f, _ := new(big.Float).SetInt(n).Float64()
		if math.IsInf(f, 0) {
			return 0, false
		}

		return f, true
	}

	if !decimalRegexp.MatchString(s) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if math.IsInf(f, 0) || (err != nil && !errors.Is(err, strconv.ErrRange)) {
		return 0, false
	}

	return f, true
}

func prefixBase(s string) int {
	if len(s) < 2 || s[0] != '0' {
		return 0
	}

	switch s[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	default:
		return 0
	}
}

func isNumberSpace(r rune) bool { return unicode.IsSpace(r) || r == '\ufeff' }
