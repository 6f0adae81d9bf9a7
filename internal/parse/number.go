package parse

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// numberValue returns a numeric literal's value as Python prints it:
// 0x10 is "16", 1_000 is "1000", 1e3 is "1000.0", 2J is "2j". Literals that
// do not parse are returned unchanged.
func numberValue(literal string) string {
	clean := strings.ReplaceAll(literal, "_", "")

	if n := len(clean); n > 0 && (clean[n-1] == 'j' || clean[n-1] == 'J') {
		f, ok := parseFloat(clean[:n-1])
		if !ok {
			return literal
		}
		return strings.TrimSuffix(formatFloat(f), ".0") + "j"
	}

	if i, ok := new(big.Int).SetString(clean, 0); ok {
		return i.String()
	}
	if f, ok := parseFloat(clean); ok {
		return formatFloat(f)
	}
	return literal
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// formatFloat mirrors Python's float repr: shortest round-trip digits,
// positional notation for exponents in [-4, 16), a trailing ".0" on
// integral values, scientific notation otherwise.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
