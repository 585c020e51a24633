// Package primitives - Quantity units
// Section quantities are in base units; byte sizes may carry a suffix.
package primitives

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// byteUnits maps a size suffix to its multiplier in bytes.
// Decimal suffixes are powers of 1000, binary ones powers of 1024.
var byteUnits = map[string]int64{
	"B":   1,
	"KB":  1_000,
	"MB":  1_000_000,
	"GB":  1_000_000_000,
	"TB":  1_000_000_000_000,
	"KIB": 1 << 10,
	"MIB": 1 << 20,
	"GIB": 1 << 30,
	"TIB": 1 << 40,
}

// ParseQuantity parses a base-unit quantity such as "250", "1e9", "10GB" or
// "1.5GiB". Suffixes are case-insensitive and scale to bytes.
func ParseQuantity(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty quantity")
	}

	number, unit := splitUnit(s)
	value, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid quantity %q", raw)
	}
	if unit == "" {
		return value, nil
	}

	factor, ok := byteUnits[strings.ToUpper(unit)]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown unit %q in quantity %q", unit, raw)
	}
	return value.Mul(decimal.NewFromInt(factor)), nil
}

// splitUnit separates a trailing alphabetic suffix. An exponent marker
// followed by digits ("1e9") belongs to the number.
func splitUnit(s string) (string, string) {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			i--
			continue
		}
		break
	}
	return strings.TrimSpace(s[:i]), s[i:]
}
