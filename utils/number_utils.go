package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const kgPerQuintal = 100

// ParsePrice parses an upstream price field. Thousands separators and a
// leading rupee sign are tolerated; anything unparseable or non-finite
// becomes 0.
func ParsePrice(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Round2 rounds half away from zero to two decimal places.
func Round2(f float64) float64 {
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// QuantityInQuintals converts a sale quantity to quintals. Anything that is
// not quintals is treated as kilograms.
func QuantityInQuintals(quantity float64, unit string) decimal.Decimal {
	q := decimal.NewFromFloat(quantity)
	if strings.EqualFold(strings.TrimSpace(unit), "quintal") {
		return q
	}
	return q.Div(decimal.NewFromInt(kgPerQuintal))
}

// ExpectedEarnings returns pricePerQuintal × quantity in quintals, rounded
// to two decimals.
func ExpectedEarnings(pricePerQuintal, quantity float64, unit string) float64 {
	return decimal.NewFromFloat(pricePerQuintal).
		Mul(QuantityInQuintals(quantity, unit)).
		Round(2).
		InexactFloat64()
}

// FormatAmount renders a number without trailing zeros, e.g. 2500 or 2512.5.
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
