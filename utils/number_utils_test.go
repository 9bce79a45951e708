package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2500", 2500},
		{" 2512.50 ", 2512.5},
		{"2,600", 2600},
		{"₹1800", 1800},
		{"", 0},
		{"NR", 0},
		{"12abc", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-Infinity", 0},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, ParsePrice(c.in), "ParsePrice(%q)", c.in)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 8.33, Round2(8.333333))
	assert.Equal(t, -2.01, Round2(-2.0149))
	assert.Equal(t, 2600.0, Round2(2600))
}

func TestExpectedEarningsUnitsAgree(t *testing.T) {
	kg := ExpectedEarnings(2600, 250, "kg")
	quintal := ExpectedEarnings(2600, 2.5, "quintal")

	assert.Equal(t, 6500.0, kg)
	assert.Equal(t, kg, quintal)
	assert.Equal(t, 6500.0, ExpectedEarnings(2600, 2.5, "Quintal"))
}

func TestQuantityInQuintalsDefaultsToKg(t *testing.T) {
	assert.Equal(t, "2.5", QuantityInQuintals(250, "").String())
	assert.Equal(t, "2.5", QuantityInQuintals(250, "bags").String())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2500", FormatAmount(2500))
	assert.Equal(t, "2512.5", FormatAmount(2512.5))
}
