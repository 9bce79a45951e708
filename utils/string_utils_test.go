package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitCommaList(t *testing.T) {
	assert.Equal(t, []string{"coimbatore", "salem"}, SplitCommaList(" Coimbatore, SALEM ,,"))
	assert.Nil(t, SplitCommaList(""))
}

func TestContainsAnyFold(t *testing.T) {
	terms := SplitCommaList("coimbatore,salem")
	assert.True(t, ContainsAnyFold("Coimbatore (Uzhavar Sandhai)", terms))
	assert.False(t, ContainsAnyFold("Madurai", terms))
	assert.False(t, ContainsAnyFold("Madurai", nil))
}

func TestValueOrDefault(t *testing.T) {
	assert.Equal(t, "kg", ValueOrDefault("  ", "kg"))
	assert.Equal(t, "quintal", ValueOrDefault("quintal", "kg"))
}
