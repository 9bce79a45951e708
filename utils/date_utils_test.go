package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecordDate(t *testing.T) {
	for _, in := range []string{"18/10/2024", "2024-10-18", "2024-10-18T06:30:00Z"} {
		d, ok := ParseRecordDate(in)
		assert.True(t, ok, in)
		assert.Equal(t, 2024, d.Year(), in)
		assert.Equal(t, 18, d.Day(), in)
	}

	_, ok := ParseRecordDate("yesterday")
	assert.False(t, ok)
	_, ok = ParseRecordDate("")
	assert.False(t, ok)
}

func TestFormatRecordDate(t *testing.T) {
	assert.Equal(t, "2024-10-18", FormatRecordDate("18/10/2024"))
	assert.Equal(t, "sometime", FormatRecordDate(" sometime "))
}
