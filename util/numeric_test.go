package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	numeric := []string{"0", "10", "-10", "+5", "3.14", "-3.14", ".5", "-.5", "007"}
	for _, s := range numeric {
		assert.True(t, IsNumeric(s), "%q should be numeric", s)
	}

	notNumeric := []string{"", "-", "+", ".", "-.", "abc", "1e5", "0x10", "1.2.3", "--10", "1,000", " 1"}
	for _, s := range notNumeric {
		assert.False(t, IsNumeric(s), "%q should not be numeric", s)
	}
}

func TestParseNumeric(t *testing.T) {
	n, ok := ParseNumeric("-3.14")
	assert.True(t, ok, "should parse a signed decimal")
	assert.Equal(t, -3.14, n)

	n, ok = ParseNumeric("42")
	assert.True(t, ok)
	assert.Equal(t, 42.0, n)

	_, ok = ParseNumeric("1e5")
	assert.False(t, ok, "exponent notation should be rejected")

	_, ok = ParseNumeric("nope")
	assert.False(t, ok)
}
