package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRUT(t *testing.T) {
	assert.Equal(t, "12345678-5", NormalizeRUT("12.345.678-5"))
	assert.Equal(t, "12345678-K", NormalizeRUT("12.345.678-k"), "Check digit should be upper-cased")
	assert.Equal(t, "12345678-5", NormalizeRUT("123456785"), "Dash should be inserted when omitted")
	assert.Equal(t, "12345678-5", NormalizeRUT("  12345678-5  "))
}

func TestValidateRUT(t *testing.T) {
	// Valid modulo-11 check digits, including the K and 0 cases.
	assert.True(t, ValidateRUT("12.345.678-5"))
	assert.True(t, ValidateRUT("123456785"))
	assert.True(t, ValidateRUT("20.347.878-K"))
	assert.True(t, ValidateRUT("20347878-k"))

	// Wrong check digit.
	assert.False(t, ValidateRUT("12.345.678-9"))
	assert.False(t, ValidateRUT("12345678-K"))

	// Malformed input.
	assert.False(t, ValidateRUT(""))
	assert.False(t, ValidateRUT("no-es-rut"))
	assert.False(t, ValidateRUT("-5"))
	assert.False(t, ValidateRUT("12345678-55"))
}
