package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidHexColor(t *testing.T) {
	assert.True(t, IsValidHexColor("#ff8800"))
	assert.True(t, IsValidHexColor("#FF8800"))
	assert.True(t, IsValidHexColor("#000000"))

	assert.False(t, IsValidHexColor("ff8800"))
	assert.False(t, IsValidHexColor("#fff"))
	assert.False(t, IsValidHexColor("#ff88000"))
	assert.False(t, IsValidHexColor("#ff88zz"))
	assert.False(t, IsValidHexColor(""))
}

func TestIsValidCurrency(t *testing.T) {
	assert.True(t, IsValidCurrency("CZK"))
	assert.True(t, IsValidCurrency("Kč"))
	assert.True(t, IsValidCurrency("€"))
	// Ten multibyte runes are within the limit even though they take
	// more than ten bytes.
	assert.True(t, IsValidCurrency(strings.Repeat("€", 10)))

	assert.False(t, IsValidCurrency(""))
	assert.False(t, IsValidCurrency("TOOLONGCURRENCY"))
	assert.False(t, IsValidCurrency(strings.Repeat("€", 11)))
}
