package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "+254712345678", NormalizePhoneNumber("+254 712 345 678"))
	assert.Equal(t, "+254712345678", NormalizePhoneNumber(" +254-712-345-678 "))
	assert.Equal(t, "+254712345678", NormalizePhoneNumber("+254712345678"))
	assert.Equal(t, "0712345678", NormalizePhoneNumber("(071) 234-5678"))
	assert.Equal(t, "", NormalizePhoneNumber(""))
}

func TestValidPhoneNumber(t *testing.T) {
	assert.True(t, ValidPhoneNumber("+254712345678"))
	assert.True(t, ValidPhoneNumber("+12025550123"))
	assert.False(t, ValidPhoneNumber("0712345678")) // missing country code
	assert.False(t, ValidPhoneNumber("+12345"))     // too short
	assert.False(t, ValidPhoneNumber(""))
}

func TestNewSessionID(t *testing.T) {
	first := NewSessionID()
	second := NewSessionID()

	assert.True(t, strings.HasPrefix(first, "call_"))
	assert.NotEqual(t, first, second)
}
