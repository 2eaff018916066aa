package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NormalizePhoneNumber strips formatting characters so the same caller
// always maps to the same stored number. Numbers arrive from the telephony
// provider as +2547XXXXXXXX but operators paste them with spaces and dashes.
func NormalizePhoneNumber(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		if r == '+' && i == 0 {
			b.WriteRune(r)
			continue
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhoneNumber checks the normalized form looks like an E.164 number.
func ValidPhoneNumber(phone string) bool {
	if !strings.HasPrefix(phone, "+") {
		return false
	}
	digits := phone[1:]
	return len(digits) >= 7 && len(digits) <= 14
}

// NewSessionID generates a unique identifier for a call session
func NewSessionID() string {
	return fmt.Sprintf("call_%s", uuid.NewString())
}
