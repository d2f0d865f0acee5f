// Package mobile normalizes customer mobile numbers.
package mobile

import (
	"strings"

	"github.com/branchdesk/customer-intake/pkg/apperror"
)

// Length is the number of digits in a canonical mobile number
const Length = 10

// Normalize strips every character that is not an ASCII digit from raw and
// returns the remaining digits when exactly Length of them are left.
// Country codes and leading zeros are not treated specially.
func Normalize(raw string) (string, error) {
	if raw == "" {
		return "", apperror.ErrInvalidMobile
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) != Length {
		return "", apperror.ErrInvalidMobile
	}
	return digits, nil
}

// IsCanonical reports whether s is already a stored-form mobile number
func IsCanonical(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
