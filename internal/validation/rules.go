// Package validation holds input validation rules applied at the HTTP boundary.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const maxFieldLength = 255

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail validates basic email shape. Matching elsewhere in the
// system is exact string equality, so no normalization happens here.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	if len(email) > maxFieldLength {
		return fmt.Errorf("email must be at most %d characters", maxFieldLength)
	}
	return nil
}

// ValidateGroupName validates an HOA group name.
func ValidateGroupName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be blank")
	}
	if len(name) > maxFieldLength {
		return fmt.Errorf("name must be at most %d characters", maxFieldLength)
	}
	return nil
}

// ValidateAddress validates a house address.
func ValidateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("address cannot be blank")
	}
	if len(address) > maxFieldLength {
		return fmt.Errorf("address must be at most %d characters", maxFieldLength)
	}
	return nil
}
