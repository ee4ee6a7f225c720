package usecase

import "unicode"

// ValidatePhone checks that a phone number carries at least 9 digits.
// Formatting characters (+, spaces, dashes) are ignored.
func ValidatePhone(phone string) bool {
	var digits int
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 9
}
