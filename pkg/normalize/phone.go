package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/venuehq/venuemap/pkg/venues"
)

// countryCallingCode is prefixed onto bare local-format numbers.
const countryCallingCode = "65"

// localNumberLength is the digit count of a local subscriber number.
const localNumberLength = 8

var nonPhoneChars = regexp.MustCompile(`[^\d+]`)

// Phone normalizes a raw phone number to E.164-like form "+65 XXXX XXXX".
// Bare local-format numbers (8 digits starting 6, 8, or 9) get the country
// calling code prefixed. Numbers whose digit count falls outside valid
// bounds are rejected: the normalized value is empty and the field is
// flagged for review.
func Phone(raw string) (string, []string) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	digits := nonPhoneChars.ReplaceAllString(raw, "")
	digits = strings.TrimPrefix(digits, "+")

	switch {
	case len(digits) == localNumberLength+2 && strings.HasPrefix(digits, countryCallingCode):
		digits = digits[2:]
	case len(digits) == localNumberLength:
		// Bare local format, keep as is.
	default:
		return "", []string{venues.FieldPhone}
	}

	if digits[0] != '6' && digits[0] != '8' && digits[0] != '9' {
		return "", []string{venues.FieldPhone}
	}

	return fmt.Sprintf("+%s %s %s", countryCallingCode, digits[:4], digits[4:]), nil
}
