// internal/forms/fields.go

// Package forms implements the create/edit form controllers: client-side
// field validation, photo staging with a hard cap, schema validation of the
// assembled JSON part, and the submission state machine
// (closed -> open -> submitting -> closed, or back to open with the entered
// data intact on a retryable failure).
package forms

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxPhoneDigits is the hard cap on phone number length.
const MaxPhoneDigits = 10

// NormalizePhone applies the live per-keystroke phone rule: non-digit
// characters never persist and input past the cap is dropped, leaving the
// first MaxPhoneDigits valid digits captured. The returned message is empty
// when the raw input was already clean.
func NormalizePhone(raw string) (string, string) {
	var b strings.Builder
	overflow := false
	invalid := false
	for _, r := range raw {
		if r < '0' || r > '9' {
			invalid = true
			continue
		}
		if b.Len() >= MaxPhoneDigits {
			overflow = true
			continue
		}
		b.WriteRune(r)
	}
	switch {
	case overflow:
		return b.String(), fmt.Sprintf("Phone number cannot exceed %d digits.", MaxPhoneDigits)
	case invalid:
		return b.String(), "Phone number may contain digits only."
	default:
		return b.String(), ""
	}
}

// ParseAge validates a numeric age field: it must parse and be positive.
func ParseAge(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ""
	}
	age, err := strconv.Atoi(raw)
	if err != nil || age <= 0 {
		return 0, "Age cannot be 0 or a negative value."
	}
	return age, ""
}

// requireFields returns a field->message map for every empty required field.
func requireFields(fields map[string]string) map[string]string {
	missing := map[string]string{}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing[name] = fmt.Sprintf("%s is required", name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return missing
}
