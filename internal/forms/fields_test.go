package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantPhone   string
		wantMessage string
	}{
		{
			name:      "clean ten digit number",
			raw:       "9876543210",
			wantPhone: "9876543210",
		},
		{
			name:      "short number is kept as typed",
			raw:       "98765",
			wantPhone: "98765",
		},
		{
			name:        "eleventh digit is dropped",
			raw:         "98765432109",
			wantPhone:   "9876543210",
			wantMessage: "Phone number cannot exceed 10 digits.",
		},
		{
			name:        "letters never persist",
			raw:         "98a76b",
			wantPhone:   "9876",
			wantMessage: "Phone number may contain digits only.",
		},
		{
			name:        "separators are stripped",
			raw:         "987-654-3210",
			wantPhone:   "9876543210",
			wantMessage: "Phone number may contain digits only.",
		},
		{
			name:        "overflow message wins over invalid characters",
			raw:         "987-654-32109",
			wantPhone:   "9876543210",
			wantMessage: "Phone number cannot exceed 10 digits.",
		},
		{
			name:      "empty input",
			raw:       "",
			wantPhone: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, msg := NormalizePhone(tt.raw)
			assert.Equal(t, tt.wantPhone, phone)
			assert.Equal(t, tt.wantMessage, msg)
		})
	}
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantAge     int
		wantMessage string
	}{
		{name: "positive age", raw: "4", wantAge: 4},
		{name: "whitespace is trimmed", raw: " 12 ", wantAge: 12},
		{name: "empty is allowed", raw: "", wantAge: 0},
		{name: "zero is rejected", raw: "0", wantMessage: "Age cannot be 0 or a negative value."},
		{name: "negative is rejected", raw: "-3", wantMessage: "Age cannot be 0 or a negative value."},
		{name: "non-numeric is rejected", raw: "four", wantMessage: "Age cannot be 0 or a negative value."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, msg := ParseAge(tt.raw)
			assert.Equal(t, tt.wantAge, age)
			assert.Equal(t, tt.wantMessage, msg)
		})
	}
}

func TestRequireFields(t *testing.T) {
	t.Run("all present", func(t *testing.T) {
		assert.Nil(t, requireFields(map[string]string{"name": "Asha", "phone": "9876543210"}))
	})

	t.Run("missing and blank fields reported", func(t *testing.T) {
		missing := requireFields(map[string]string{"name": "", "phone": "   ", "description": "hurt leg"})
		assert.Len(t, missing, 2)
		assert.Contains(t, missing, "name")
		assert.Contains(t, missing, "phone")
	})
}
