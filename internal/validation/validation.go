// Package validation checks inbound customer identity fields before they
// reach the transaction layer.
package validation

import (
	"regexp"
	"strings"
	"time"
)

// FieldError names the offending field together with a user-facing reason.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// phonePattern is an E.164-like pattern: optional leading +, first digit
// 1-9, up to 14 more digits.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

func Name(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return FieldError{Field: field, Message: "must not be empty"}
	}

	return nil
}

// NIK validates a 16-digit national identity number. Digits 1-6 are the
// regional code, digits 7-12 encode the date of birth as DDMMYY, and
// digits 13-16 are a serial. A day greater than 40 denotes a female
// subject and has 40 subtracted before the calendar check.
func NIK(field, nik string) error {
	if len(nik) != 16 {
		return FieldError{Field: field, Message: "must be exactly 16 digits long"}
	}
	if !digitsOnly(nik) {
		return FieldError{Field: field, Message: "must contain only digits"}
	}

	day := int(nik[6]-'0')*10 + int(nik[7]-'0')
	month := int(nik[8]-'0')*10 + int(nik[9]-'0')
	year := 2000 + int(nik[10]-'0')*10 + int(nik[11]-'0')

	if day > 40 {
		day -= 40
	}

	if month < 1 || month > 12 {
		return FieldError{Field: field, Message: "invalid month in date of birth"}
	}
	if day < 1 || day > 31 {
		return FieldError{Field: field, Message: "invalid day in date of birth"}
	}

	// time.Date normalizes overflow (e.g. Feb 30 becomes Mar 2), so an
	// unchanged result means the date exists.
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return FieldError{Field: field, Message: "invalid date of birth"}
	}

	return nil
}

// Phone accepts an empty value (the field is optional) or an E.164-like
// phone number.
func Phone(field, phone string) error {
	if strings.TrimSpace(phone) == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return FieldError{Field: field, Message: "invalid phone number format"}
	}

	return nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
