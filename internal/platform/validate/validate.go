// Copyright (c) 2026 Fittessness. All rights reserved.

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// Every rule failure is accumulated, so a response reports all failing rules
// together instead of just the first. No store access happens while any
// validation error is pending — handlers must call [Validator.Err] before
// touching a service.
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fittessness/fittessness/internal/platform/apperr"
)

var (
	// alnumRegex matches strings made of ASCII letters and digits only.
	alnumRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	// Password character-class rules. The special set matches the one the
	// registration form has always enforced.
	passwordLowerRegex   = regexp.MustCompile(`[a-z]`)
	passwordUpperRegex   = regexp.MustCompile(`[A-Z]`)
	passwordDigitRegex   = regexp.MustCompile(`[0-9]`)
	passwordSpecialRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// LenBetween fails if the Unicode character count is outside [min, max].
func (v *Validator) LenBetween(field, value string, min, max int) *Validator {
	length := utf8.RuneCountInString(value)
	if length < min || length > max {
		v.add(field, fmt.Sprintf("Must be %d-%d characters", min, max))
	}
	return v
}

// Alnum fails if the value contains anything besides letters and digits.
func (v *Validator) Alnum(field, value string) *Validator {
	if !alnumRegex.MatchString(value) {
		v.add(field, "Must contain only letters and numbers")
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 email address.
func (v *Validator) Email(field, value string) *Validator {
	if _, err := mail.ParseAddress(value); err != nil {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// Password enforces the account password policy: at least 8 characters with
// one lowercase letter, one uppercase letter, one digit, and one special
// character.
//
// Each missing property is reported as its own failure so the user can fix
// everything in one pass.
func (v *Validator) Password(field, value string) *Validator {
	if utf8.RuneCountInString(value) < 8 {
		v.add(field, "Must be at least 8 characters")
	}
	if !passwordLowerRegex.MatchString(value) {
		v.add(field, "Must contain at least one lowercase letter")
	}
	if !passwordUpperRegex.MatchString(value) {
		v.add(field, "Must contain at least one uppercase letter")
	}
	if !passwordDigitRegex.MatchString(value) {
		v.add(field, "Must contain at least one number")
	}
	if !passwordSpecialRegex.MatchString(value) {
		v.add(field, "Must contain at least one special character")
	}
	return v
}

// Date fails if the value is not an ISO date (YYYY-MM-DD).
func (v *Validator) Date(field, value string) *Validator {
	if !dateRegex.MatchString(value) {
		v.add(field, "Must be a valid date (YYYY-MM-DD)")
	}
	return v
}

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IntMin fails if the value is below min.
func (v *Validator) IntMin(field string, value, min int) *Validator {
	if value < min {
		v.add(field, fmt.Sprintf("Must be at least %d", min))
	}
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("duration", duration < 1, "Must be a positive number")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
