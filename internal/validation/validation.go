// Package validation holds the pure input checks applied before any
// write reaches the catalog store. A submission is checked against every
// rule and all failures are reported together, so a client gets complete
// field-level feedback in one round trip.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Katrinaqr/menu-RestApi/internal/models"
)

// FieldError is one failed input rule.
type FieldError struct {
	Message string `json:"message"`
}

// minPasswordLength is the shortest accepted password.
const minPasswordLength = 6

// nonEmpty appends a failure when value is blank. The field name is used
// as the message subject ("Title must be a non-empty.").
func nonEmpty(errs []FieldError, field, value string) []FieldError {
	if strings.TrimSpace(value) == "" {
		return append(errs, FieldError{Message: fmt.Sprintf("%s must be a non-empty.", field)})
	}
	return errs
}

// numeric appends a failure when value is present but does not parse as
// a number. The empty string is accepted and means "no value".
func numeric(errs []FieldError, field, value string) []FieldError {
	if value == "" {
		return errs
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return append(errs, FieldError{Message: fmt.Sprintf("%s must be numeric.", field)})
	}
	return errs
}

// ValidateMenuInput checks a dish+entry submission. Title, category,
// weight and price must be non-empty; price must parse as a number and
// not be negative; nutrition values must be numeric when present.
// Uniqueness and reference checks belong to the store layer.
func ValidateMenuInput(in models.MenuInput) []FieldError {
	var errs []FieldError
	errs = nonEmpty(errs, "Title", in.Title)
	errs = nonEmpty(errs, "Category", in.Category)
	errs = nonEmpty(errs, "Weight", in.Weight)
	errs = nonEmpty(errs, "Price", in.Price)
	if in.Price != "" {
		price, err := strconv.ParseFloat(in.Price, 64)
		if err != nil {
			errs = append(errs, FieldError{Message: "Price must be numeric."})
		} else if price < 0 {
			errs = append(errs, FieldError{Message: "Price must not be negative."})
		}
	}
	errs = numeric(errs, "Calories", in.Calories)
	errs = numeric(errs, "Carbohydrates", in.Carbohydrates)
	errs = numeric(errs, "Fats", in.Fats)
	errs = numeric(errs, "Proteins", in.Proteins)
	return errs
}

// ValidateRegistration checks a new account submission. Uniqueness of
// name and email is checked against the store separately.
func ValidateRegistration(name, email, password string) []FieldError {
	var errs []FieldError
	errs = nonEmpty(errs, "Name", name)
	errs = nonEmpty(errs, "Email", email)
	if email != "" && (!strings.Contains(email, "@") || !strings.Contains(email, ".")) {
		errs = append(errs, FieldError{Message: "Email must contain characters: '@' and '.'"})
	}
	if len(password) < minPasswordLength {
		errs = append(errs, FieldError{Message: fmt.Sprintf("Password must be longer than %d characters.", minPasswordLength)})
	}
	return errs
}
