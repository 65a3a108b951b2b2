package services

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an unknown menu entry id.
var ErrNotFound = errors.New("menu entry not found")

// NotUniqueError reports a dish title that is already taken.
type NotUniqueError struct {
	Title string
}

func (e *NotUniqueError) Error() string {
	return fmt.Sprintf("%s already exists. Title must be unique.", e.Title)
}

// InvalidReferenceError reports a category or weight name that matches no
// canonical row.
type InvalidReferenceError struct {
	Kind string
	Name string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("Invalid %s name: %s.", e.Kind, e.Name)
}
