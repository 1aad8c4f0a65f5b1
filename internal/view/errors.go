package view

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUserNotFound is returned by actions when the membership identifier has no user.
var ErrUserNotFound = errors.New("no user with this membership identifier")

// FetchError wraps a record store failure with the operation that hit it.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

func fetchErr(op string, err error) error {
	return &FetchError{Op: op, Err: err}
}

type FieldProblem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists the draft fields that blocked a write.
type ValidationError struct {
	Problems []FieldProblem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Field, p.Message))
	}
	return "invalid transaction: " + strings.Join(parts, "; ")
}
