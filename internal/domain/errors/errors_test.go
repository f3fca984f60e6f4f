package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"missing field", ErrMissingField},
		{"invalid status", ErrInvalidStatus},
		{"invalid input", ErrInvalidInput},
		{"invalid transition", ErrInvalidTransition},
		{"invalid credentials", ErrInvalidCredentials},
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("%w: detail", tc.err)
			if !stdErrors.Is(wrapped, tc.err) {
				t.Fatalf("expected wrapped error to match sentinel: %v", tc.err)
			}
		})
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	all := []error{ErrMissingField, ErrInvalidStatus, ErrInvalidInput, ErrInvalidTransition, ErrInvalidCredentials, ErrAlreadyExists, ErrNotFound}
	for i, a := range all {
		for j, b := range all {
			if i != j && stdErrors.Is(a, b) {
				t.Fatalf("%v unexpectedly matches %v", a, b)
			}
		}
	}
}
