package mill

import (
	"errors"
	"strings"
)

// ErrInvalidInput matches both ValidationError and DomainError under errors.Is.
var ErrInvalidInput = errors.New("invalid mill parameters")

type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports parameters that are missing or not numeric.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	return "validation failed: " + joinIssues(e.Issues)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// DomainError reports numeric parameters outside the range the correlations accept.
type DomainError struct {
	Issues []FieldIssue
}

func (e *DomainError) Error() string {
	return "parameters out of domain: " + joinIssues(e.Issues)
}

func (e *DomainError) Is(target error) bool { return target == ErrInvalidInput }

// Issues extracts the field list from a validation or domain error.
func Issues(err error) []FieldIssue {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Issues
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Issues
	}
	return nil
}

func joinIssues(issues []FieldIssue) string {
	parts := make([]string, len(issues))
	for i, is := range issues {
		parts[i] = is.Field + ": " + is.Reason
	}
	return strings.Join(parts, "; ")
}
