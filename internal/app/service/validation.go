package service

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors collects validation failures keyed by the offending request
// field. The pipeline runs all checks in one pass and returns every
// violation together instead of failing on the first.
type FieldErrors map[string]string

func NewFieldErrors() FieldErrors {
	return make(FieldErrors)
}

// Add records a failure for a field. The first message wins; later checks
// on an already-failed field don't overwrite it.
func (e FieldErrors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

func (e FieldErrors) Addf(field, format string, args ...interface{}) {
	e.Add(field, fmt.Sprintf(format, args...))
}

func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}

// OrNil returns the collection as an error, or nil when empty.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsFieldErrors unwraps err into a FieldErrors map, or nil when the error
// is of a different kind.
func AsFieldErrors(err error) FieldErrors {
	if fieldErrs, ok := err.(FieldErrors); ok {
		return fieldErrs
	}
	return nil
}
