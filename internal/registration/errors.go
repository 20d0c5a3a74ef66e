package registration

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// ValidationError carries every failing field of a payload, keyed by field
// name with a human readable message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(err error) error {
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return fmt.Errorf("registration: validator misconfigured: %w", err)
	}

	fields := make(map[string]string)
	flatten("", err, fields)
	return &ValidationError{Fields: fields}
}
