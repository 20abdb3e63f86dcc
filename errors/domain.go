package errors

import (
	"errors"
	"fmt"
)

// DomainError is a single field-level invariant violation. Every
// validation failure in this library (empty name, malformed phone) is a
// DomainError; nothing in the core catches or converts them.
type DomainError struct {
	Field  string
	Reason string
}

func (e DomainError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// DomainInvariant creates a field-level invariant error.
// Example: "phone: invalid_phone".
func DomainInvariant(field, reason string) DomainError {
	return DomainError{Field: field, Reason: reason}
}

// IsDomainError reports whether err is (or wraps) a DomainError.
func IsDomainError(err error) bool {
	var de DomainError
	return errors.As(err, &de)
}

// ConvertDomainToValidation adapts a DomainError into the unified
// validation ErrorResponse. Unknown errors map to Internal.
func ConvertDomainToValidation(err error) ErrorResponse {
	var de DomainError
	if errors.As(err, &de) {
		return ValidationFields(map[string]string{de.Field: de.Reason})
	}
	return Internal().WithReason("unexpected_domain_error")
}
