package errors

import "google.golang.org/grpc/codes"

// Factory presets (immutable).
func InvalidArgument() ErrorResponse {
	return New("Invalid argument", codes.InvalidArgument, nil).WithReason("invalid_argument")
}

func NotFound() ErrorResponse {
	return New("Resource not found", codes.NotFound, nil).WithReason("not_found")
}

func Internal() ErrorResponse {
	return New("Internal error", codes.Internal, nil).WithReason("internal")
}

// ValidationFields builds the standard validation failure from a flat
// field->reason map.
func ValidationFields(fields map[string]string) ErrorResponse {
	return InvalidArgument().
		WithReason("validation_failed").
		WithDetails(fields).
		WithViolations(ViolationsFromMap(fields))
}

// NotFoundWith attaches the missing resource key and the looked-up value.
// Example: NotFoundWith("contact", "Jane").
func NotFoundWith(resourceKey, value string) ErrorResponse {
	return NotFound().WithDetail(resourceKey, value)
}
