package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field problem found in one request.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Details))
	for i, d := range e.Details {
		parts[i] = d.Field + ": " + d.Message
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Details = append(e.Details, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (e *ValidationError) orNil() error {
	if len(e.Details) == 0 {
		return nil
	}
	return e
}

type Validatable interface {
	Validate() error
}

// Decode unmarshals body into v and validates it. Malformed JSON and type
// mismatches are reported as a ValidationError too.
func Decode(body []byte, v Validatable) error {
	if err := json.Unmarshal(body, v); err != nil {
		return decodeError(err)
	}
	return v.Validate()
}

func decodeError(err error) error {
	verr := &ValidationError{}
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		verr.add(field, "expected %s, got %s", typeErr.Type.String(), typeErr.Value)
	default:
		verr.add("body", "malformed JSON")
	}
	return verr
}

func checkLength(verr *ValidationError, field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0 && min > 0:
		verr.add(field, "is required")
	case n < min:
		verr.add(field, "must be at least %d characters", min)
	case n > max:
		verr.add(field, "must be at most %d characters", max)
	}
}

type enum interface {
	~string
	Valid() bool
}

func checkEnum[T enum](verr *ValidationError, field string, value T, allowed []T, optional bool) {
	if (value == "" && optional) || value.Valid() {
		return
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	verr.add(field, "must be one of %s", strings.Join(names, ", "))
}
