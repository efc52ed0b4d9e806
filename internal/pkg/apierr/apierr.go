package apierr

import (
	"fmt"
	"net/http"
)

const (
	CodeNotFound   = "not_found"
	CodeValidation = "validation_failed"
	CodeStore      = "store_error"
)

// FieldError names a single failing request field, mirroring the
// {param, msg} pairs the payment endpoints return.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// Error is the error shape services hand to the HTTP layer. Status is
// the HTTP status the failure maps to; Fields is populated only for
// per-field validation failures.
type Error struct {
	Status int
	Code   string
	Fields []FieldError
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", e.Fields[0].Param, e.Fields[0].Msg)
	}
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// NotFound reports that a record or a referenced parent record does not
// exist.
func NotFound(resource string) *Error {
	return &Error{
		Status: http.StatusNotFound,
		Code:   CodeNotFound,
		Err:    fmt.Errorf("%s not found", resource),
	}
}

// Validation reports a missing or malformed field. The legacy contract
// surfaces these as 500 on the entity endpoints.
func Validation(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeValidation, Err: err}
}

// Unprocessable carries collected per-field failures for the payment
// endpoints (422 with an errors list).
func Unprocessable(fields []FieldError) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Code: CodeValidation, Fields: fields}
}

// Store wraps an underlying storage failure.
func Store(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeStore, Err: err}
}
