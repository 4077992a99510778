// Package web defines common components for a web application.
package web

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
//
// Warning is set when the change was applied but could not be persisted.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// Error wraps a given err into json frinedly struct.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// WithWarning returns Response carrying data and, for a persistence warning, its message.
func WithWarning(data any, err error) Response {
	res := Response{Data: data}

	if errors.Is(err, domain.ErrNotPersisted) {
		res.Warning = err.Error()
	}

	return res
}

// GetErrorMsg returns human readable suffix describing the failed validation rule.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "accounttype":
		return " is not supported"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be at most " + fe.Param()
	case "gt":
		return " must be greater than " + fe.Param()
	case "gte":
		return " must be greater than or equal to " + fe.Param()
	case "dive":
		return " has invalid items"
	}

	return " is invalid"
}

// BindErrorMsg returns message for an error produced while binding a request.
func BindErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + GetErrorMsg(field)
	}

	return "invalid request: " + err.Error()
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC3339 timestamp and returns it in UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}

	return t.UTC(), nil
}
