package cfgerrors

import (
	"strings"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

const (
	ValidationError  = "CONFIG_VALIDATION_FAILED"
	DecodeError      = "CONFIG_DECODE_FAILED"
	LinkError        = "LINK_RESOLUTION_FAILED"
	UnsupportedError = "UNSUPPORTED_DIRECTIVE"
	UndefinedError   = "UNDEFINED_ERROR"
)

type Location struct {
	Line   int `json:"line,omitempty"`
	Column int `json:"column,omitempty"`
}

// Error represents a single configuration error with a machine-readable code.
type Error struct {
	Code      string     `json:"code"`
	Message   string     `json:"message"`
	Source    string     `json:"source,omitempty"`
	Locations []Location `json:"locations,omitempty"`
}

func (e *Error) Error() string {
	if e.Source != "" {
		return e.Source + ": " + e.Message
	}
	return e.Message
}

// NewError returns a config error with the given code and message
func NewError(code string, err error) *Error {
	return &Error{
		Code:    code,
		Message: err.Error(),
	}
}

// WithSource annotates the error with the document it originated from.
func (e *Error) WithSource(source string) *Error {
	e.Source = source
	return e
}

// ErrorList represents a list of errors
type ErrorList []*Error

// ExtendErrorList adds provided err as *Error
func ExtendErrorList(errs ErrorList, err error) ErrorList {
	return append(errs, FormatError(err)...)
}

// Error returns a string representation of each error
func (list ErrorList) Error() string {
	acc := make([]string, len(list))

	for i, err := range list {
		acc[i] = err.Error()
	}

	return strings.Join(acc, ". ")
}

// AsError returns nil for an empty list so callers can return it directly.
func (list ErrorList) AsError() error {
	if len(list) == 0 {
		return nil
	}
	return list
}

func FormatError(err error) ErrorList {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case ErrorList:
		var list ErrorList
		for _, innerErr := range e {
			list = append(list, FormatError(innerErr)...)
		}
		return list
	case *Error:
		return ErrorList{e}
	case *gqlerror.Error:
		var locations []Location
		for _, loc := range e.Locations {
			locations = append(locations, Location(loc))
		}
		return ErrorList{&Error{
			Code:      DecodeError,
			Message:   e.Message,
			Locations: locations,
		}}
	case gqlerror.List:
		var list ErrorList
		for _, innerErr := range e {
			list = append(list, FormatError(innerErr)...)
		}
		return list
	default:
		return ErrorList{NewError(UndefinedError, err)}
	}
}
