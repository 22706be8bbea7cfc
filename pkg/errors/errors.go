// Package errors is wort's coded error type. Every failure a brewer can
// cause (a misspelt catalog key, a mash ratio the kettle cannot hold, a
// malformed recipe line) carries a stable Code plus details such as
// "valid_keys", "suggestions", "path" or "line" that the CLI prints
// under the message.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of failure. Codes are stable and tests
// match on them rather than on messages.
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrNotFound is a parameter set missing from the config file.
	ErrNotFound ErrorCode = "NOT_FOUND"

	// ErrUnknownIngredient is a catalog miss; details carry valid_keys
	// and, when something is close, suggestions.
	ErrUnknownIngredient ErrorCode = "UNKNOWN_INGREDIENT"
	// ErrInvalidIngredient is a field out of range or missing, with the
	// offending field in details.
	ErrInvalidIngredient ErrorCode = "INVALID_INGREDIENT"
	ErrInvalidTiming     ErrorCode = "INVALID_TIMING"
	ErrIndexOutOfRange   ErrorCode = "INDEX_OUT_OF_RANGE"

	// ErrNegativeSparge means the mash water alone overfills the kettle.
	ErrNegativeSparge ErrorCode = "NEGATIVE_SPARGE"
	// ErrNoCulture is a fermentation with neither a culture nor an
	// attenuation parameter.
	ErrNoCulture        ErrorCode = "NO_CULTURE"
	ErrParameterInvalid ErrorCode = "PARAMETER_INVALID"

	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// ErrRecipeParse carries the document line when it is known.
	ErrRecipeParse ErrorCode = "RECIPE_PARSE"
	ErrRecipeWrite ErrorCode = "RECIPE_WRITE"

	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrRender     ErrorCode = "RENDER"
)

// WortError is a failure with a code, a message for the brewer, details
// for the report and the underlying cause, if any.
type WortError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *WortError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *WortError) Unwrap() error {
	return e.Wrapped
}

// Is matches any WortError with the same code, so
// errors.Is(err, errors.New(ErrNoCulture, "")) tests the class.
func (e *WortError) Is(target error) bool {
	var targetErr *WortError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

func newError(code ErrorCode, message string, wrapped error) *WortError {
	return &WortError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

// New creates an error of class code.
func New(code ErrorCode, message string) *WortError {
	return newError(code, message, nil)
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *WortError {
	return newError(code, fmt.Sprintf(format, args...), nil)
}

// Wrap classifies err, typically an IO or decoding failure from a
// library. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *WortError {
	if err == nil {
		return nil
	}
	return newError(code, message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WortError {
	if err == nil {
		return nil
	}
	return newError(code, fmt.Sprintf(format, args...), err)
}

// WithDetail sets one detail and returns e for chaining.
func (e *WortError) WithDetail(key string, value interface{}) *WortError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails merges details into e.
func (e *WortError) WithDetails(details map[string]interface{}) *WortError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode reports whether err, or anything it wraps, is a WortError
// of class code.
func IsErrorCode(err error, code ErrorCode) bool {
	we := asWort(err)
	return we != nil && we.Code == code
}

// GetErrorCode is the code of the outermost WortError in err's chain,
// ErrUnknown for foreign errors.
func GetErrorCode(err error) ErrorCode {
	if we := asWort(err); we != nil {
		return we.Code
	}
	return ErrUnknown
}

// GetErrorDetails is the details of the outermost WortError, nil for
// foreign errors.
func GetErrorDetails(err error) map[string]interface{} {
	if we := asWort(err); we != nil {
		return we.Details
	}
	return nil
}

func asWort(err error) *WortError {
	var we *WortError
	if errors.As(err, &we) {
		return we
	}
	return nil
}
