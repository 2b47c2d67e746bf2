package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryRuntime Category = "runtime"
	CategoryHooks   Category = "hooks"
	CategoryHost    Category = "host"
	CategoryConfig  Category = "config"
	CategoryCLI     Category = "cli"
)

// SodaError is a structured error with a registered code, an explanation
// and a suggestion.
type SodaError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (runtime, hooks, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *SodaError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *SodaError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *SodaError) WithSuggestion(s string) *SodaError {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *SodaError) WithExample(ex string) *SodaError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *SodaError) WithDetail(d string) *SodaError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *SodaError) Wrap(err error) *SodaError {
	e.Wrapped = err
	return e
}

// New creates a SodaError from a registered error code.
func New(code string) *SodaError {
	template, ok := registry[code]
	if !ok {
		return &SodaError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &SodaError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Errorf creates a SodaError from a registered code and appends the
// formatted text to the registered message.
func Errorf(code, format string, args ...any) *SodaError {
	e := New(code)
	e.Message = e.Message + ": " + fmt.Sprintf(format, args...)
	return e
}

// Newf creates a new SodaError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *SodaError {
	return &SodaError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a SodaError.
func FromError(err error, code string) *SodaError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*SodaError); ok {
		return se
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first SodaError in err's chain, or "".
func CodeOf(err error) string {
	for err != nil {
		if se, ok := err.(*SodaError); ok {
			return se.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
