package errors

import (
	"fmt"
)

// ParseError represents a stylesheet syntax failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures stylesheet schema and cross-reference issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError reports a composer configuration that cannot be built, such as a
// compound rule naming an undeclared variant. Style is empty for composers
// built outside a stylesheet.
type ConfigError struct {
	Style   string
	Field   string
	Message string
}

// NewConfigError constructs a ConfigError.
func NewConfigError(field, message string) error {
	return &ConfigError{Field: field, Message: message}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	location := e.Field
	if e.Style != "" {
		if location != "" {
			location = e.Style + "." + location
		} else {
			location = e.Style
		}
	}
	if location != "" {
		return fmt.Sprintf("config error: %s: %s", location, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// LookupError indicates a style that is not declared in a stylesheet.
type LookupError struct {
	Sheet string
	Style string
}

// NewLookupError constructs a LookupError for the given style name.
func NewLookupError(sheet, style string) error {
	return &LookupError{Sheet: sheet, Style: style}
}

func (e *LookupError) Error() string {
	if e == nil {
		return ""
	}
	if e.Sheet != "" {
		return fmt.Sprintf("style %q not found in stylesheet %q", e.Style, e.Sheet)
	}
	return fmt.Sprintf("style %q not found", e.Style)
}
