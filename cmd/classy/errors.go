package main

import (
	"errors"
	"fmt"
	"os"

	classyerrors "github.com/alexisbeaulieu97/classy/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	if e.suggestion == "" {
		return fmt.Sprintf("Failed to %s: %s\n\nError: %v", e.operation, e.context, e.cause)
	}
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

func suggestionFor(err error) string {
	var (
		parseErr      *classyerrors.ParseError
		validationErr *classyerrors.ValidationError
		configErr     *classyerrors.ConfigError
		lookupErr     *classyerrors.LookupError
	)

	switch {
	case errors.Is(err, os.ErrNotExist):
		return "Check that the stylesheet path is correct."
	case errors.As(err, &parseErr):
		return "Check the stylesheet syntax near the reported line."
	case errors.As(err, &validationErr):
		return "Fix the reported field and run 'classy validate' again."
	case errors.As(err, &configErr):
		return "Declare the variant or remove it from the compound rule, and avoid the reserved names base, default and compounds."
	case errors.As(err, &lookupErr):
		return "Run 'classy list <stylesheet>' to see the declared styles."
	default:
		return ""
	}
}
