package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	classyerrors "github.com/alexisbeaulieu97/classy/pkg/errors"
)

// convertValidationError normalizes validator errors into classy validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return classyerrors.NewValidationError(field, msg, err)
	}

	return classyerrors.NewValidationError("stylesheet", err.Error(), err)
}

// yamlishFieldName turns "Stylesheet.Styles[0].Name" into "styles[0].name".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForStyle(index int, field string) string {
	return fmt.Sprintf("styles[%d].%s", index, field)
}
