package config

import (
	"fmt"
	"strings"

	classyerrors "github.com/alexisbeaulieu97/classy/pkg/errors"
)

// ValidateStylesheet performs schema and cross-style validation on a stylesheet.
// Variant-level rules that need the resolved extends chain, such as compounds
// naming unknown variants, are enforced when composers are built.
func ValidateStylesheet(sheet *Stylesheet) error {
	if sheet == nil {
		return classyerrors.NewValidationError("stylesheet", "stylesheet is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(sheet); err != nil {
		return convertValidationError(err)
	}

	styleIndex := make(map[string]int, len(sheet.Styles))
	for i, style := range sheet.Styles {
		if _, exists := styleIndex[style.Name]; exists {
			return classyerrors.NewValidationError(fieldForStyle(i, "name"), fmt.Sprintf("duplicate style name %q", style.Name), nil)
		}
		styleIndex[style.Name] = i
	}

	for i, style := range sheet.Styles {
		if style.Extends == "" {
			continue
		}
		if _, ok := styleIndex[style.Extends]; !ok {
			return classyerrors.NewValidationError(fieldForStyle(i, "extends"), fmt.Sprintf("references unknown style %q", style.Extends), nil)
		}
	}

	if cycle := detectExtendsCycle(sheet.Styles); len(cycle) > 0 {
		return classyerrors.NewValidationError("styles", fmt.Sprintf("extends cycle detected: %s", strings.Join(cycle, " -> ")), nil)
	}

	return nil
}
