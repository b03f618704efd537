package config

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	classyerrors "github.com/alexisbeaulieu97/classy/pkg/errors"
)

type hclStylesheet struct {
	Version     string     `hcl:"version"`
	Name        string     `hcl:"name"`
	Description string     `hcl:"description,optional"`
	Styles      []hclStyle `hcl:"style,block"`
}

type hclStyle struct {
	Name      string        `hcl:"name,label"`
	Extends   string        `hcl:"extends,optional"`
	Base      cty.Value     `hcl:"base,optional"`
	Default   cty.Value     `hcl:"default,optional"`
	Before    cty.Value     `hcl:"before,optional"`
	After     cty.Value     `hcl:"after,optional"`
	Variants  cty.Value     `hcl:"variants,optional"`
	Compounds []hclCompound `hcl:"compound,block"`
}

type hclCompound struct {
	States  []string  `hcl:"states"`
	Classes cty.Value `hcl:"classes"`
}

// ParseHCL decodes and validates an HCL stylesheet. HCL objects carry no
// declaration order, so variants are ordered by name.
func ParseHCL(path string, data []byte) (*Stylesheet, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, classyerrors.NewParseError(path, diagnosticLine(diags), diags)
	}

	var doc hclStylesheet
	diags = gohcl.DecodeBody(file.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, classyerrors.NewParseError(path, diagnosticLine(diags), diags)
	}

	sheet := &Stylesheet{
		Version:     doc.Version,
		Name:        doc.Name,
		Description: doc.Description,
		Styles:      make([]Style, 0, len(doc.Styles)),
	}

	for _, raw := range doc.Styles {
		style := Style{
			Name:    raw.Name,
			Extends: raw.Extends,
			Base:    ctyToClassValue(raw.Base),
			Default: ctyToClassValue(raw.Default),
			Before:  ctyToClassValue(raw.Before),
			After:   ctyToClassValue(raw.After),
		}

		variants, err := ctyVariants(raw.Variants)
		if err != nil {
			return nil, classyerrors.NewParseError(path, 0, fmt.Errorf("style %q: %w", raw.Name, err))
		}
		style.Variants = variants

		for _, cmp := range raw.Compounds {
			style.Compounds = append(style.Compounds, Compound{
				States:  cmp.States,
				Classes: ctyToClassValue(cmp.Classes),
			})
		}

		sheet.Styles = append(sheet.Styles, style)
	}

	if err := ValidateStylesheet(sheet); err != nil {
		return nil, err
	}

	return sheet, nil
}

func ctyVariants(v cty.Value) ([]Variant, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("variants must be an object, got %s", ty.FriendlyName())
	}

	values := v.AsValueMap()
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	variants := make([]Variant, 0, len(names))
	for _, name := range names {
		variants = append(variants, Variant{Name: name, Classes: ctyToClassValue(values[name])})
	}
	return variants, nil
}

// ctyToClassValue converts an HCL value into the shapes the composer accepts.
// Numbers, objects and unknown values contribute nothing.
func ctyToClassValue(v cty.Value) any {
	if v.IsNull() || !v.IsKnown() {
		return nil
	}

	ty := v.Type()
	switch {
	case ty.Equals(cty.String):
		return v.AsString()
	case ty.Equals(cty.Bool):
		return v.True()
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			out = append(out, ctyToClassValue(elem))
		}
		return out
	default:
		return nil
	}
}

func diagnosticLine(diags hcl.Diagnostics) int {
	for _, diag := range diags {
		if diag.Subject != nil {
			return diag.Subject.Start.Line
		}
	}
	return 0
}
