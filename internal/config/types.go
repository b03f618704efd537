package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Stylesheet represents a full classy stylesheet document.
type Stylesheet struct {
	Version     string  `yaml:"version" validate:"required,semver"`
	Name        string  `yaml:"name" validate:"required,min=1,max=100"`
	Description string  `yaml:"description,omitempty"`
	Styles      []Style `yaml:"styles" validate:"required,min=1,dive"`
}

// Style declares one composer. Class values keep the shape they were written
// in (string, bool, null or nested sequence); a nil value means "not set" and
// lets an extended style inherit from its parent.
type Style struct {
	Name      string     `yaml:"name" validate:"required,style_name"`
	Extends   string     `yaml:"extends,omitempty" validate:"omitempty,style_name"`
	Base      any        `yaml:"base,omitempty"`
	Default   any        `yaml:"default,omitempty"`
	Before    any        `yaml:"before,omitempty"`
	After     any        `yaml:"after,omitempty"`
	Variants  []Variant  `yaml:"-" validate:"omitempty,dive"`
	Compounds []Compound `yaml:"compounds,omitempty" validate:"omitempty,dive"`
}

// Variant is a named class contribution in declaration order.
type Variant struct {
	Name    string `validate:"required,variant_name"`
	Classes any
}

// Compound applies Classes when every state is active.
type Compound struct {
	States  []string `yaml:"states" validate:"dive,required"`
	Classes any      `yaml:"classes"`
}

// UnmarshalYAML decodes a style while keeping the declaration order of its
// variants mapping.
func (s *Style) UnmarshalYAML(value *yaml.Node) error {
	type rawStyle struct {
		Name      string     `yaml:"name"`
		Extends   string     `yaml:"extends"`
		Base      any        `yaml:"base"`
		Default   any        `yaml:"default"`
		Before    any        `yaml:"before"`
		After     any        `yaml:"after"`
		Compounds []Compound `yaml:"compounds"`
	}

	var raw rawStyle
	if err := value.Decode(&raw); err != nil {
		return err
	}

	s.Name = raw.Name
	s.Extends = raw.Extends
	s.Base = raw.Base
	s.Default = raw.Default
	s.Before = raw.Before
	s.After = raw.After
	s.Compounds = raw.Compounds
	s.Variants = nil

	node := mappingValue(value, "variants")
	if node == nil || node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: variants of style %q must be a mapping", node.Line, raw.Name)
	}

	s.Variants = make([]Variant, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var classes any
		if err := node.Content[i+1].Decode(&classes); err != nil {
			return err
		}
		s.Variants = append(s.Variants, Variant{Name: node.Content[i].Value, Classes: classes})
	}

	return nil
}

// StyleMap builds a lookup table for styles by name.
func StyleMap(styles []Style) map[string]Style {
	out := make(map[string]Style, len(styles))
	for _, style := range styles {
		out[style.Name] = style
	}
	return out
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if strings.EqualFold(node.Content[i].Value, key) {
			return node.Content[i+1]
		}
	}
	return nil
}
