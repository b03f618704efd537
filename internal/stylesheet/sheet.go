package stylesheet

import (
	"errors"

	"github.com/alexisbeaulieu97/classy/internal/config"
	"github.com/alexisbeaulieu97/classy/pkg/classes"
	classyerrors "github.com/alexisbeaulieu97/classy/pkg/errors"
)

// Sheet is a set of named composers built from one stylesheet document. It is
// read-only after Build and safe for concurrent use.
type Sheet struct {
	name        string
	description string
	order       []string
	styles      map[string]*classes.Composer
	info        map[string]StyleInfo
}

// StyleInfo describes a resolved style for listings.
type StyleInfo struct {
	Name      string   `json:"name"`
	Extends   string   `json:"extends,omitempty"`
	Variants  []string `json:"variants"`
	Compounds int      `json:"compounds"`
}

// Build resolves extends chains and builds a composer for every style in doc.
// doc is expected to have passed config.ValidateStylesheet.
func Build(doc *config.Stylesheet) (*Sheet, error) {
	if doc == nil {
		return nil, classyerrors.NewValidationError("stylesheet", "stylesheet is nil", nil)
	}

	s := &Sheet{
		name:        doc.Name,
		description: doc.Description,
		order:       make([]string, 0, len(doc.Styles)),
		styles:      make(map[string]*classes.Composer, len(doc.Styles)),
		info:        make(map[string]StyleInfo, len(doc.Styles)),
	}

	declared := config.StyleMap(doc.Styles)
	for _, style := range doc.Styles {
		if _, err := s.resolve(style, declared, nil); err != nil {
			return nil, err
		}
		s.order = append(s.order, style.Name)
	}

	return s, nil
}

func (s *Sheet) resolve(style config.Style, declared map[string]config.Style, chain []string) (*classes.Composer, error) {
	if c, ok := s.styles[style.Name]; ok {
		return c, nil
	}
	for _, seen := range chain {
		if seen == style.Name {
			return nil, classyerrors.NewValidationError("styles", "extends cycle detected at "+style.Name, nil)
		}
	}

	var parent classes.Config
	if style.Extends != "" {
		parentStyle, ok := declared[style.Extends]
		if !ok {
			return nil, classyerrors.NewLookupError(s.name, style.Extends)
		}
		pc, err := s.resolve(parentStyle, declared, append(chain, style.Name))
		if err != nil {
			return nil, err
		}
		parent = pc.Config()
	}

	c, err := classes.Merge(parent, toClassesConfig(style)).Build()
	if err != nil {
		var configErr *classyerrors.ConfigError
		if errors.As(err, &configErr) {
			configErr.Style = style.Name
		}
		return nil, err
	}

	s.styles[style.Name] = c
	s.info[style.Name] = StyleInfo{
		Name:      style.Name,
		Extends:   style.Extends,
		Variants:  c.Variants(),
		Compounds: len(c.Config().Compounds),
	}
	return c, nil
}

func toClassesConfig(style config.Style) classes.Config {
	cfg := classes.Config{
		Base:      style.Base,
		Default:   style.Default,
		Before:    style.Before,
		After:     style.After,
		Variants:  make([]classes.Variant, 0, len(style.Variants)),
		Compounds: make([]classes.Compound, 0, len(style.Compounds)),
	}
	for _, v := range style.Variants {
		cfg.Variants = append(cfg.Variants, classes.Variant{Name: v.Name, Classes: v.Classes})
	}
	for _, cmp := range style.Compounds {
		cfg.Compounds = append(cfg.Compounds, classes.Compound{States: cmp.States, Classes: cmp.Classes})
	}
	return cfg
}

// Name returns the stylesheet name.
func (s *Sheet) Name() string { return s.name }

// Description returns the stylesheet description.
func (s *Sheet) Description() string { return s.description }

// Styles returns the style names in declaration order.
func (s *Sheet) Styles() []string {
	return append([]string(nil), s.order...)
}

// Lookup returns the composer for a style.
func (s *Sheet) Lookup(name string) (*classes.Composer, error) {
	c, ok := s.styles[name]
	if !ok {
		return nil, classyerrors.NewLookupError(s.name, name)
	}
	return c, nil
}

// Compose looks up a style and composes it against flags.
func (s *Sheet) Compose(name string, flags classes.Flags) (string, error) {
	c, err := s.Lookup(name)
	if err != nil {
		return "", err
	}
	return c.Compose(flags), nil
}

// Describe returns listing information for a style.
func (s *Sheet) Describe(name string) (StyleInfo, error) {
	info, ok := s.info[name]
	if !ok {
		return StyleInfo{}, classyerrors.NewLookupError(s.name, name)
	}
	info.Variants = append([]string(nil), info.Variants...)
	return info, nil
}

// DescribeAll returns listing information for every style in declaration order.
func (s *Sheet) DescribeAll() []StyleInfo {
	out := make([]StyleInfo, 0, len(s.order))
	for _, name := range s.order {
		info, _ := s.Describe(name)
		out = append(out, info)
	}
	return out
}
