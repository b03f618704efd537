package classes

// Extend derives a new Composer from parent. Base, default and wrapper classes
// set by opts replace the parent's. A variant whose name matches a parent
// variant replaces it at the parent's position; other variants are appended.
// Compounds accumulate, parent rules first. The merged configuration is
// validated like any other.
func Extend(parent *Composer, opts ...Option) (*Composer, error) {
	var child Config
	for _, opt := range opts {
		opt(&child)
	}
	return Merge(parent.Config(), child).Build()
}

// Merge combines a parent and child configuration using the rules of Extend.
// Neither input is modified.
func Merge(parent, child Config) Config {
	merged := Config{
		Base:      pick(child.Base, parent.Base),
		Default:   pick(child.Default, parent.Default),
		Before:    pick(child.Before, parent.Before),
		After:     pick(child.After, parent.After),
		Variants:  make([]Variant, 0, len(parent.Variants)+len(child.Variants)),
		Compounds: make([]Compound, 0, len(parent.Compounds)+len(child.Compounds)),
	}

	positions := make(map[string]int, len(parent.Variants)+len(child.Variants))
	for _, v := range append(append([]Variant(nil), parent.Variants...), child.Variants...) {
		if i, ok := positions[v.Name]; ok {
			merged.Variants[i].Classes = v.Classes
			continue
		}
		positions[v.Name] = len(merged.Variants)
		merged.Variants = append(merged.Variants, v)
	}

	merged.Compounds = append(merged.Compounds, parent.Compounds...)
	merged.Compounds = append(merged.Compounds, child.Compounds...)

	return merged
}

func pick(override, inherited Value) Value {
	if override != nil {
		return override
	}
	return inherited
}
