package classes

import (
	"fmt"
	"strconv"
	"strings"

	classyerrors "github.com/alexisbeaulieu97/classy/pkg/errors"
)

// Reserved keys cannot be used as variant names. A Flags entry for KeyBase set to
// false drops the base classes from the output.
const (
	KeyBase      = "base"
	KeyDefault   = "default"
	KeyCompounds = "compounds"
)

var reservedKeys = map[string]struct{}{KeyBase: {}, KeyDefault: {}, KeyCompounds: {}}

// IsReserved reports whether name is one of the reserved configuration keys.
func IsReserved(name string) bool {
	_, ok := reservedKeys[name]
	return ok
}

// Flags maps variant names to their state for a single Compose call. Keys that
// do not name a declared variant are ignored.
type Flags map[string]bool

// On returns Flags with every given name set to true.
func On(names ...string) Flags {
	flags := make(Flags, len(names))
	for _, name := range names {
		flags[name] = true
	}
	return flags
}

// Variant is a named class contribution applied when its flag is true.
type Variant struct {
	Name    string
	Classes Value
}

// Compound applies Classes only when every variant in States is active.
type Compound struct {
	States  []string
	Classes Value
}

// Config is the declarative description of a Composer. Before and After are
// optional wrapper classes emitted after the base classes and at the very end.
type Config struct {
	Base      Value
	Default   Value
	Before    Value
	After     Value
	Variants  []Variant
	Compounds []Compound
}

// Build validates the configuration and returns an immutable Composer.
func (cfg Config) Build() (*Composer, error) {
	c := &Composer{
		base:      Normalize(cfg.Base),
		def:       Normalize(cfg.Default),
		before:    Normalize(cfg.Before),
		after:     Normalize(cfg.After),
		variants:  make([]variantEntry, 0, len(cfg.Variants)),
		index:     make(map[string]int, len(cfg.Variants)),
		compounds: make([]compoundEntry, 0, len(cfg.Compounds)),
	}

	for i, v := range cfg.Variants {
		name := strings.TrimSpace(v.Name)
		switch {
		case name == "":
			return nil, classyerrors.NewConfigError(fmt.Sprintf("variants[%d]", i), "variant name is empty")
		case IsReserved(name):
			return nil, classyerrors.NewConfigError("variants."+name, fmt.Sprintf("%q is a reserved key", name))
		}
		if _, exists := c.index[name]; exists {
			return nil, classyerrors.NewConfigError("variants."+name, fmt.Sprintf("duplicate variant %q", name))
		}
		c.index[name] = len(c.variants)
		c.variants = append(c.variants, variantEntry{name: name, classes: Normalize(v.Classes)})
	}

	for i, cmp := range cfg.Compounds {
		states := make([]string, 0, len(cmp.States))
		for _, state := range cmp.States {
			state = strings.TrimSpace(state)
			if _, ok := c.index[state]; !ok {
				return nil, classyerrors.NewConfigError(fmt.Sprintf("compounds[%d].states", i), fmt.Sprintf("unknown variant %q", state))
			}
			states = append(states, state)
		}
		c.compounds = append(c.compounds, compoundEntry{states: states, classes: Normalize(cmp.Classes)})
	}

	return c, nil
}

// Option configures a Composer built with New or Extend.
type Option func(*Config)

// WithBase sets the classes that are always applied.
func WithBase(v Value) Option {
	return func(cfg *Config) { cfg.Base = v }
}

// WithDefault sets the classes applied when no flags are supplied.
func WithDefault(v Value) Option {
	return func(cfg *Config) { cfg.Default = v }
}

// WithBefore sets wrapper classes emitted right after the base classes.
func WithBefore(v Value) Option {
	return func(cfg *Config) { cfg.Before = v }
}

// WithAfter sets wrapper classes emitted last.
func WithAfter(v Value) Option {
	return func(cfg *Config) { cfg.After = v }
}

// WithVariant declares a variant. Declaration order is output order.
func WithVariant(name string, v Value) Option {
	return func(cfg *Config) {
		cfg.Variants = append(cfg.Variants, Variant{Name: name, Classes: v})
	}
}

// WithCompound declares a compound rule over previously or later declared variants.
func WithCompound(states []string, v Value) Option {
	return func(cfg *Config) {
		cfg.Compounds = append(cfg.Compounds, Compound{States: append([]string(nil), states...), Classes: v})
	}
}

// New builds a Composer from options.
func New(opts ...Option) (*Composer, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.Build()
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(opts ...Option) *Composer {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Compose validates cfg and composes it against flags in one call.
func Compose(cfg Config, flags Flags) (string, error) {
	c, err := cfg.Build()
	if err != nil {
		return "", err
	}
	return c.Compose(flags), nil
}

type variantEntry struct {
	name    string
	classes string
}

type compoundEntry struct {
	states  []string
	classes string
}

func (c compoundEntry) active(flags Flags) bool {
	for _, state := range c.states {
		if !flags[state] {
			return false
		}
	}
	return true
}

// Composer produces class strings from flags. All class values are normalized
// once at construction.
type Composer struct {
	base      string
	def       string
	before    string
	after     string
	variants  []variantEntry
	index     map[string]int
	compounds []compoundEntry
}

// Compose returns the class string for flags. Base classes come first, then the
// before wrapper, the active variants in declaration order (or the default
// classes when flags is empty), the active compounds and the after wrapper.
//
// Setting flags["base"] to false omits the base classes. This opt-out is an
// optional escape hatch; it still counts as a supplied flag and so suppresses
// the default classes.
func (c *Composer) Compose(flags Flags) string {
	if c == nil {
		return ""
	}

	acc := newAccumulator(len(c.variants) + len(c.compounds) + 4)

	if enabled, ok := flags[KeyBase]; !ok || enabled {
		acc.set(entryKey{kind: entryBase}, c.base)
	}
	acc.set(entryKey{kind: entryBefore}, c.before)

	if len(flags) > 0 {
		for _, v := range c.variants {
			if flags[v.name] {
				acc.set(entryKey{kind: entryVariant, name: v.name}, v.classes)
			}
		}
	} else {
		acc.set(entryKey{kind: entryDefault}, c.def)
	}

	for i, cmp := range c.compounds {
		if cmp.active(flags) {
			acc.set(entryKey{kind: entryCompound, name: strconv.Itoa(i)}, cmp.classes)
		}
	}

	acc.set(entryKey{kind: entryAfter}, c.after)

	return acc.join()
}

// Wrap returns a copy of c with the given before and after wrapper classes.
func (c *Composer) Wrap(before, after Value) *Composer {
	if c == nil {
		return nil
	}
	wrapped := *c
	wrapped.before = Normalize(before)
	wrapped.after = Normalize(after)
	return &wrapped
}

// Variants returns the declared variant names in declaration order.
func (c *Composer) Variants() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.variants))
	for i, v := range c.variants {
		names[i] = v.name
	}
	return names
}

// HasVariant reports whether name is a declared variant.
func (c *Composer) HasVariant(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[name]
	return ok
}

// Config returns a normalized snapshot of the configuration c was built from.
func (c *Composer) Config() Config {
	if c == nil {
		return Config{}
	}
	cfg := Config{
		Base:      c.base,
		Default:   c.def,
		Before:    c.before,
		After:     c.after,
		Variants:  make([]Variant, len(c.variants)),
		Compounds: make([]Compound, len(c.compounds)),
	}
	for i, v := range c.variants {
		cfg.Variants[i] = Variant{Name: v.name, Classes: v.classes}
	}
	for i, cmp := range c.compounds {
		cfg.Compounds[i] = Compound{States: append([]string(nil), cmp.states...), Classes: cmp.classes}
	}
	return cfg
}

type entryKind int

const (
	entryBase entryKind = iota
	entryBefore
	entryVariant
	entryDefault
	entryCompound
	entryAfter
)

type entryKey struct {
	kind entryKind
	name string
}

// accumulator keeps the first insertion position of a key while letting later
// writes replace its value.
type accumulator struct {
	keys   []entryKey
	values map[entryKey]string
}

func newAccumulator(size int) *accumulator {
	return &accumulator{
		keys:   make([]entryKey, 0, size),
		values: make(map[entryKey]string, size),
	}
}

func (a *accumulator) set(key entryKey, value string) {
	if _, exists := a.values[key]; !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

func (a *accumulator) join() string {
	var b strings.Builder
	for _, key := range a.keys {
		appendToken(&b, a.values[key])
	}
	return b.String()
}
