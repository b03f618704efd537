// Package classes composes CSS class-name strings from declarative style definitions.
//
// # Overview
//
// A Composer holds base classes, default classes, an ordered set of named boolean
// variants, and compound rules that apply only when several variants are active at
// once. Compose turns a set of flags into a single space-separated class string:
//
//	button := classes.MustNew(
//		classes.WithBase("inline-flex items-center rounded-md"),
//		classes.WithDefault("h-10 px-4"),
//		classes.WithVariant("small", "h-9 px-3"),
//		classes.WithVariant("error", []string{"border-red-500", "text-red-600"}),
//		classes.WithCompound([]string{"small", "error"}, "ring-1"),
//	)
//
//	button.Compose(nil)                                   // "inline-flex items-center rounded-md h-10 px-4"
//	button.Compose(classes.Flags{"small": true})          // "inline-flex items-center rounded-md h-9 px-3"
//	button.Compose(classes.On("small", "error"))          // "... h-9 px-3 border-red-500 text-red-600 ring-1"
//
// # Class values
//
// Class values are opaque. A Value may be a string, a bool, nil, or a nested slice
// of values; Normalize flattens it and drops everything that is not a non-empty
// string. Nothing in this package parses or merges CSS.
//
// # Extension
//
// Extend derives a Composer from a parent, replacing same-named variants in place
// and appending new variants and compounds.
//
// A Composer is immutable and safe for concurrent use.
package classes
