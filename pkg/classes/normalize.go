package classes

import "strings"

// Value is a class value: a string, a bool, nil, or a nested []any / []string.
// Values of any other type contribute nothing.
type Value = any

// Normalize flattens v into a single space-separated string. Strings are trimmed,
// falsy entries are dropped and order is preserved. Repeated tokens are kept.
func Normalize(v Value) string {
	var b strings.Builder
	appendValue(&b, v)
	return b.String()
}

// Join normalizes each value and joins the non-empty results with single spaces.
func Join(values ...Value) string {
	var b strings.Builder
	for _, v := range values {
		appendValue(&b, v)
	}
	return b.String()
}

func appendValue(b *strings.Builder, v Value) {
	switch value := v.(type) {
	case string:
		appendToken(b, strings.TrimSpace(value))
	case []any:
		for _, item := range value {
			appendValue(b, item)
		}
	case []string:
		for _, item := range value {
			appendToken(b, strings.TrimSpace(item))
		}
	}
}

func appendToken(b *strings.Builder, token string) {
	if token == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(token)
}
