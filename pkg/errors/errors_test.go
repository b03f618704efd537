package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("buttons.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "buttons.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: buttons.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("buttons.hcl", 0, stdErrors.New("boom"))
	require.Equal(t, "parse error: buttons.hcl: boom", err.Error())
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("styles[1].extends", "references unknown style", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "styles[1].extends", validationErr.Field)
	require.Contains(t, validationErr.Message, "references unknown style")
}

func TestConfigErrorIncludesStyleAndField(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{
			name: "field only",
			err:  &ConfigError{Field: "compounds[0]", Message: "unknown variant \"huge\""},
			want: "config error: compounds[0]: unknown variant \"huge\"",
		},
		{
			name: "style and field",
			err:  &ConfigError{Style: "button", Field: "variants.base", Message: "reserved name"},
			want: "config error: button.variants.base: reserved name",
		},
		{
			name: "style only",
			err:  &ConfigError{Style: "button", Message: "broken"},
			want: "config error: button: broken",
		},
		{
			name: "message only",
			err:  &ConfigError{Message: "broken"},
			want: "config error: broken",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestNewConfigError(t *testing.T) {
	t.Parallel()

	err := NewConfigError("variants[0]", "variant name is empty")

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	require.Equal(t, "variants[0]", configErr.Field)
	require.Empty(t, configErr.Style)
}

func TestLookupErrorNamesStyle(t *testing.T) {
	t.Parallel()

	err := NewLookupError("buttons", "link")

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "link", lookupErr.Style)
	require.Contains(t, err.Error(), `"link"`)
	require.Contains(t, err.Error(), `"buttons"`)
	require.Equal(t, `style "link" not found`, NewLookupError("", "link").Error())
}
