package stylesheet

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/classy/internal/config"
	"github.com/alexisbeaulieu97/classy/internal/logger"
	"github.com/alexisbeaulieu97/classy/pkg/classes"
	classyerrors "github.com/alexisbeaulieu97/classy/pkg/errors"
)

const formsYAML = `version: "1.0"
name: "forms"
styles:
  - name: field
    base: "rounded border"
    default: "h-10"
    after: "transition"
    variants:
      error: "border-red-500"
      small: "h-8 text-sm"
    compounds:
      - states: [small, error]
        classes: "ring-1"
  - name: search
    extends: field
    base: "rounded-full border"
    variants:
      small: "h-7"
      icon: "pl-8"
    compounds:
      - states: [icon, error]
        classes: "text-red-500"
  - name: compact_search
    extends: search
    default: "h-7"
`

const formsHCL = `
version = "1.0"
name    = "forms"

style "field" {
  base    = "rounded border"
  default = "h-10"
  after   = "transition"
  variants = {
    small = "h-8 text-sm"
    error = "border-red-500"
  }
  compound {
    states  = ["small", "error"]
    classes = "ring-1"
  }
}

style "search" {
  extends = "field"
  base    = "rounded-full border"
  variants = {
    small = "h-7"
    icon  = "pl-8"
  }
  compound {
    states  = ["icon", "error"]
    classes = "text-red-500"
  }
}

style "compact_search" {
  extends = "search"
  default = "h-7"
}
`

func TestLoadComposesStyles(t *testing.T) {
	t.Parallel()

	for _, file := range []struct{ name, contents string }{
		{name: "forms.yaml", contents: formsYAML},
		{name: "forms.hcl", contents: formsHCL},
	} {
		file := file
		t.Run(file.name, func(t *testing.T) {
			t.Parallel()

			sheet, err := NewLoader(nil).Load(context.Background(), writeSheet(t, file.name, file.contents))
			require.NoError(t, err)

			assert.Equal(t, "forms", sheet.Name())
			assert.Equal(t, []string{"field", "search", "compact_search"}, sheet.Styles())

			cases := []struct {
				style string
				flags classes.Flags
				want  string
			}{
				{style: "field", flags: nil, want: "rounded border h-10 transition"},
				{style: "field", flags: classes.On("small", "error"), want: "rounded border border-red-500 h-8 text-sm ring-1 transition"},
				{style: "search", flags: nil, want: "rounded-full border h-10 transition"},
				{style: "search", flags: classes.On("small"), want: "rounded-full border h-7 transition"},
				{style: "search", flags: classes.On("icon", "error"), want: "rounded-full border border-red-500 pl-8 text-red-500 transition"},
				{style: "compact_search", flags: nil, want: "rounded-full border h-7 transition"},
				{style: "compact_search", flags: classes.Flags{"base": false, "small": true, "error": true}, want: "border-red-500 h-7 ring-1 transition"},
			}
			for _, tc := range cases {
				got, err := sheet.Compose(tc.style, tc.flags)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got, "%s %v", tc.style, tc.flags)
			}
		})
	}
}

func TestSheetDescribe(t *testing.T) {
	t.Parallel()

	doc, err := config.ParseYAML("forms.yaml", []byte(formsYAML))
	require.NoError(t, err)

	sheet, err := Build(doc)
	require.NoError(t, err)

	info, err := sheet.Describe("search")
	require.NoError(t, err)
	assert.Equal(t, StyleInfo{Name: "search", Extends: "field", Variants: []string{"error", "small", "icon"}, Compounds: 2}, info)

	all := sheet.DescribeAll()
	require.Len(t, all, 3)
	assert.Equal(t, "compact_search", all[2].Name)
	assert.Equal(t, 2, all[2].Compounds)

	_, err = sheet.Describe("missing")
	var lookupErr *classyerrors.LookupError
	require.ErrorAs(t, err, &lookupErr)
}

func TestSheetLookupUnknownStyle(t *testing.T) {
	t.Parallel()

	doc, err := config.ParseYAML("forms.yaml", []byte(formsYAML))
	require.NoError(t, err)
	sheet, err := Build(doc)
	require.NoError(t, err)

	_, err = sheet.Compose("link", nil)

	var lookupErr *classyerrors.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "link", lookupErr.Style)
	assert.Equal(t, "forms", lookupErr.Sheet)
}

func TestBuildReportsConfigErrorWithStyle(t *testing.T) {
	t.Parallel()

	doc := &config.Stylesheet{
		Version: "1.0",
		Name:    "broken",
		Styles: []config.Style{
			{Name: "button", Variants: []config.Variant{{Name: "small", Classes: "sm"}}},
			{
				Name:      "ghost",
				Extends:   "button",
				Compounds: []config.Compound{{States: []string{"small", "huge"}, Classes: "x"}},
			},
		},
	}

	_, err := Build(doc)

	var configErr *classyerrors.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "ghost", configErr.Style)
	assert.Contains(t, configErr.Error(), `unknown variant "huge"`)
}

func TestBuildRejectsReservedVariant(t *testing.T) {
	t.Parallel()

	doc, err := config.ParseYAML("reserved.yaml", []byte(`version: "1.0"
name: "reserved"
styles:
  - name: button
    variants:
      default: "x"
`))
	require.NoError(t, err)

	_, err = Build(doc)
	var configErr *classyerrors.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "button", configErr.Style)
}

func TestBuildNil(t *testing.T) {
	t.Parallel()

	_, err := Build(nil)
	require.Error(t, err)
}

func TestLoadHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(nil).Load(ctx, writeSheet(t, "forms.yaml", formsYAML))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadLogsFailures(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	_, err = NewLoader(log).Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "failed to parse stylesheet")
	assert.Contains(t, buf.String(), "missing.yaml")
}

func writeSheet(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
