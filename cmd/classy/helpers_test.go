package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const buttonsYAML = `version: "1.0"
name: "buttons"
description: "Button styles"
styles:
  - name: button
    base: "btn"
    default: "btn-md"
    variants:
      primary: "btn-primary"
      large: "btn-lg"
    compounds:
      - states: [primary, large]
        classes: "shadow-lg"
  - name: link
    extends: button
    base: "link"
    variants:
      underline: "underline"
`

func writeStylesheet(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
