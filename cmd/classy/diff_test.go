package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffCommand(t *testing.T) {
	t.Parallel()

	path := writeStylesheet(t, "buttons.yaml", buttonsYAML)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "defaults to variant",
			args: []string{"--to", "primary"},
			want: "--- defaults\n+++ primary\n btn\n-btn-md\n+btn-primary\n",
		},
		{
			name: "compound appears",
			args: []string{"--from", "primary", "--to", "primary", "--to", "large"},
			want: "--- primary\n+++ primary,large\n btn\n btn-primary\n+btn-lg\n+shadow-lg\n",
		},
		{
			name: "base opt out",
			args: []string{"--from", "primary", "--to", "primary", "--to", "base=false"},
			want: "--- primary\n+++ primary,base=false\n-btn\n btn-primary\n",
		},
		{
			name: "identical",
			args: []string{"--from", "primary", "--to", "primary=true"},
			want: "no changes\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"diff", path, "button"}, tt.args...)
			stdout, _, err := executeCommand(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestDiffCommandRejectsBadFlag(t *testing.T) {
	t.Parallel()

	path := writeStylesheet(t, "buttons.yaml", buttonsYAML)

	_, _, err := executeCommand(t, "diff", path, "button", "--to", "primary=sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to diff")
}
