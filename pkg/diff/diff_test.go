package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassesIdentical(t *testing.T) {
	t.Parallel()

	result := Classes("btn  btn-primary", " btn btn-primary ")
	assert.True(t, result.Empty())
	assert.Empty(t, result.Unified("a", "b"))
	assert.Empty(t, result.Added())
	assert.Empty(t, result.Removed())
}

func TestClassesAddedAndRemoved(t *testing.T) {
	t.Parallel()

	result := Classes("btn btn-md", "btn btn-primary btn-lg")
	require.False(t, result.Empty())
	assert.Equal(t, []string{"btn-md"}, result.Removed())
	assert.Equal(t, []string{"btn-primary", "btn-lg"}, result.Added())
}

func TestClassesFromEmpty(t *testing.T) {
	t.Parallel()

	result := Classes("", "btn")
	assert.Equal(t, []Change{{Op: Added, Class: "btn"}}, result.Changes)

	result = Classes("btn", "")
	assert.Equal(t, []Change{{Op: Removed, Class: "btn"}}, result.Changes)
}

func TestUnified(t *testing.T) {
	t.Parallel()

	result := Classes("btn btn-primary", "btn btn-primary shadow-lg")
	want := "--- primary\n+++ primary,large\n btn\n btn-primary\n+shadow-lg\n"
	assert.Equal(t, want, result.Unified("primary", "primary,large"))
}
