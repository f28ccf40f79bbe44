package typegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_UpToDate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "types.hpp")
	content := "// Code generated by bender. DO NOT EDIT.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	result, err := Compare(map[string]string{path: content})
	require.NoError(t, err)
	assert.True(t, result.UpToDate)
	assert.Empty(t, result.Differences)
}

func TestCompare_Stale(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "types.hpp")
	require.NoError(t, os.WriteFile(path, []byte("old content\n"), 0644))

	result, err := Compare(map[string]string{path: "new content\n"})
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{path}, result.Differences)
}

func TestCompare_MissingFileCountsAsStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-written.hpp")

	result, err := Compare(map[string]string{path: "content\n"})
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{path}, result.Differences)
}

func TestCompare_DeterministicOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.hpp")
	b := filepath.Join(dir, "b.hpp")

	result, err := Compare(map[string]string{b: "x", a: "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, result.Differences)
}
