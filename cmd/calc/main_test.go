package main

import (
	"os"
	"path/filepath"
	"testing"

	"sparse-calc/internal/matrix"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMatrixFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_AdditionWritesResultFile(t *testing.T) {
	dir := t.TempDir()
	a := writeMatrixFile(t, dir, "a.txt", "rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 2)")
	b := writeMatrixFile(t, dir, "b.txt", "rows=2\ncols=2\n(0, 0, 3)")
	out := filepath.Join(dir, "result.txt")

	err := run([]string{"-first", a, "-second", b, "-op", matrix.OpAddition, "-out", out})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "rows=2\ncols=2\n(0, 0, 4)\n(1, 1, 2)", string(data))
}

func TestRun_DimensionMismatchLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	a := writeMatrixFile(t, dir, "a.txt", "rows=2\ncols=3")
	b := writeMatrixFile(t, dir, "b.txt", "rows=4\ncols=2")
	out := filepath.Join(dir, "result.txt")

	err := run([]string{"-first", a, "-second", b, "-op", matrix.OpMultiplication, "-out", out})
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output file should be written on failure")
}

func TestRun_InvalidOperation(t *testing.T) {
	dir := t.TempDir()
	a := writeMatrixFile(t, dir, "a.txt", "rows=1\ncols=1")
	b := writeMatrixFile(t, dir, "b.txt", "rows=1\ncols=1")

	err := run([]string{"-first", a, "-second", b, "-op", "modulo"})
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrInvalidOperation)
}

func TestRun_MissingSourceFile(t *testing.T) {
	dir := t.TempDir()
	b := writeMatrixFile(t, dir, "b.txt", "rows=1\ncols=1")

	err := run([]string{"-first", filepath.Join(dir, "absent.txt"), "-second", b, "-op", matrix.OpAddition})
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrSourceNotFound)
}

func TestRun_MissingFlags(t *testing.T) {
	err := run([]string{"-first", "a.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}
