package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()
	files := []GeneratedFile{
		{Dir: dir, Filename: "a_driver_impl.go", Content: []byte("package a\n")},
		{Dir: filepath.Join(dir, "sub"), Filename: "b_driver_impl.go", Content: []byte("package b\n")},
	}

	written, err := WriteFiles(files)
	require.NoError(t, err)
	assert.Equal(t, []string{files[0].Path(), files[1].Path()}, written)

	got, err := os.ReadFile(files[1].Path())
	require.NoError(t, err)
	assert.Equal(t, "package b\n", string(got))

	written, err = WriteFiles(files)
	require.NoError(t, err)
	assert.Empty(t, written, "unchanged files are not rewritten")
}

func TestWriteFiles_NoDir(t *testing.T) {
	_, err := WriteFiles([]GeneratedFile{{Filename: "x.go"}})
	require.Error(t, err)
}

func TestStale(t *testing.T) {
	dir := t.TempDir()
	current := GeneratedFile{Dir: dir, Filename: "current.go", Content: []byte("package x\n")}
	changed := GeneratedFile{Dir: dir, Filename: "changed.go", Content: []byte("package x\n")}
	missing := GeneratedFile{Dir: dir, Filename: "missing.go", Content: []byte("package x\n")}

	require.NoError(t, os.WriteFile(current.Path(), current.Content, filePerm))
	require.NoError(t, os.WriteFile(changed.Path(), []byte("package y\n"), filePerm))

	stale, err := Stale([]GeneratedFile{current, changed, missing})
	require.NoError(t, err)
	assert.Equal(t, []string{changed.Path(), missing.Path()}, stale)
}
