package storage

import (
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploads_SaveReader(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	u, err := NewUploads(dir)
	require.NoError(t, err)

	ref, err := u.SaveReader("../../etc/Homework.TXT", strings.NewReader("2+2=4"))
	require.NoError(t, err)

	assert.Equal(t, filepath.ToSlash(dir), path.Dir(ref))
	assert.Equal(t, ".TXT", path.Ext(ref))
	assert.Len(t, strings.TrimSuffix(path.Base(ref), ".TXT"), 32)

	data, err := os.ReadFile(filepath.Join(dir, path.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, "2+2=4", string(data))
}

func TestUploads_UniqueNames(t *testing.T) {
	u, err := NewUploads(t.TempDir())
	require.NoError(t, err)

	a, err := u.SaveReader("a.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := u.SaveReader("a.pdf", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestUploads_Remove(t *testing.T) {
	dir := t.TempDir()
	u, err := NewUploads(dir)
	require.NoError(t, err)

	ref, err := u.SaveReader("notes", strings.NewReader("x"))
	require.NoError(t, err)
	require.NoError(t, u.Remove(ref))

	_, err = os.Stat(filepath.Join(dir, path.Base(ref)))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, u.Remove(ref))
}
