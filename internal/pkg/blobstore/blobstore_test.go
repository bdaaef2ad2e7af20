package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedFile(t *testing.T) {
	cases := []struct {
		filename string
		allowed  bool
	}{
		{"photo.png", true},
		{"photo.jpg", true},
		{"photo.jpeg", true},
		{"photo.gif", true},
		{"PHOTO.PNG", true},
		{"photo.Jpg", true},
		{"resume.pdf", false},
		{"script.png.exe", false},
		{"noextension", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, AllowedFile(tc.filename), tc.filename)
	}
}

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), strings.NewReader("png-bytes"), "me.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/"))
	assert.True(t, strings.HasSuffix(url, "_me.png"))

	// Object name must be unique per upload, not the raw filename.
	objectName := strings.TrimPrefix(url, "http://localhost:8080/uploads/")
	assert.NotEqual(t, "me.png", objectName)

	content, err := os.ReadFile(filepath.Join(dir, objectName))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestLocalStorePut_DistinctObjectNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	first, err := store.Put(context.Background(), strings.NewReader("a"), "me.png")
	require.NoError(t, err)
	second, err := store.Put(context.Background(), strings.NewReader("b"), "me.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewLocalStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalStore(dir, "http://localhost:8080/uploads")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
