package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSavePreservesExtensionAndAvoidsCollisions(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	first, err := store.Save(uploadHeader(t, "photo.jpg", []byte("a")))
	require.NoError(t, err)
	second, err := store.Save(uploadHeader(t, "photo.jpg", []byte("b")))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(first, URLPrefix))
	require.True(t, strings.HasSuffix(first, ".jpg"))
	require.NotEqual(t, first, second)

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(first)))
	require.NoError(t, err)
	require.Equal(t, []byte("a"), data)
}

func TestRemoveIgnoresExternalURLs(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Remove("https://example.com/cat.png"))

	url, err := store.Save(uploadHeader(t, "cat.png", []byte("x")))
	require.NoError(t, err)
	require.NoError(t, store.Remove(url))
	_, statErr := os.Stat(filepath.Join(store.Dir(), filepath.Base(url)))
	require.True(t, os.IsNotExist(statErr))
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := New(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
