package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/digiheir/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocstoreConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "docstore.toml")
	cfg := &docstore.Config{Store: docstore.StoreConfig{
		Type: "filesystem",
		Root: filepath.Join(dir, "docs"),
	}}
	var buf bytes.Buffer
	require.NoError(t, docstore.WriteConfig(&buf, cfg))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestCmdDocUploadFetch(t *testing.T) {
	config := writeDocstoreConfig(t)
	content := "All my books go to the public library."

	var refOut bytes.Buffer
	err := cmdDocUpload(strings.NewReader(content), &refOut, []string{"-config", config})
	require.NoError(t, err)
	ref := strings.TrimSpace(refOut.String())
	assert.Equal(t, docstore.NewRef([]byte(content)).String(), ref)

	var docOut bytes.Buffer
	err = cmdDocFetch(nil, &docOut, []string{"-config", config, "-ref", ref})
	require.NoError(t, err)
	assert.Equal(t, content, docOut.String())
}

func TestCmdDocUploadFile(t *testing.T) {
	config := writeDocstoreConfig(t)
	docPath := filepath.Join(t.TempDir(), "will.txt")
	require.NoError(t, os.WriteFile(docPath, []byte("file content"), 0644))

	var refOut bytes.Buffer
	err := cmdDocUpload(nil, &refOut, []string{"-config", config, docPath})
	require.NoError(t, err)
	assert.Equal(t, docstore.NewRef([]byte("file content")).String(), strings.TrimSpace(refOut.String()))
}

func TestCmdDocFetchMissing(t *testing.T) {
	config := writeDocstoreConfig(t)
	ref := docstore.NewRef([]byte("never uploaded")).String()
	err := cmdDocFetch(nil, &bytes.Buffer{}, []string{"-config", config, "-ref", ref})
	assert.Error(t, err)
}

func TestCmdDocMissingConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.toml")
	err := cmdDocUpload(strings.NewReader("x"), &bytes.Buffer{}, []string{"-config", missing})
	assert.Error(t, err)
}
