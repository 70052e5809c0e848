package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestKeygenKeyaddr(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "owner.key")

	if err := cmdKeygen(nil, ioutil.Discard, []string{"-key", keyPath}); err != nil {
		t.Fatalf("cannot generate a key: %s", err)
	}
	// an existing key must never be overwritten
	if err := cmdKeygen(nil, ioutil.Discard, []string{"-key", keyPath}); err == nil {
		t.Fatal("key file was overwritten")
	}

	var output bytes.Buffer
	if err := cmdKeyaddr(nil, &output, []string{"-key", keyPath}); err != nil {
		t.Fatalf("cannot print key address: %s", err)
	}
	addr, err := weave.ParseAddress(strings.TrimSpace(output.String()))
	assert.Nil(t, err)

	key, err := loadPrivateKey(keyPath)
	assert.Nil(t, err)
	assert.Equal(t, key.PublicKey().Address(), addr)
}

func TestLoadPrivateKeyInvalidLength(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "short.key")
	assert.Nil(t, ioutil.WriteFile(keyPath, []byte("short"), 0600))
	if _, err := loadPrivateKey(keyPath); err == nil {
		t.Fatal("short key must be rejected")
	}
}
