package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/weavetest/assert"
)

func TestKeygenAndKeyaddr(t *testing.T) {
	dir, err := ioutil.TempDir("", "escrowcli")
	if err != nil {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	defer os.RemoveAll(dir)
	keyPath := filepath.Join(dir, "key")

	if err := cmdKeygen(nil, nil, []string{"-key", keyPath}); err != nil {
		t.Fatalf("cannot generate key: %s", err)
	}
	if err := cmdKeygen(nil, nil, []string{"-key", keyPath}); err == nil {
		t.Fatal("existing key was overwritten")
	}

	var output bytes.Buffer
	if err := cmdKeyaddr(nil, &output, []string{"-key", keyPath}); err != nil {
		t.Fatalf("cannot print address: %s", err)
	}
	addr, err := weave.ParseAddress(strings.TrimSpace(output.String()))
	assert.Nil(t, err)

	key, err := decodePrivateKey(keyPath)
	assert.Nil(t, err)
	assert.Equal(t, key.PublicKey().Address(), addr)
}

func TestDecodeInvalidKey(t *testing.T) {
	keyPath := mustCreateFile(t, strings.NewReader("too short"))
	defer os.Remove(keyPath)

	if _, err := decodePrivateKey(keyPath); err == nil {
		t.Fatal("invalid key accepted")
	}
}
