/*
Package docstore keeps will documents outside of the chain.

Documents are content addressed. A reference returned by Upload is the
SHA-256 checksum of the document and it is what a will stores as its
document reference. Fetch always verifies that the returned content matches
the reference.
*/
package docstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no document exists for a reference.
	ErrNotFound = errors.New("document not found")
	// ErrCorrupted is returned when stored content does not match its
	// reference.
	ErrCorrupted = errors.New("document corrupted")
	// ErrInvalidRef is returned when a reference cannot be parsed.
	ErrInvalidRef = errors.New("invalid document reference")
)

// Store is implemented by all document storage backends.
type Store interface {
	// Upload stores the document and returns its reference. Uploading the
	// same content twice returns the same reference.
	Upload(ctx context.Context, data []byte) (Ref, error)
	// Fetch returns the document content for given reference.
	Fetch(ctx context.Context, ref Ref) ([]byte, error)
	// Has returns true if a document for given reference is stored.
	Has(ctx context.Context, ref Ref) (bool, error)
}

const refPrefix = "sha256:"

// Ref is a content address of a document.
type Ref string

// NewRef returns the reference of given content.
func NewRef(data []byte) Ref {
	sum := sha256.Sum256(data)
	return Ref(refPrefix + hex.EncodeToString(sum[:]))
}

// ParseRef validates a reference in its text form.
func ParseRef(s string) (Ref, error) {
	if !strings.HasPrefix(s, refPrefix) {
		return "", fmt.Errorf("%w: missing %q prefix", ErrInvalidRef, refPrefix)
	}
	raw, err := hex.DecodeString(s[len(refPrefix):])
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidRef, err)
	}
	if len(raw) != sha256.Size {
		return "", fmt.Errorf("%w: checksum must be %d bytes", ErrInvalidRef, sha256.Size)
	}
	return Ref(s), nil
}

// Checksum returns the hex encoded checksum part of the reference.
func (r Ref) Checksum() string {
	return strings.TrimPrefix(string(r), refPrefix)
}

func (r Ref) String() string {
	return string(r)
}

// verify returns ErrCorrupted if data does not hash to the reference.
func verify(ref Ref, data []byte) error {
	if got := NewRef(data); got != ref {
		return fmt.Errorf("%w: want %s, got %s", ErrCorrupted, ref, got)
	}
	return nil
}
