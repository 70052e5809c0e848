package docstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSystemStore keeps each document in a file named by its checksum.
type FileSystemStore struct {
	root string
}

var _ Store = (*FileSystemStore)(nil)

// NewFileSystemStore returns a store rooted at given directory. The directory
// is created if it does not exist.
func NewFileSystemStore(root string) (*FileSystemStore, error) {
	if root == "" {
		return nil, fmt.Errorf("filesystem store requires a root directory")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &FileSystemStore{root: root}, nil
}

func (s *FileSystemStore) path(ref Ref) string {
	return filepath.Join(s.root, ref.Checksum())
}

func (s *FileSystemStore) Upload(ctx context.Context, data []byte) (Ref, error) {
	ref := NewRef(data)
	if ok, err := s.Has(ctx, ref); err != nil {
		return "", err
	} else if ok {
		return ref, nil
	}
	if err := writeAtomic(s.path(ref), data); err != nil {
		return "", err
	}
	return ref, nil
}

// writeAtomic writes data to a temporary file in the destination directory
// and renames it once fully written.
func writeAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	success = true
	return nil
}

func (s *FileSystemStore) Fetch(ctx context.Context, ref Ref) ([]byte, error) {
	if _, err := ParseRef(ref.String()); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(ref))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if err := verify(ref, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileSystemStore) Has(ctx context.Context, ref Ref) (bool, error) {
	if _, err := ParseRef(ref.String()); err != nil {
		return false, err
	}
	_, err := os.Stat(s.path(ref))
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("failed to stat document: %w", err)
	}
}
