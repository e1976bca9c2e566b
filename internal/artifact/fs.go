// SPDX-License-Identifier: MIT

package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FSStore keeps artifacts as plain files in one directory.
type FSStore struct {
	root string
}

// NewFSStore creates root if needed and returns a store rooted there.
func NewFSStore(root string) (*FSStore, error) {
	if err := os.MkdirAll(root, dirPerm); err != nil {
		return nil, fmt.Errorf("artifact: fs: %w", err)
	}

	return &FSStore{root: root}, nil
}

// Put writes data to a temporary file and renames it into place, so readers
// never observe a partial artifact.
func (s *FSStore) Put(_ context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.root, ".tmp-"+name+"-*")
	if err != nil {
		return fmt.Errorf("artifact: fs: %w", err)
	}
	if _, err = tmp.Write(data); err == nil {
		err = tmp.Chmod(filePerm)
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp.Name(), filepath.Join(s.root, name))
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("artifact: fs: %w", err)
	}

	return nil
}

// Get reads the artifact file.
func (s *FSStore) Get(_ context.Context, name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.root, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("artifact: fs: %w", err)
	}

	return data, nil
}
