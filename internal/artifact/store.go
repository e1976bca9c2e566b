// SPDX-License-Identifier: MIT

// Package artifact keeps the downloadable CSV results produced by the HTTP
// service. Every backend implements Store; names are generated by NewName
// and checked with ValidName before they reach a backend, so no caller
// supplied path ever touches a filesystem or bucket key.
package artifact

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	namePrefix = "output_"
	nameSuffix = ".csv"
)

var (
	// ErrNotFound is returned by Get when no artifact has the name.
	ErrNotFound = errors.New("artifact: not found")

	// ErrInvalidName is returned for names NewName could not have produced.
	ErrInvalidName = errors.New("artifact: invalid name")
)

// Store persists artifacts by name. Implementations are safe for
// concurrent use.
type Store interface {
	// Put stores data under name, replacing any previous artifact.
	Put(ctx context.Context, name string, data []byte) error
	// Get returns the artifact stored under name or ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)
}

// NewName returns a fresh artifact name: output_<uuid>.csv.
func NewName() string {
	return namePrefix + uuid.NewString() + nameSuffix
}

// ValidName reports whether name has the shape NewName produces.
func ValidName(name string) bool {
	id, ok := strings.CutPrefix(name, namePrefix)
	if !ok {
		return false
	}
	id, ok = strings.CutSuffix(id, nameSuffix)
	if !ok {
		return false
	}
	u, err := uuid.Parse(id)

	// uuid.Parse also accepts urn and braced forms; only the canonical one is ours.
	return err == nil && u.String() == id
}

func checkName(name string) error {
	if !ValidName(name) {
		return ErrInvalidName
	}

	return nil
}
