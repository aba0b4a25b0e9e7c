/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package source

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/suparena/grimoire/errors"
)

// Source returns the raw bytes of a named data file such as "characters.json".
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// FS reads data files from a file system.
type FS struct {
	fsys fs.FS
}

// NewFS creates a Source reading from fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

// Fetch reads name from the file system.
func (s *FS) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NewNotFoundError("data file", name)
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
