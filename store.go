// Copyright 2026 Harald Albrecht.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spashell

import (
	"fmt"
	"io/fs"
)

// AssetStore is a read-only mapping from unrooted, slash-separated asset names
// to their contents. Implementations must not change after the first request
// has been served, so they can be used concurrently without any locking.
type AssetStore interface {
	// Get returns the contents of the named asset and true, or nil and false
	// if there is no such asset.
	Get(name string) ([]byte, bool)
}

// MapStore is an AssetStore populated in memory, typically at build time.
type MapStore map[string][]byte

// Get returns the named asset, if present.
func (s MapStore) Get(name string) ([]byte, bool) {
	contents, ok := s[name]
	return contents, ok
}

// FSStore is an AssetStore backed by an fs.FS, such as an embed.FS holding the
// production build of an SPA, or an os.DirFS pointing to the build output
// directory during development.
type FSStore struct {
	fs fs.FS
}

// NewFSStore returns an FSStore serving the assets found in the specified
// directory of fsys. Pass "" or "." as dir to serve from the root of fsys. The
// directory is checked to exist, as otherwise not even the root document
// could ever be served.
//
// For instance, to serve the "dist" directory of an embedded SPA build:
//
//	//go:embed all:dist
//	var dist embed.FS
//
//	store, err := NewFSStore(dist, "dist")
func NewFSStore(fsys fs.FS, dir string) (*FSStore, error) {
	if dir != "" && dir != "." {
		sub, err := fs.Sub(fsys, dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidStoreDir, dir, err)
		}
		fsys = sub
	}
	info, err := fs.Stat(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidStoreDir, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q: not a directory", ErrInvalidStoreDir, dir)
	}
	return &FSStore{fs: fsys}, nil
}

// Get returns the contents of the named regular file. Directories, names that
// aren't valid fs.FS paths, and files that cannot be read all count as
// missing assets.
func (s *FSStore) Get(name string) ([]byte, bool) {
	if !fs.ValidPath(name) {
		return nil, false
	}
	// fs.Stat falls back to Open+Stat for fs.FS implementations that don't
	// support fs.StatFS.
	info, err := fs.Stat(s.fs, name)
	if err != nil || !info.Mode().IsRegular() {
		return nil, false
	}
	contents, err := fs.ReadFile(s.fs, name)
	if err != nil {
		return nil, false
	}
	return contents, true
}

var (
	_ AssetStore = MapStore(nil)
	_ AssetStore = (*FSStore)(nil)
)
