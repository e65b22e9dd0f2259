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

package main

import (
	"embed"
	"os"

	"github.com/thediveo/spashell"
)

// dist contains the production build of the SPA.
//
//go:embed all:dist
var dist embed.FS

// assetStore returns the store with the SPA's assets: the embedded production
// build, unless a directory on disk has been specified for development.
func assetStore(dir string) (spashell.AssetStore, error) {
	if dir != "" {
		return spashell.NewFSStore(os.DirFS(dir), "")
	}
	return spashell.NewFSStore(dist, "dist")
}
