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
	"mime"
	"path"
)

// DefaultContentType is served for assets with an unknown file extension.
const DefaultContentType = "application/octet-stream"

// ContentType returns the MIME type for the specified asset name, based solely
// on its file extension. It returns DefaultContentType if the extension is
// missing or unknown.
func ContentType(name string) string {
	if ctype := mime.TypeByExtension(path.Ext(name)); ctype != "" {
		return ctype
	}
	return DefaultContentType
}
