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

import "strings"

// OutcomeKind tells how a request is to be answered.
type OutcomeKind int

const (
	// NotFound answers with a plain 404, as the request referenced a file
	// that isn't part of the asset store.
	NotFound OutcomeKind = iota
	// ServeAsset answers with an asset from the asset store.
	ServeAsset
	// ServeRootDocument answers with the (prepared) root document, either as
	// the application shell or as the fallback for client-side routes.
	ServeRootDocument
)

// String returns the name of the outcome kind, for logging.
func (k OutcomeKind) String() string {
	switch k {
	case ServeAsset:
		return "asset"
	case ServeRootDocument:
		return "root document"
	default:
		return "not found"
	}
}

// Outcome is the result of resolving a request path. Body and ContentType are
// only set for ServeAsset.
type Outcome struct {
	Kind        OutcomeKind
	Body        []byte
	ContentType string
}

// Resolve decides how to answer a request for the specified URL path, without
// consulting anything else from the request.
//
// The empty path and the root document's own name get the root document. Any
// other path is looked up in the asset store, with a single leading "/"
// removed. Paths not found in the asset store are treated as client-side
// routes when they don't contain any ".", so they get the root document too.
// Missing paths with a "." are assumed to refer to files and thus end up as
// NotFound. Please note that this also sends client-side routes with dots in
// them to NotFound.
func (h *SPAHandler) Resolve(urlpath string) Outcome {
	name := strings.TrimPrefix(urlpath, "/")
	if name == "" || name == h.rootName {
		return Outcome{Kind: ServeRootDocument}
	}
	if contents, ok := h.store.Get(name); ok {
		return Outcome{
			Kind:        ServeAsset,
			Body:        contents,
			ContentType: ContentType(name),
		}
	}
	if strings.Contains(name, ".") {
		return Outcome{Kind: NotFound}
	}
	return Outcome{Kind: ServeRootDocument}
}
