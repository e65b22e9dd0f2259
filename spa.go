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
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
)

// DefaultRootDocument is the name of the root document most SPA build tools
// produce.
const DefaultRootDocument = "index.html"

// RootDocumentContentType is the content type the root document is always
// served with.
const RootDocumentContentType = "text/html; charset=utf-8"

// SPAHandler implements an http.Handler that serves the assets of an SPA from
// an AssetStore. Paths not matching any asset and not looking like file names
// get the root document instead, so that client-side DOM routers work when
// reloading or bookmarking a route other than "/".
type SPAHandler struct {
	store    AssetStore    // where to get the SPA's assets from.
	rootName string        // unrooted name of the root document inside store.
	lookup   EnvLookup     // environment to read the analytics configuration from.
	log      *slog.Logger  // never nil.
	root     *RootDocument // prepared once on first use.
}

// NewSPAHandler returns a new HTTP handler serving the SPA assets in the
// specified store. The root document defaults to DefaultRootDocument; use
// WithRootDocument to specify a different one.
//
// In order to serve the production build of an SPA embedded into the binary:
//
//	//go:embed all:dist
//	var dist embed.FS
//
//	store, err := NewFSStore(dist, "dist")
//	...
//	h := NewSPAHandler(store)
func NewSPAHandler(store AssetStore, opts ...SPAHandlerOption) *SPAHandler {
	h := &SPAHandler{
		store:    store,
		rootName: DefaultRootDocument,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = discardLogger()
	}
	h.root = NewRootDocument(h.store, h.rootName, h.lookup, h.log)
	return h
}

// SPAHandlerOption sets optional properties at the time of creating an
// SPAHandler.
type SPAHandlerOption func(*SPAHandler)

// WithRootDocument sets the name of the root document. It should be an
// unrooted, slash-separated path+name, but gets sanitized anyway.
func WithRootDocument(name string) SPAHandlerOption {
	return func(h *SPAHandler) {
		h.rootName = path.Clean("/" + name)[1:]
	}
}

// WithEnvLookup sets the function used to read the analytics configuration
// from the environment, instead of os.LookupEnv.
func WithEnvLookup(lookup EnvLookup) SPAHandlerOption {
	return func(h *SPAHandler) {
		h.lookup = lookup
	}
}

// WithLogger sets the structured logger to use; by default, nothing is logged.
func WithLogger(log *slog.Logger) SPAHandlerOption {
	return func(h *SPAHandler) {
		h.log = log
	}
}

// Preload prepares the root document right now instead of when it gets
// requested the first time, returning an error if the root document is
// missing or broken. Call it before starting to serve so that a broken SPA
// build gets noticed immediately.
func (h *SPAHandler) Preload() error {
	_, err := h.root.Load()
	return err
}

// RootDocument returns the prepared root document, panicking if it cannot be
// prepared.
func (h *SPAHandler) RootDocument() string {
	return h.root.Get()
}

// ServeHTTP answers GET and HEAD requests with either an asset, the root
// document, or a 404, depending on the request's URL path.
func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "405 method not allowed", http.StatusMethodNotAllowed)
		return
	}
	outcome := h.Resolve(r.URL.Path)
	h.log.Debug("resolved request",
		slog.String("path", r.URL.Path), slog.String("outcome", outcome.Kind.String()))
	switch outcome.Kind {
	case ServeAsset:
		serveContents(w, r, outcome.ContentType, len(outcome.Body), func(w io.Writer) {
			_, _ = w.Write(outcome.Body)
		})
	case ServeRootDocument:
		doc := h.root.Get()
		serveContents(w, r, RootDocumentContentType, len(doc), func(w io.Writer) {
			_, _ = io.WriteString(w, doc)
		})
	default:
		WriteNotFound(w)
	}
}

// serveContents sends a 200 response with the specified content type and
// length, leaving out the body when answering a HEAD request.
func serveContents(w http.ResponseWriter, r *http.Request, ctype string, size int, body func(w io.Writer)) {
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Content-Length", strconv.Itoa(size))
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	body(w)
}
