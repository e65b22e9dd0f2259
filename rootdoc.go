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
	"io"
	"log/slog"
	"os"
	"sync"
	"unicode/utf8"
)

// RootDocument lazily prepares the root document of an SPA exactly once and
// then hands out the very same result to all callers, concurrent or not.
// Preparing the root document means reading it from the asset store and
// injecting the analytics snippet, if configured.
type RootDocument struct {
	load func() (string, error)
}

// NewRootDocument returns a RootDocument for the named asset from store. The
// environment is consulted only once, when the root document gets prepared
// on first use. A nil lookup defaults to os.LookupEnv, and a nil log discards
// all log messages.
func NewRootDocument(store AssetStore, name string, lookup EnvLookup, log *slog.Logger) *RootDocument {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if log == nil {
		log = discardLogger()
	}
	return &RootDocument{
		load: sync.OnceValues(func() (string, error) {
			return prepareRootDocument(store, name, lookup, log)
		}),
	}
}

// Load returns the prepared root document, or an error if the root document
// is missing from the asset store or isn't proper text. Its outcome never
// changes once Load or Get has been called.
func (d *RootDocument) Load() (string, error) {
	return d.load()
}

// Get returns the prepared root document, panicking if it cannot be prepared:
// without a root document there is no SPA to serve at all.
func (d *RootDocument) Get() string {
	doc, err := d.load()
	if err != nil {
		panic(err.Error())
	}
	return doc
}

func prepareRootDocument(store AssetStore, name string, lookup EnvLookup, log *slog.Logger) (string, error) {
	contents, ok := store.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRootDocumentMissing, name)
	}
	if !utf8.Valid(contents) {
		return "", fmt.Errorf("%w: %q", ErrRootDocumentNotText, name)
	}
	doc := string(contents)
	analytics := AnalyticsConfigFromEnv(lookup)
	if analytics == nil {
		log.Info("root document prepared", slog.String("name", name), slog.Bool("analytics", false))
		return doc, nil
	}
	doc, injected := InjectSnippet(doc, analytics.Snippet())
	if !injected {
		log.Warn("root document lacks closing head element, skipping analytics injection",
			slog.String("name", name))
	}
	log.Info("root document prepared",
		slog.String("name", name), slog.Bool("analytics", injected))
	return doc, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
