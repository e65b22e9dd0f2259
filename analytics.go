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
	"html"
	"strings"
)

// Environment variables configuring the analytics snippet injected into the
// root document. Both need to be set for injection to take place.
const (
	AnalyticsURLEnv    = "ANALYTICS_URL"
	AnalyticsSiteIDEnv = "ANALYTICS_UUID"
)

// HeadEndMarker is the closing head element the analytics snippet gets
// inserted in front of.
const HeadEndMarker = "</head>"

// EnvLookup looks up the value of an environment variable, returning false if
// the variable is not present. os.LookupEnv is the canonical implementation.
type EnvLookup func(key string) (string, bool)

// AnalyticsConfig tells which analytics script to reference from the root
// document and which site identifier to tag it with.
type AnalyticsConfig struct {
	URL    string // URL of the (external) analytics script.
	SiteID string // site identifier passed to the analytics script.
}

// AnalyticsConfigFromEnv returns the analytics configuration found in the
// environment. It returns nil when either of the two variables is missing or
// empty, as there is no such thing as a partial analytics configuration.
func AnalyticsConfigFromEnv(lookup EnvLookup) *AnalyticsConfig {
	url, ok := lookup(AnalyticsURLEnv)
	if !ok || url == "" {
		return nil
	}
	siteID, ok := lookup(AnalyticsSiteIDEnv)
	if !ok || siteID == "" {
		return nil
	}
	return &AnalyticsConfig{URL: url, SiteID: siteID}
}

// Snippet returns the markup for a deferred external script element
// referencing the analytics script URL and carrying the site identifier.
func (c *AnalyticsConfig) Snippet() string {
	return fmt.Sprintf(`<script defer src="%s" data-website-id="%s"></script>`,
		html.EscapeString(c.URL), html.EscapeString(c.SiteID))
}

// InjectSnippet inserts the snippet on a line of its own immediately before
// the first closing head element in doc. If doc lacks a closing head element,
// doc is returned unchanged and false.
func InjectSnippet(doc, snippet string) (string, bool) {
	idx := strings.Index(doc, HeadEndMarker)
	if idx < 0 {
		return doc, false
	}
	return doc[:idx] + snippet + "\n" + doc[idx:], true
}
