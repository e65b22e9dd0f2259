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
	"bytes"
	"log/slog"
	"net/http"
	stdhttptest "net/http/httptest"

	"github.com/thediveo/spashell"
	"github.com/thediveo/spashell/test/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("router", func() {

	var logbuf *bytes.Buffer
	var router http.Handler

	BeforeEach(func() {
		logbuf = &bytes.Buffer{}
		log := slog.New(slog.NewTextHandler(logbuf, nil))
		spa := spashell.NewSPAHandler(Successful(assetStore("")),
			spashell.WithEnvLookup(func(string) (string, bool) { return "", false }))
		router = newRouter(spa, log)
	})

	DescribeTable("routes requests",
		func(method, path string, expectedStatus int, expectedBody OmegaMatcher) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, stdhttptest.NewRequest(method, path, nil))
			Expect(w.Code).To(Equal(expectedStatus))
			Expect(w.Body.String()).To(expectedBody)
		},
		Entry("health check", http.MethodGet, "/healthz", http.StatusOK, Equal("ok")),
		Entry("root", http.MethodGet, "/", http.StatusOK, ContainSubstring(`<div id="root">`)),
		Entry("client-side route", http.MethodGet, "/some/where", http.StatusOK, ContainSubstring(`<div id="root">`)),
		Entry("asset", http.MethodGet, "/assets/index.js", http.StatusOK, ContainSubstring("popstate")),
		Entry("underscore-prefixed chunk", http.MethodGet, "/assets/_render-helper.js", http.StatusOK,
			ContainSubstring("CANARY HELPER")),
		Entry("missing asset", http.MethodGet, "/assets/missing.js", http.StatusNotFound, Equal("404")),
		Entry("HEAD", http.MethodHead, "/", http.StatusOK, BeEmpty()),
		Entry("POST", http.MethodPost, "/", http.StatusMethodNotAllowed, ContainSubstring("405")),
	)

	It("logs requests", func() {
		router.ServeHTTP(httptest.NewRecorder(),
			stdhttptest.NewRequest(http.MethodGet, "/assets/missing.js", nil))
		Expect(logbuf.String()).To(And(
			ContainSubstring("msg=request"),
			ContainSubstring("method=GET path=/assets/missing.js status=404 bytes=3"),
		))
	})

})
