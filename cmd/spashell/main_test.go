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
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("serving", func() {

	var log *slog.Logger

	BeforeEach(func() {
		log = slog.New(slog.NewTextHandler(GinkgoWriter, nil))
	})

	It("serves until cancelled", func(ctx context.Context) {
		ln := Successful(net.Listen("tcp", "127.0.0.1:0"))
		servectx, cancel := context.WithCancel(ctx)
		defer cancel()
		done := make(chan error, 1)
		go func() {
			defer GinkgoRecover()
			done <- serve(servectx, ln, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "CANARY")
			}), log)
		}()

		resp := Successful(http.Get("http://" + ln.Addr().String() + "/"))
		body := Successful(io.ReadAll(resp.Body))
		_ = resp.Body.Close()
		Expect(string(body)).To(Equal("CANARY"))

		cancel()
		Eventually(done).WithContext(ctx).Should(Receive(BeNil()))
	})

	It("refuses to start without a root document", func(ctx context.Context) {
		dir := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(dir, "app.js"), []byte("CANARY"), 0o644)).To(Succeed())
		err := run(ctx, &options{listen: "127.0.0.1:0", dir: dir, root: "index.html"}, log)
		Expect(err).To(MatchError(ContainSubstring("root document not found")))
	})

	It("refuses to start from a missing directory", func(ctx context.Context) {
		err := run(ctx, &options{listen: "127.0.0.1:0", dir: "/nonexisting-spa-dir", root: "index.html"}, log)
		Expect(err).To(HaveOccurred())
	})

	It("runs with the embedded SPA until cancelled", func(ctx context.Context) {
		runctx, cancel := context.WithCancel(ctx)
		cancel()
		Expect(run(runctx, &options{listen: "127.0.0.1:0", root: "index.html"}, log)).To(Succeed())
	})

})
