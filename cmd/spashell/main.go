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
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thediveo/spashell"
	"go.uber.org/automaxprocs/maxprocs"
)

// shutdownGrace is how long in-flight requests may take to finish when
// shutting down.
const shutdownGrace = 5 * time.Second

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.logLevel}))

	// maxprocs.Set only fails on an invalid GOMAXPROCS env var, in which case
	// the runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug(fmt.Sprintf(format, args...))
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, opts, log); err != nil {
		log.Error("spashell failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run prepares the SPA handler and serves it until ctx is done.
func run(ctx context.Context, opts *options, log *slog.Logger) error {
	store, err := assetStore(opts.dir)
	if err != nil {
		return err
	}
	spa := spashell.NewSPAHandler(store,
		spashell.WithRootDocument(opts.root),
		spashell.WithLogger(log))
	// Refuse to start with a broken SPA build.
	if err := spa.Preload(); err != nil {
		return err
	}
	ln, err := net.Listen("tcp", opts.listen)
	if err != nil {
		return err
	}
	return serve(ctx, ln, newRouter(spa, log), log)
}

// serve serves HTTP requests on ln until ctx is done, then gracefully shuts
// down. It always closes ln.
func serve(ctx context.Context, ln net.Listener, handler http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ln)
	}()
	log.Info("serving SPA", slog.String("address", ln.Addr().String()))

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-done; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
