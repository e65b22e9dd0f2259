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
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"
	"github.com/thediveo/spashell"
)

// options control where the SPA gets served from and how.
type options struct {
	listen   string
	dir      string
	root     string
	logLevel slog.Level
}

// parseFlags parses the command line arguments, without the program name.
func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := pflag.NewFlagSet("spashell", pflag.ContinueOnError)
	fs.StringVar(&opts.listen, "listen", ":8080",
		"address to serve the SPA on")
	fs.StringVar(&opts.dir, "dir", "",
		"serve the SPA from this directory instead of the embedded build")
	fs.StringVar(&opts.root, "root", spashell.DefaultRootDocument,
		"name of the SPA's root document")
	level := fs.String("log-level", "info",
		"minimum log level: debug, info, warn, or error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := opts.logLevel.UnmarshalText([]byte(*level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return opts, nil
}
