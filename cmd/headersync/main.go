// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"go.astrophena.name/headersync"
	"go.astrophena.name/headersync/cli"
	"go.astrophena.name/headersync/config"
	"go.astrophena.name/headersync/logger"
)

func main() { cli.Main(new(app)) }

var errCheckFailed = errors.New("license headers are not up to date")

type app struct {
	configPath string
	root       string
	dry        bool
	check      bool
	json       bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.configPath, "config", config.DefaultPath, "Read configuration from `file`.")
	fs.StringVar(&a.root, "root", "", "Walk `dir` instead of the configured root.")
	fs.BoolVar(&a.dry, "dry", false, "Print the files that would have their header updated, without making changes.")
	fs.BoolVar(&a.check, "check", false, "Don't write anything; fail if any file needs updating or has no header.")
	fs.BoolVar(&a.json, "json", false, "Log in JSON format.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if a.json {
		opts := env.LoggerOptions()
		opts.JSON = true
		opts.Level = logger.Get(ctx).Level.Level()
		ctx = logger.Put(ctx, logger.New(env.Stderr, opts))
	}

	cfg, err := config.Load(a.configPath, env.Getenv)
	if err != nil {
		return err
	}

	root := cfg.Root
	switch {
	case len(env.Args) > 1:
		return fmt.Errorf("%w: want at most one root directory, got %d", cli.ErrInvalidArgs, len(env.Args))
	case len(env.Args) == 1 && a.root != "":
		return fmt.Errorf("%w: root given both as -root and as an argument", cli.ErrInvalidArgs)
	case len(env.Args) == 1:
		root = env.Args[0]
	case a.root != "":
		root = a.root
	}

	tmpl, err := cfg.HeaderTemplate()
	if err != nil {
		return err
	}

	r, err := headersync.Run(ctx, headersync.Options{
		Root:     root,
		Walk:     cfg.WalkOptions(),
		Template: tmpl,
		DryRun:   a.dry || a.check,
	})
	if err != nil {
		return err
	}

	if err := r.Print(env.Stdout); err != nil {
		return err
	}

	if a.check && !r.Clean() {
		return errCheckFailed
	}
	// Problems were logged as they happened; make the exit status reflect them.
	if err := r.Err(); err != nil {
		return cli.Silent(err)
	}
	return nil
}
