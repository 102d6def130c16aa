// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package headersync keeps license headers in a project tree up to date.
//
// A run walks the tree, rewrites every header block found between the
// configured markers and reports the files that have no header at all.
package headersync

import (
	"context"
	"log/slog"

	"go.astrophena.name/headersync/header"
	"go.astrophena.name/headersync/logger"
	"go.astrophena.name/headersync/walk"
)

// Options configure a run.
type Options struct {
	// Root is the directory to walk.
	Root string
	// Walk selects candidate files.
	Walk walk.Options
	// Template is rendered into each header block.
	Template *header.Template
	// DryRun reports what would change without writing.
	DryRun bool
}

// Run synchronizes the headers of every candidate file under opts.Root.
//
// Problems with individual files are recorded in the report and never stop
// the run. Run returns early only when ctx is done, together with the report
// built so far.
func Run(ctx context.Context, opts Options) (*Report, error) {
	r := new(Report)
	sopts := header.Options{DryRun: opts.DryRun}

	for path, err := range walk.Files(opts.Root, opts.Walk) {
		if ctx.Err() != nil {
			return r, ctx.Err()
		}
		if err != nil {
			logger.Warn(ctx, "cannot read directory", slog.String("path", path), logger.Err(err))
			r.Failed = append(r.Failed, FileError{Path: path, Err: err})
			continue
		}

		outcome, err := header.Synchronize(path, opts.Template, sopts)
		r.add(path, outcome, err)

		attrs := []slog.Attr{slog.String("path", path), slog.String("status", outcome.String())}
		switch outcome {
		case header.Updated:
			msg := "updated"
			if opts.DryRun {
				msg = "would update"
			}
			logger.Info(ctx, msg, attrs...)
		case header.Unchanged:
			logger.Debug(ctx, "up to date", attrs...)
		case header.MissingMarker:
			// Reported in aggregate.
		case header.MalformedMarkers:
			logger.Warn(ctx, "malformed header markers", append(attrs, logger.Err(err))...)
		case header.ReadFailed:
			logger.Warn(ctx, "cannot read file", append(attrs, logger.Err(err))...)
		case header.WriteFailed:
			logger.Warn(ctx, "cannot write file", append(attrs, logger.Err(err))...)
		default:
			logger.Warn(ctx, "cannot render header", append(attrs, logger.Err(err))...)
		}
	}

	return r, nil
}
