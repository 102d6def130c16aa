// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// Outcome is the result of synchronizing a single file.
type Outcome int

const (
	// Updated means the header block was rewritten.
	Updated Outcome = iota
	// Unchanged means the header block already matched the template.
	Unchanged
	// MissingMarker means the file has no start marker.
	MissingMarker
	// MalformedMarkers means the markers can't be split unambiguously.
	MalformedMarkers
	// ReadFailed means the file couldn't be read.
	ReadFailed
	// WriteFailed means the new content couldn't be written.
	WriteFailed
	// RenderFailed means the template can't be rendered for the file's name.
	RenderFailed
)

var outcomeNames = [...]string{
	Updated:          "updated",
	Unchanged:        "unchanged",
	MissingMarker:    "missing",
	MalformedMarkers: "malformed",
	ReadFailed:       "read failed",
	WriteFailed:      "write failed",
	RenderFailed:     "render failed",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// Options control Synchronize.
type Options struct {
	// DryRun computes the outcome without writing anything.
	DryRun bool
}

// Synchronize replaces the header block of the file at path with tmpl
// rendered for the file's base name.
//
// A non-nil error is returned only for MalformedMarkers, ReadFailed,
// WriteFailed and RenderFailed outcomes. Files without a start marker are
// never written.
func Synchronize(path string, tmpl *Template, opts Options) (Outcome, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ReadFailed, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(b)

	span, ok, err := Split(content, tmpl.Delimiters())
	if !ok {
		return MissingMarker, nil
	}
	if err != nil {
		return MalformedMarkers, fmt.Errorf("%s: %w", path, err)
	}

	rendered, err := tmpl.Render(filepath.Base(path))
	if err != nil {
		return RenderFailed, fmt.Errorf("%s: %w", path, err)
	}
	span.Interior = rendered
	out := span.String()

	if out == content {
		return Unchanged, nil
	}
	if opts.DryRun {
		return Updated, nil
	}
	if err := atomic.WriteFile(path, strings.NewReader(out)); err != nil {
		return WriteFailed, fmt.Errorf("writing %s: %w", path, err)
	}
	return Updated, nil
}
