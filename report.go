// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package headersync

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"go.astrophena.name/headersync/header"
)

// Report is the result of a run. Paths are in walk order.
type Report struct {
	Updated   []string
	Unchanged []string
	// Missing lists files without a start marker.
	Missing []string
	// Malformed lists files whose markers couldn't be split unambiguously.
	Malformed []FileError
	// Failed lists files and directories that couldn't be read or written.
	Failed []FileError
}

// FileError is a problem with a single file.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string { return e.Err.Error() }
func (e FileError) Unwrap() error { return e.Err }

func (r *Report) add(path string, o header.Outcome, err error) {
	switch o {
	case header.Updated:
		r.Updated = append(r.Updated, path)
	case header.Unchanged:
		r.Unchanged = append(r.Unchanged, path)
	case header.MissingMarker:
		r.Missing = append(r.Missing, path)
	case header.MalformedMarkers:
		r.Malformed = append(r.Malformed, FileError{Path: path, Err: err})
	default:
		r.Failed = append(r.Failed, FileError{Path: path, Err: err})
	}
}

// Clean reports whether the run found nothing to change or complain about.
func (r *Report) Clean() bool {
	return len(r.Updated) == 0 && len(r.Missing) == 0 && len(r.Malformed) == 0 && len(r.Failed) == 0
}

// Err returns an error listing every malformed or failed file, or nil.
func (r *Report) Err() error {
	var merr *multierror.Error
	for _, e := range r.Malformed {
		merr = multierror.Append(merr, e)
	}
	for _, e := range r.Failed {
		merr = multierror.Append(merr, e)
	}
	return merr.ErrorOrNil()
}

// Print writes the list of files without a header to w, followed by the
// files with malformed markers, if any.
func (r *Report) Print(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Files without license header:"); err != nil {
		return err
	}
	for _, path := range r.Missing {
		if _, err := fmt.Fprintln(w, path); err != nil {
			return err
		}
	}
	if len(r.Malformed) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Files with malformed license header markers:"); err != nil {
		return err
	}
	for _, e := range r.Malformed {
		if _, err := fmt.Fprintln(w, e.Path); err != nil {
			return err
		}
	}
	return nil
}
