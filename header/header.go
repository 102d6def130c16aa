// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package header replaces license headers delimited by a pair of marker
// comments in source files.
//
// Files are treated as opaque text. A header block is everything strictly
// between the first start marker and the first end marker that follows it.
package header

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedMarkers is returned when content has a start marker that is
	// not followed by an end marker, or has a second start marker inside the
	// header block.
	ErrMalformedMarkers = errors.New("malformed header markers")
	// ErrInvalidDelimiters is returned for a Delimiters value that cannot
	// bound a header block.
	ErrInvalidDelimiters = errors.New("invalid delimiters")
	// ErrInvalidName is returned when a file name can't be substituted into
	// a template without breaking it.
	ErrInvalidName = errors.New("invalid file name")
)

// Delimiters is the pair of literal markers that bound a header block.
type Delimiters struct {
	Start string
	End   string
}

// Validate reports whether d can bound a header block.
func (d Delimiters) Validate() error {
	switch {
	case d.Start == "" || d.End == "":
		return fmt.Errorf("%w: empty marker", ErrInvalidDelimiters)
	case d.Start == d.End:
		return fmt.Errorf("%w: start and end markers are equal", ErrInvalidDelimiters)
	case strings.Contains(d.Start, d.End) || strings.Contains(d.End, d.Start):
		return fmt.Errorf("%w: one marker contains the other", ErrInvalidDelimiters)
	}
	return nil
}

// Span is content split around a header block.
type Span struct {
	Prefix   string // up to and including the start marker
	Interior string // strictly between the markers
	Suffix   string // from the end marker onward, inclusive
}

// String reassembles the span.
func (s Span) String() string { return s.Prefix + s.Interior + s.Suffix }

// Split splits content around the header block bounded by d.
//
// ok is false if content has no start marker. The end marker is searched
// only after the start marker.
func Split(content string, d Delimiters) (span Span, ok bool, err error) {
	start := strings.Index(content, d.Start)
	if start < 0 {
		return Span{}, false, nil
	}
	afterStart := start + len(d.Start)

	end := strings.Index(content[afterStart:], d.End)
	if end < 0 {
		return Span{}, true, fmt.Errorf("%w: no %q after %q", ErrMalformedMarkers, d.End, d.Start)
	}
	end += afterStart

	interior := content[afterStart:end]
	if strings.Contains(interior, d.Start) {
		return Span{}, true, fmt.Errorf("%w: %q repeated before %q", ErrMalformedMarkers, d.Start, d.End)
	}

	return Span{
		Prefix:   content[:afterStart],
		Interior: interior,
		Suffix:   content[end:],
	}, true, nil
}
