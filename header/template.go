// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPlaceholder is replaced with the file's base name when a template is
// rendered.
const DefaultPlaceholder = "__file__"

// Template is a header text parameterized by file name. It is immutable.
type Template struct {
	text        string
	placeholder string
	delims      Delimiters
}

// NewTemplate returns a Template that substitutes placeholder in text. The
// text must not contain either of the delimiters, since the rendered header
// is placed between them.
func NewTemplate(text, placeholder string, d Delimiters) (*Template, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if placeholder == "" {
		return nil, errors.New("template: empty placeholder")
	}
	if strings.Contains(text, d.Start) || strings.Contains(text, d.End) {
		return nil, fmt.Errorf("template: contains a header marker: %w", ErrInvalidDelimiters)
	}
	return &Template{text: text, placeholder: placeholder, delims: d}, nil
}

// Delimiters returns the markers the template was validated against.
func (t *Template) Delimiters() Delimiters { return t.delims }

// Render returns the template text with the placeholder replaced by name.
func (t *Template) Render(name string) (string, error) {
	if strings.ContainsAny(name, "\r\n") {
		return "", fmt.Errorf("%w: %q contains a line break", ErrInvalidName, name)
	}
	out := strings.ReplaceAll(t.text, t.placeholder, name)
	// A name may complete a marker together with the surrounding text.
	if strings.Contains(out, t.delims.Start) || strings.Contains(out, t.delims.End) {
		return "", fmt.Errorf("%w: %q introduces a header marker", ErrInvalidName, name)
	}
	return out, nil
}
