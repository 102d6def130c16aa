// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Headersync keeps license headers in source files up to date.

It walks a directory tree and looks for a header block in every file with a
configured extension. A header block is the text between a start marker and
the end marker that follows it, by default

	 * |-- copyright and license --|
	 ...
	 * |-- end copyright and license --|

The text between the markers is replaced with the header template, where the
placeholder __file__ is substituted with the file's name. Updated files are
logged as they are written. Files without a header block are listed at the
end; they are never modified. Files where the end marker doesn't follow the
start marker are reported as malformed and left alone too.

Directories whose path contains one of the exclusion fragments are skipped
entirely. By default node_modules and views/public/ are excluded.

The tool is configured through a .devtools/config.txtar file in the project's
root directory. This file is a txtar archive and can contain the following
files:

  - headersync/template.txt: The header template. Required.
  - headersync/config.yaml: Optional settings: root, delimiters (start and
    end), placeholder, extensions and exclude.

Usage:

	$ headersync [flags] [root]

Use -dry to see what would change, or -check in CI to fail when any file
needs updating or lacks a header.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/headersync/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
