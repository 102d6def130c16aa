// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package walk enumerates candidate files in a project tree.
package walk

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDir is yielded when the root is not a directory.
var ErrNotDir = errors.New("not a directory")

// Options select which files Files yields.
type Options struct {
	// Exclude lists substrings of slash-separated directory paths, as
	// yielded and with a trailing slash, that exclude a whole subtree.
	// Matching is case-sensitive and not aware of path segments, so
	// "node_modules" excludes "a/node_modules/b" and "views/public/" excludes
	// "views/public" but not "views/public-backup". The root itself is never
	// excluded.
	Exclude []string
	// Extensions lists file name suffixes to include, compared
	// case-insensitively.
	Extensions []string
}

// NormalizeExtensions lowercases exts and makes sure each starts with a dot.
// Empty entries are dropped.
func NormalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func (o Options) excluded(dir string) bool {
	dir = filepath.ToSlash(dir) + "/"
	for _, frag := range o.Exclude {
		if frag != "" && strings.Contains(dir, frag) {
			return true
		}
	}
	return false
}

func (o Options) matches(name string, exts []string) bool {
	name = strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Files returns a sequence of candidate files under root. Every range over
// it walks the tree again.
//
// A root that is a symbolic link is followed; links below it are not.
// Yielded paths start with root as given. Excluded directories are skipped
// before they are read. Errors reading a directory are yielded together
// with the offending path and the walk goes on with the rest of the tree.
func Files(root string, opts Options) iter.Seq2[string, error] {
	exts := NormalizeExtensions(opts.Extensions)
	return func(yield func(string, error) bool) {
		if len(exts) == 0 {
			return
		}
		target, err := filepath.EvalSymlinks(root)
		if err != nil {
			yield(root, err)
			return
		}
		info, err := os.Stat(target)
		if err != nil {
			yield(root, err)
			return
		}
		if !info.IsDir() {
			yield(root, fmt.Errorf("%s: %w", root, ErrNotDir))
			return
		}

		filepath.WalkDir(target, func(p string, d fs.DirEntry, err error) error {
			// Report paths under root, not under its resolved target.
			path := root
			if rel, relErr := filepath.Rel(target, p); relErr == nil && rel != "." {
				path = filepath.Join(root, rel)
			}

			if err != nil {
				if !yield(path, err) {
					return filepath.SkipAll
				}
				// WalkDir reports a failed ReadDir after visiting the
				// directory itself; skip whatever couldn't be listed.
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if p != target && opts.excluded(path) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || !opts.matches(d.Name(), exts) {
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
