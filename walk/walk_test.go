// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package walk

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"go.astrophena.name/headersync/testutil"
)

func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("MkdirAll(%q): %v", path, err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile(%q): %v", path, err)
		}
	}
	return root
}

func collect(t *testing.T, root string, opts Options) []string {
	t.Helper()
	var got []string
	for path, err := range Files(root, opts) {
		if err != nil {
			t.Fatalf("Files(): %v", err)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			t.Fatalf("Rel(%q): %v", path, err)
		}
		got = append(got, filepath.ToSlash(rel))
	}
	slices.Sort(got)
	return got
}

var tree = []string{
	"serve.js",
	"README.md",
	"lib/config.js",
	"lib/api/api_base.js",
	"lib/api/API_USERS.JS",
	"lib/api/test/utils.js",
	"lib/storage/notes.txt",
	"node_modules/express/index.js",
	"lib/node_modules/dep/index.js",
	"views/public/js/app.js",
	"views/public-backup/app.js",
	"views/index.js",
}

func TestFiles(t *testing.T) {
	cases := map[string]struct {
		opts Options
		want []string
	}{
		"default exclusions": {
			opts: Options{
				Exclude:    []string{"node_modules", "views/public/"},
				Extensions: []string{".js"},
			},
			want: []string{
				"lib/api/API_USERS.JS",
				"lib/api/api_base.js",
				"lib/api/test/utils.js",
				"lib/config.js",
				"serve.js",
				"views/index.js",
				"views/public-backup/app.js",
			},
		},
		"coarse fragment": {
			opts: Options{
				Exclude:    []string{"views/public"},
				Extensions: []string{"js"},
			},
			want: []string{
				"lib/api/API_USERS.JS",
				"lib/api/api_base.js",
				"lib/api/test/utils.js",
				"lib/config.js",
				"lib/node_modules/dep/index.js",
				"node_modules/express/index.js",
				"serve.js",
				"views/index.js",
			},
		},
		"several extensions": {
			opts: Options{
				Exclude:    []string{"node_modules", "views", "api/"},
				Extensions: []string{".MD", ".txt"},
			},
			want: []string{
				"README.md",
				"lib/storage/notes.txt",
			},
		},
		"no extensions": {
			opts: Options{Exclude: []string{"node_modules"}},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			root := makeTree(t, tree...)
			testutil.AssertEqual(t, collect(t, root, tc.opts), tc.want)
		})
	}
}

func TestFilesSubdirectoryRoot(t *testing.T) {
	root := makeTree(t, tree...)
	opts := Options{Exclude: []string{"node_modules", "views/public/"}, Extensions: []string{".js"}}
	want := []string{"index.js", "public-backup/app.js"}

	t.Run("absolute", func(t *testing.T) {
		testutil.AssertEqual(t, collect(t, filepath.Join(root, "views"), opts), want)
	})

	t.Run("relative", func(t *testing.T) {
		t.Chdir(root)
		var got []string
		for path, err := range Files("views", opts) {
			if err != nil {
				t.Fatalf("Files(): %v", err)
			}
			got = append(got, filepath.ToSlash(path))
		}
		slices.Sort(got)
		testutil.AssertEqual(t, got, []string{"views/index.js", "views/public-backup/app.js"})
	})

	t.Run("root inside excluded path", func(t *testing.T) {
		root := makeTree(t, "views/public/top.js", "views/public/js/app.js")
		// Only the root itself escapes the exclusion.
		testutil.AssertEqual(t, collect(t, filepath.Join(root, "views", "public"), opts), []string{"top.js"})
	})
}

func TestFilesSymlinkRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symbolic links need extra privileges on Windows")
	}
	target := makeTree(t, "a.js", "lib/b.js", "node_modules/c.js")
	link := filepath.Join(t.TempDir(), "project")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("Symlink(): %v", err)
	}

	var got []string
	for path, err := range Files(link, Options{Exclude: []string{"node_modules"}, Extensions: []string{".js"}}) {
		if err != nil {
			t.Fatalf("Files(): %v", err)
		}
		got = append(got, path)
	}
	slices.Sort(got)
	testutil.AssertEqual(t, got, []string{
		filepath.Join(link, "a.js"),
		filepath.Join(link, "lib", "b.js"),
	})
}

func TestFilesRootNotDirectory(t *testing.T) {
	root := makeTree(t, "a.js")
	file := filepath.Join(root, "a.js")

	var errs []error
	for path, err := range Files(file, Options{Extensions: []string{".js"}}) {
		if err == nil {
			t.Fatalf("unexpected path %q", path)
		}
		errs = append(errs, err)
	}
	testutil.AssertEqual(t, len(errs), 1)
	if !errors.Is(errs[0], ErrNotDir) {
		t.Fatalf("want ErrNotDir, got %v", errs[0])
	}
}

func TestFilesExcludedNeverYielded(t *testing.T) {
	root := makeTree(t, tree...)
	opts := Options{Exclude: []string{"node_modules"}, Extensions: []string{".js"}}
	for path, err := range Files(root, opts) {
		if err != nil {
			t.Fatalf("Files(): %v", err)
		}
		rel, _ := filepath.Rel(root, path)
		for dir := filepath.Dir(rel); dir != "."; dir = filepath.Dir(dir) {
			if filepath.Base(dir) == "node_modules" {
				t.Fatalf("yielded path %q under excluded directory", rel)
			}
		}
	}
}

func TestFilesExactlyOnce(t *testing.T) {
	root := makeTree(t, tree...)
	opts := Options{Extensions: []string{".js"}}

	seen := make(map[string]int)
	for path, err := range Files(root, opts) {
		if err != nil {
			t.Fatalf("Files(): %v", err)
		}
		seen[path]++
	}

	var want int
	for _, f := range tree {
		if filepath.Ext(f) == ".js" || filepath.Ext(f) == ".JS" {
			want++
		}
	}
	testutil.AssertEqual(t, len(seen), want)
	for path, n := range seen {
		if n != 1 {
			t.Errorf("%s yielded %d times", path, n)
		}
	}
}

func TestFilesRestartable(t *testing.T) {
	root := makeTree(t, "a.js", "b/c.js")
	seq := Files(root, Options{Extensions: []string{".js"}})

	count := func() int {
		var n int
		for range seq {
			n++
		}
		return n
	}
	testutil.AssertEqual(t, count(), 2)
	testutil.AssertEqual(t, count(), 2)
}

func TestFilesStopEarly(t *testing.T) {
	root := makeTree(t, "a.js", "b.js", "c.js")
	var n int
	for range Files(root, Options{Extensions: []string{".js"}}) {
		n++
		break
	}
	testutil.AssertEqual(t, n, 1)
}

func TestFilesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nope")
	var errs int
	for path, err := range Files(root, Options{Extensions: []string{".js"}}) {
		if err == nil {
			t.Fatalf("unexpected path %q", path)
		}
		errs++
	}
	testutil.AssertEqual(t, errs, 1)
}

func TestNormalizeExtensions(t *testing.T) {
	got := NormalizeExtensions([]string{".JS", "ts", "", " .Go "})
	testutil.AssertEqual(t, got, []string{".js", ".ts", ".go"})
}
