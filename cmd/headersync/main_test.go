// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"

	"go.astrophena.name/headersync/cli"
	"go.astrophena.name/headersync/cli/clitest"
	"go.astrophena.name/headersync/header"
	"go.astrophena.name/headersync/testutil"
)

const configArchive = `-- headersync/template.txt --

 * @file __file__
`

const (
	staleJS   = "/*\n * |-- copyright and license --|\n * @file old.js\n * |-- end copyright and license --|\n */\n"
	currentJS = "/*\n * |-- copyright and license --|\n * @file a.js\n * |-- end copyright and license --|\n */\n"
	plainJS   = "console.log(1);\n"
	brokenJS  = "/*\n * |-- copyright and license --|\n */\n"
)

type project struct {
	config string
	root   string
}

func newProject(t *testing.T, files map[string]string) project {
	t.Helper()
	dir := t.TempDir()
	p := project{
		config: filepath.Join(dir, "config.txtar"),
		root:   filepath.Join(dir, "src"),
	}
	if err := os.WriteFile(p.config, []byte(configArchive), 0o644); err != nil {
		t.Fatal(err)
	}
	ar := new(txtar.Archive)
	for name, content := range files {
		ar.Files = append(ar.Files, txtar.File{Name: name, Data: []byte(content)})
	}
	testutil.ExtractTxtar(t, ar, "", p.root)
	return p
}

func (p project) read(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(p.root, name))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestRun(t *testing.T) {
	var (
		stale    = newProject(t, map[string]string{"a.js": staleJS, "b.js": plainJS, "notes.txt": plainJS})
		dry      = newProject(t, map[string]string{"a.js": staleJS})
		check    = newProject(t, map[string]string{"a.js": staleJS})
		clean    = newProject(t, map[string]string{"a.js": currentJS})
		jsonLogs = newProject(t, map[string]string{"a.js": staleJS})
		broken   = newProject(t, map[string]string{"a.js": brokenJS})
		byFlag   = newProject(t, map[string]string{"a.js": staleJS})
	)

	cases := map[string]clitest.Case[*app]{
		"updates headers and lists missing": {
			Args:         []string{"-config", stale.config, stale.root},
			WantInStdout: "Files without license header:\n" + filepath.Join(stale.root, "b.js") + "\n",
			WantInStderr: "updated",
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, stale.read(t, "a.js"), currentJS)
				testutil.AssertEqual(t, stale.read(t, "b.js"), plainJS)
			},
		},
		"root flag": {
			Args:         []string{"-config", byFlag.config, "-root", byFlag.root},
			WantInStderr: "updated",
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, byFlag.read(t, "a.js"), currentJS)
			},
		},
		"dry run": {
			Args:         []string{"-config", dry.config, "-dry", dry.root},
			WantInStderr: "would update",
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, dry.read(t, "a.js"), staleJS)
			},
		},
		"check fails on stale header": {
			Args:    []string{"-config", check.config, "-check", check.root},
			WantErr: errCheckFailed,
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, check.read(t, "a.js"), staleJS)
			},
		},
		"check passes": {
			Args:         []string{"-config", clean.config, "-check", clean.root},
			WantInStdout: "Files without license header:\n",
		},
		"json logs": {
			Args:         []string{"-config", jsonLogs.config, "-json", jsonLogs.root},
			WantInStderr: `"msg":"updated"`,
		},
		"malformed markers": {
			Args:         []string{"-config", broken.config, broken.root},
			WantErr:      header.ErrMalformedMarkers,
			WantInStdout: "Files with malformed license header markers:\n" + filepath.Join(broken.root, "a.js") + "\n",
			CheckFunc: func(t *testing.T, _ *app) {
				testutil.AssertEqual(t, broken.read(t, "a.js"), brokenJS)
			},
		},
		"too many arguments": {
			Args:    []string{"-config", stale.config, "a", "b"},
			WantErr: cli.ErrInvalidArgs,
		},
		"root twice": {
			Args:    []string{"-config", stale.config, "-root", "a", "b"},
			WantErr: cli.ErrInvalidArgs,
		},
		"missing config": {
			Args:    []string{"-config", filepath.Join(t.TempDir(), "nope.txtar")},
			WantErr: fs.ErrNotExist,
		},
	}

	clitest.Run(t, func(t *testing.T) *app { return new(app) }, cases)
}
