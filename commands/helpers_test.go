package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/anmitsu/go-shlex"
	"github.com/josephlewis42/minish/core/config"
	"github.com/josephlewis42/minish/core/env"
	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// testShell is a session with an isolated environment whose stdout and stderr
// are captured in out.
type testShell struct {
	*Shell
	out *bytes.Buffer
}

func newTestShell(t *testing.T, environ ...string) *testShell {
	t.Helper()

	out := &bytes.Buffer{}
	cfg := config.Default()
	cfg.Color = config.ColorNever

	sh := NewShell(Options{
		Vars:   env.NewIsolatedStore(environ),
		Fs:     afero.NewOsFs(),
		Config: cfg,
		Stdin:  strings.NewReader(""),
		Stdout: out,
		Stderr: out,
	})

	return &testShell{Shell: sh, out: out}
}

// run tokenizes and dispatches a line.
func (ts *testShell) run(t *testing.T, line string) Status {
	t.Helper()

	tokens, err := shlex.Split(line, true)
	require.NoError(t, err)
	return ts.Dispatch(tokens)
}

// output returns and clears everything written so far.
func (ts *testShell) output() string {
	defer ts.out.Reset()
	return ts.out.String()
}

// writeExecutable writes a /bin/sh script to dir/name.
func writeExecutable(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

// chdirCleanup restores the working directory after the test.
func chdirCleanup(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Chdir(wd)
	})
	return wd
}

type goldenTestSuite map[string]goldenTest

type goldenTest struct {
	// Lines are dispatched in order on a fresh shell.
	Lines []string
	// Environ seeds the isolated environment.
	Environ []string
}

func (gts goldenTestSuite) Run(t *testing.T) {
	t.Helper()

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	for tn, tc := range gts {
		tc := tc
		t.Run(tn, func(t *testing.T) {
			sh := newTestShell(t, tc.Environ...)
			for _, line := range tc.Lines {
				sh.run(t, line)
			}

			g.Assert(t, tn, sh.out.Bytes())
		})
	}
}
