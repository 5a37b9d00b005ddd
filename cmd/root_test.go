package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns everything written to stdout and
// stderr.
func execute(t *testing.T, args ...string) string {
	t.Helper()

	// Flag values outlive a single execution.
	cfgPath = ""
	exitCode = 0
	if f := rootCmd.Flags().Lookup("version"); f != nil {
		require.NoError(t, f.Value.Set("false"))
	}

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "minish v0.0.1\n", execute(t, "--version"))
	assert.Equal(t, "minish v0.0.1\n", execute(t, "-v"))
}

func TestScript(t *testing.T) {
	script := filepath.Join(t.TempDir(), "script.sh")
	writeFile(t, script, "#!/usr/bin/env minish\nset\nexit\nset b=2\n")

	t.Run("arguments after the script are positional", func(t *testing.T) {
		out := execute(t, script, "x", "-y", "--version")

		assert.Equal(t, "set 0=\"x\"\nset 1=\"-y\"\nset 2=\"--version\"\n", out)
		assert.Equal(t, 0, exitCode)
	})

	t.Run("missing", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.sh")

		assert.Equal(t, missing+" not found\n", execute(t, missing))
		assert.Equal(t, 1, exitCode)
	})
}

func TestBuiltins(t *testing.T) {
	out := execute(t, "builtins")

	assert.Equal(t, "cd\nexit\nexport\nhelp\nhistory\npass\nset\nunexport\nunset\n", out)
}

func TestEventLog(t *testing.T) {
	dir := t.TempDir()

	out := execute(t, "init", dir)
	assert.Contains(t, out, "Writing "+filepath.Join(dir, "config.yaml"))

	cfgFile := filepath.Join(dir, "config.yaml")
	contents, err := os.ReadFile(cfgFile)
	require.NoError(t, err)
	writeFile(t, cfgFile, strings.Replace(string(contents), `event_log: ""`, `event_log: events.log`, 1))

	script := filepath.Join(dir, "script.sh")
	writeFile(t, script, "set a=1\nnosuchcommand-xyz\nset a\n")

	out = execute(t, "--config", dir, script)
	assert.Equal(t, "nosuchcommand-xyz: command not found\nSyntax error, expecting '='\n", out)

	report := execute(t, "logs", "report", filepath.Join(dir, "events.log"))
	assert.Contains(t, report, "log_entries: 4\n")
	assert.Contains(t, report, "nosuchcommand-xyz: 1\n")
	assert.Contains(t, report, "CommandNotFound: 1\n")
	assert.Contains(t, report, "script: 1\n")
}
