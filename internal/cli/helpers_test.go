package cli

import (
	"bytes"
	"path/filepath"
	"testing"
)

// cliResult captures one command execution.
type cliResult struct {
	Stdout string
	Stderr string
	Err    error
}

// runCLI executes the root command with args, isolated from any user config.
func runCLI(t *testing.T, args ...string) cliResult {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := NewRootCommand()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// rosterPath returns a fresh roster file path in a temp dir.
func rosterPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "employees.json")
}

// mustRun runs the CLI and fails the test on error.
func mustRun(t *testing.T, args ...string) cliResult {
	t.Helper()
	res := runCLI(t, args...)
	if res.Err != nil {
		t.Fatalf("staffbook %v failed: %v\nstdout: %s\nstderr: %s", args, res.Err, res.Stdout, res.Stderr)
	}
	return res
}
