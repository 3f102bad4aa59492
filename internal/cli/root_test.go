package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "staffbook", cmd.Use)
	assert.Contains(t, cmd.Long, "employee records")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"add", "list", "find", "update", "delete", "batch"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	fileFlag := cmd.PersistentFlags().Lookup("file")
	require.NotNil(t, fileFlag)
	assert.Equal(t, "employees.json", fileFlag.DefValue)

	backendFlag := cmd.PersistentFlags().Lookup("backend")
	require.NotNil(t, backendFlag)
	assert.Equal(t, "file", backendFlag.DefValue)
}

func TestInvalidFormatIsCommandError(t *testing.T) {
	res := runCLI(t, "list", "--file", rosterPath(t), "--format", "xml")

	require.Error(t, res.Err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.Err))
	assert.Contains(t, res.Err.Error(), "invalid format")
}

func TestUnknownFlagIsCommandError(t *testing.T) {
	res := runCLI(t, "list", "--bogus")

	require.Error(t, res.Err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.Err))
	assert.False(t, WasReported(res.Err))
}

func TestUnknownBackendIsCommandError(t *testing.T) {
	res := runCLI(t, "list", "--file", rosterPath(t), "--backend", "tape")

	require.Error(t, res.Err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.Err))
}
