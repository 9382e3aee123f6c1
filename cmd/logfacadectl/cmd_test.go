package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// resetEmitFlags restores emit's flags once the test ends so values do not
// leak into the next command run.
func resetEmitFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		emitCmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	})
}

func TestRootCommand(t *testing.T) {
	require.NotNil(t, rootCmd)
	assert.Equal(t, "logfacadectl", rootCmd.Use)

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"emit", "levels"} {
		assert.True(t, names[want], "subcommand %q not found", want)
	}
}

func TestLevelsCommand(t *testing.T) {
	out, err := executeCommand(rootCmd, "levels")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "0\ttrace", lines[0])
	assert.Equal(t, "3\twarning", lines[3])
	assert.Equal(t, "6\toff", lines[6])
}

func TestEmitCommand_FileSink(t *testing.T) {
	resetEmitFlags(t)
	path := filepath.Join(t.TempDir(), "emit.log")

	_, err := executeCommand(rootCmd, "emit",
		"--sink", "file",
		"--file", path,
		"--force-flush",
		"--pattern", "%l %v",
		"--level", "warning",
		"first", "second",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "warning first\nwarning second\n", string(data))
}

func TestEmitCommand_CategoryFlag(t *testing.T) {
	resetEmitFlags(t)
	dir := t.TempDir()

	blocked := filepath.Join(dir, "blocked.log")
	_, err := executeCommand(rootCmd, "emit",
		"--sink", "file", "--file", blocked, "--force-flush",
		"--pattern", "%v", "--mask", "1", "--flag", "2",
		"network",
	)
	require.NoError(t, err)
	data, err := os.ReadFile(blocked)
	require.NoError(t, err)
	assert.Empty(t, string(data), "flag outside the mask writes nothing")

	passed := filepath.Join(dir, "passed.log")
	_, err = executeCommand(rootCmd, "emit",
		"--sink", "file", "--file", passed, "--force-flush",
		"--pattern", "[%l]%v", "--mask", "3", "--flag", "2", "--level", "error",
		"network",
	)
	require.NoError(t, err)
	data, err = os.ReadFile(passed)
	require.NoError(t, err)
	assert.Equal(t, "[]network\n", string(data), "category records carry no level")
}
