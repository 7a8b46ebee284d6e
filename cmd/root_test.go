package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/patterns/core/pluggable"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root, opts := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := execute(root, opts)
	return out.String(), err
}

func TestOneShotCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"furniture", "sofa"}, "sofa\n"},
		{[]string{"furniture", "anything-else"}, "none\n"},
		{[]string{"gui", "linux"}, "linux button pushed !\nlinux checkbox checked !\n"},
		{[]string{"product", "table"}, "Product is table\n"},
		{[]string{"calc", "sub", "6", "2"}, "a: 6 + b:2 = 8\n"},
		{[]string{"calc", "sum", "--", "-6", "2"}, "a: -6 - b:2 = -8\n"},
		{[]string{"calc", "div", "6", "0"}, "b:0 cannot be equal to 0.\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, "_"), func(t *testing.T) {
			got, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "", "gui", "beos")
	assert.ErrorIs(t, err, pluggable.ErrUnknownKey)

	_, err = run(t, "", "calc", "mul", "1", "2")
	assert.ErrorIs(t, err, pluggable.ErrUnknownKey)

	_, err = run(t, "", "calc", "div", "x", "2")
	assert.Error(t, err)

	_, err = run(t, "", "furniture")
	assert.Error(t, err)
}

func TestShellCommand(t *testing.T) {
	out, err := run(t, "calc 6 6\nuse div\ncalc 6 2\n", "shell")
	require.NoError(t, err)
	assert.Equal(t, "error: invalid state: strategy not set\na: 6 / b:2 = 3\n", out)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: error\nmetrics:\n  sinks:\n    - type: nop\n"), 0o644))
	out, err := run(t, "", "--config", path, "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "strategy: [div sub sum]")

	_, err = run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "keys")
	assert.Error(t, err)
}
