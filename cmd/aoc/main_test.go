package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "aoc.toml"), nil, 0o644))
	dir := filepath.Join(root, "Solutions2025", "Day01")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "input1.txt"), []byte("4\n2\n"), 0o644))

	var out, errW bytes.Buffer
	cmd := newRootCmd(strings.NewReader("11\nc11\nexit\n"), &out, &errW)
	cmd.SetArgs([]string{"--root", root, "--log-level", "error"})

	require.NoError(t, cmd.Execute(), errW.String())

	assert.Contains(t, out.String(), "Output: 42")
	assert.Contains(t, out.String(), "All versions returned the same result: 42")
}

func TestRootCmd_Errors(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "aoc.toml"), nil, 0o644))

	tests := []struct {
		name string
		args []string
	}{
		{"missing root", []string{"--root", t.TempDir()}},
		{"bad log level", []string{"--root", root, "--log-level", "loud"}},
		{"bad log format", []string{"--root", root, "--log-format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errW bytes.Buffer
			cmd := newRootCmd(strings.NewReader(""), &out, &errW)
			cmd.SetArgs(tt.args)
			assert.Error(t, cmd.Execute())
			assert.NotEmpty(t, errW.String())
		})
	}
}
