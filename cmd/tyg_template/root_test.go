package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with the given arguments, resetting
// package-level flag state first so tests stay independent.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	failBare = false
	fileFailBetter = false
	debug = false
	colorMode = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "fail")
}

func TestFatalLineBeginsWithProgramName(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	line := fatalLine(errors.New("boom"))
	require.Equal(t, "tyg_template: boom", line)
}

func TestRejectsInvalidColorMode(t *testing.T) {
	_, err := execute(t, "fail", "--color", "sometimes")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid color mode")
}
