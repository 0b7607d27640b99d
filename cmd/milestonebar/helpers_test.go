package main

import (
	"bytes"
	"testing"

	"github.com/AyoAlfonso/milestone-progress-bar/internal/testutil"
)

// setupBoard creates a temp board root with the sample manifest.
func setupBoard(t *testing.T) string {
	t.Helper()
	return testutil.WriteBoard(t, testutil.SampleBoard)
}

// execute runs the CLI with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out, _, err := executeStderr(t, args...)
	return out, err
}

// executeStderr runs the CLI with args and returns stdout and stderr.
func executeStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}
