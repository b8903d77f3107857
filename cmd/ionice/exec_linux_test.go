package main

import (
	"bytes"
	"os"
	"os/exec"
	"testing"

	"github.com/function61/ionice/pkg/ionrun"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lookup fails before unix.Exec, so these never replace the test binary

func TestProcessImageReplacerMissingProgram(t *testing.T) {
	for _, program := range []string{"no-such-program-xyz", "./no/such/path"} {
		t.Run(program, func(t *testing.T) {
			err := processImageReplacer{}.Exec([]string{program})
			require.Error(t, err)

			assert.True(t, errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist), err.Error())
			assert.Equal(t, ionrun.ExitNotFound, exitCodeOfExec(program))
		})
	}
}

// exit code of the whole run when program can't be exec'd
func exitCodeOfExec(program string) int {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	return run(
		[]string{"ionice", "-t", program, "arg"},
		newFakes().prio,
		processImageReplacer{},
		stdout,
		stderr)
}

func TestRunMissingProgramReportsIt(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	fakes := newFakes()

	exitCode := run(
		[]string{"ionice", "no-such-program-xyz"},
		fakes.prio,
		processImageReplacer{},
		stdout,
		stderr)

	assert.Equal(t, ionrun.ExitNotFound, exitCode)
	assert.Contains(t, stderr.String(), "failed to execute no-such-program-xyz")
	assert.Len(t, fakes.prio.calls, 1)
}
