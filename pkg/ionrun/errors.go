package ionrun

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	ExitFailure       = 1
	ExitCannotExecute = 126
	ExitNotFound      = 127
)

var ErrBadUsage = errors.New("bad usage")

// error that dictates the process' exit code
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitWith(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// 1 for errors that don't say otherwise
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// mirrors shell convention: 127 if the program wasn't found, 126 if it was
// found but couldn't be run
func execFailed(program string, err error) error {
	code := ExitCannotExecute
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		code = ExitNotFound
	}

	return exitWith(code, errors.Wrapf(err, "failed to execute %s", program))
}
