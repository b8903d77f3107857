package ionrun

import (
	"github.com/function61/ionice/pkg/ioprio"
	"github.com/pkg/errors"
)

type prioCall struct {
	Op     string
	Target ioprio.Target
	Value  ioprio.Value
}

// records calls, answers Get() from current (default best-effort 4)
type fakePrioritizer struct {
	calls   []prioCall
	current map[ioprio.Target]ioprio.Value
	getErr  map[ioprio.Target]error
	setErr  map[ioprio.Target]error
}

func newFakePrioritizer() *fakePrioritizer {
	return &fakePrioritizer{
		current: map[ioprio.Target]ioprio.Value{},
		getErr:  map[ioprio.Target]error{},
		setErr:  map[ioprio.Target]error{},
	}
}

func (f *fakePrioritizer) Get(target ioprio.Target) (ioprio.Value, error) {
	f.calls = append(f.calls, prioCall{Op: "get", Target: target})

	if err := f.getErr[target]; err != nil {
		return ioprio.Value{}, err
	}

	if value, found := f.current[target]; found {
		return value, nil
	}

	return ioprio.Value{Class: ioprio.ClassBestEffort, Data: 4}, nil
}

func (f *fakePrioritizer) Set(target ioprio.Target, value ioprio.Value) error {
	f.calls = append(f.calls, prioCall{Op: "set", Target: target, Value: value})

	if err := f.setErr[target]; err != nil {
		return err
	}

	f.current[target] = value
	return nil
}

type fakeExecer struct {
	argv [][]string
	err  error
}

func (f *fakeExecer) Exec(argv []string) error {
	f.argv = append(f.argv, argv)

	if f.err != nil {
		return f.err
	}

	// a real exec doesn't return, but tests need to observe what happened
	return errExecStubbed
}

var errExecStubbed = errors.New("exec stubbed")
