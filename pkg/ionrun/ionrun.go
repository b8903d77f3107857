// Decides what an ionice invocation does and does it
package ionrun

import (
	"bufio"
	"fmt"
	"syscall"

	"github.com/function61/ionice/pkg/ionconfig"
	"github.com/function61/ionice/pkg/ioprio"
	"github.com/pkg/errors"
)

type Action int

const (
	ActionPrintSelf Action = iota
	ActionPrintTargets
	ActionSetTargets
	ActionSetSelfAndExec
)

func (a Action) String() string {
	switch a {
	case ActionPrintSelf:
		return "print-self"
	case ActionPrintTargets:
		return "print-targets"
	case ActionSetTargets:
		return "set-targets"
	case ActionSetSelfAndExec:
		return "set-self-and-exec"
	default:
		return "unknown"
	}
}

// replaces the current process image. on success Exec never returns
type Execer interface {
	Exec(argv []string) error
}

func Plan(conf *ionconfig.Config) (Action, error) {
	set := conf.SetRequested()
	selector := conf.Selector.Active()
	command := len(conf.Command) > 0

	switch {
	case !set && !selector && !command:
		return ActionPrintSelf, nil
	case !set && selector:
		return ActionPrintTargets, nil
	case set && selector:
		return ActionSetTargets, nil
	case !selector && command:
		return ActionSetSelfAndExec, nil
	default:
		return ActionPrintSelf, ErrBadUsage
	}
}

type Runner struct {
	prio   ioprio.Prioritizer
	execer Execer
	out    *bufio.Writer
}

func New(prio ioprio.Prioritizer, execer Execer, out *bufio.Writer) *Runner {
	return &Runner{
		prio:   prio,
		execer: execer,
		out:    out,
	}
}

// Run executes the action conf calls for. output is left buffered for the
// caller to Flush(), except before exec where we have to flush ourselves.
func (r *Runner) Run(conf *ionconfig.Config) error {
	action, err := Plan(conf)
	if err != nil {
		return exitWith(ExitFailure, err)
	}

	switch action {
	case ActionPrintSelf:
		return r.print(ioprio.Self())
	case ActionPrintTargets:
		for _, target := range conf.Selector.Targets() {
			if err := r.print(target); err != nil {
				return err
			}
		}
		return nil
	case ActionSetTargets:
		for _, target := range conf.Selector.Targets() {
			if err := r.set(target, conf.Value(), conf.Tolerant); err != nil {
				return err
			}
		}
		return nil
	case ActionSetSelfAndExec:
		if err := r.set(ioprio.Self(), conf.Value(), conf.Tolerant); err != nil {
			return err
		}

		if err := r.Flush(); err != nil {
			return err
		}

		// only returns on failure
		return execFailed(conf.Command[0], r.execer.Exec(conf.Command))
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}

func (r *Runner) print(target ioprio.Target) error {
	value, err := r.prio.Get(target)
	if err != nil {
		// reads aren't covered by tolerant mode
		return exitWith(ExitFailure, errors.Wrap(err, "ioprio_get failed"))
	}

	_, err = fmt.Fprintln(r.out, value.String())
	return err
}

func (r *Runner) set(target ioprio.Target, value ioprio.Value, tolerant bool) error {
	if err := r.prio.Set(target, value); err != nil {
		if tolerant {
			return nil
		}

		return exitWith(ExitFailure, errors.Wrap(err, "ioprio_set failed"))
	}

	return nil
}

// Flush writes out buffered output. a reader that went away (EPIPE) is not
// an error worth failing over.
func (r *Runner) Flush() error {
	return FlushOutput(r.out)
}

func FlushOutput(out *bufio.Writer) error {
	if err := out.Flush(); err != nil && !errors.Is(err, syscall.EPIPE) {
		return exitWith(ExitFailure, errors.Wrap(err, "write error"))
	}

	return nil
}
