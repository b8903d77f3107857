package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/function61/gokit/dynversion"
	"github.com/function61/gokit/logex"
	"github.com/function61/ionice/pkg/ionconfig"
	"github.com/function61/ionice/pkg/ionrun"
	"github.com/function61/ionice/pkg/ioprio"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(
		os.Args,
		ioprio.NewKernel(),
		processImageReplacer{},
		os.Stdout,
		os.Stderr))
}

// returns exit code
func run(
	args []string,
	prio ioprio.Prioritizer,
	execer ionrun.Execer,
	stdout io.Writer,
	stderr io.Writer,
) int {
	name := "ionice"
	if len(args) > 0 {
		name = filepath.Base(args[0])
	} else {
		args = []string{name}
	}

	out := bufio.NewWriter(stdout)
	logger := log.New(stderr, name+": ", 0)
	logl := logex.Levels(logger)

	app := newRootCmd(name, prio, execer, out, logger)
	app.SetArgs(args[1:])
	app.SetOut(out)
	app.SetErr(stderr)

	err := app.Execute()

	// before reporting, so output and diagnostics stay in order
	if flushErr := ionrun.FlushOutput(out); flushErr != nil && err == nil {
		err = flushErr
	}

	if err != nil {
		logl.Error.Println(err)

		var usageErr *usageError
		if errors.As(err, &usageErr) || errors.Is(err, ionrun.ErrBadUsage) {
			fmt.Fprintf(stderr, "Try '%s --help' for more information.\n", name)
		}
	}

	return ionrun.ExitCode(err)
}

func newRootCmd(
	name string,
	prio ioprio.Prioritizer,
	execer ionrun.Execer,
	out *bufio.Writer,
	logger *log.Logger,
) *cobra.Command {
	conf := ionconfig.New()
	showVersion := false

	// set by our flag values. takes precedence over pflag's error message
	var parseErr error

	app := &cobra.Command{
		Use: fmt.Sprintf(
			"%s [options] -p <pid>...\n  %s [options] -P <pgid>...\n  %s [options] -u <uid>...\n  %s [options] <command>",
			name,
			name,
			name,
			name),
		Short: "Show or change the I/O-scheduling class and priority of a process",
		Long: `Show or change the I/O-scheduling class and priority of a process.

Without a class or class data, prints the current priority of the given
processes (or of ionice itself). With a command, sets its own priority and
then runs the command in its place.`,
		Example: fmt.Sprintf(`  %s -c idle -p 1234
  %s -c best-effort -n 7 -- tar czf backup.tgz /srv`, name, name),
		Args:                  cobra.ArbitraryArgs,
		SilenceErrors:         true,
		SilenceUsage:          true,
		DisableAutoGenTag:     true,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", name, dynversion.Version)
				return err
			}

			conf.ClassGiven = cmd.Flags().Changed("class")
			conf.DataGiven = cmd.Flags().Changed("classdata")

			if err := conf.Finalize(args, logger); err != nil {
				return err
			}

			return ionrun.New(prio, execer, out).Run(conf)
		},
	}

	app.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if parseErr != nil {
			return parseErr
		}

		return &usageError{err}
	})

	flags := app.Flags()
	// everything after the first non-option belongs to the command we run
	flags.SetInterspersed(false)

	flags.VarP(
		&classValue{&conf.Class, &parseErr},
		"class",
		"c",
		"name or number of scheduling class: 0 none, 1 realtime, 2 best-effort, 3 idle")
	flags.VarP(
		&dataValue{&conf.Data, &parseErr},
		"classdata",
		"n",
		"priority (0..7) in the specified scheduling class, only for the realtime and best-effort classes")
	flags.VarP(
		&selectorValue{&conf.Selector, ioprio.WhoProcess, &parseErr},
		"pid",
		"p",
		"act on these already running processes")
	flags.VarP(
		&selectorValue{&conf.Selector, ioprio.WhoProcessGroup, &parseErr},
		"pgid",
		"P",
		"act on already running processes in these groups")
	flags.VarP(
		&selectorValue{&conf.Selector, ioprio.WhoUser, &parseErr},
		"uid",
		"u",
		"act on already running processes owned by these users")
	flags.BoolVarP(&conf.Tolerant, "ignore", "t", conf.Tolerant, "ignore failures")
	flags.BoolVarP(&showVersion, "version", "V", showVersion, "display version")

	return app
}

// command line couldn't be understood (unknown option, missing value etc.)
type usageError struct {
	err error
}

func (u *usageError) Error() string {
	return u.err.Error()
}

func (u *usageError) Unwrap() error {
	return u.err
}
