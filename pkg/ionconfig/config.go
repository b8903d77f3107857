// Configuration of one ionice run, as parsed from the command line
package ionconfig

import (
	"log"
	"strconv"
	"unicode"

	"github.com/function61/gokit/logex"
	"github.com/function61/ionice/pkg/ioprio"
	"github.com/pkg/errors"
)

const (
	DefaultClass = ioprio.ClassBestEffort
	DefaultData  = 4
	MaxData      = 7
)

var ErrConflictingSelectors = errors.New("can handle only one of pid, pgid or uid at once")

// which processes to operate on. zero value selects nothing (= current process)
type Selector struct {
	Who ioprio.Who
	IDs []int
}

func (s *Selector) Active() bool {
	return s.Who != 0
}

// parses idArg and appends it. switching to another kind of ID is an error
func (s *Selector) Add(who ioprio.Who, idArg string) error {
	if s.Active() && s.Who != who {
		return ErrConflictingSelectors
	}

	id, err := ParseID(who, idArg)
	if err != nil {
		return err
	}

	s.Who = who
	s.IDs = append(s.IDs, id)

	return nil
}

func (s *Selector) Targets() []ioprio.Target {
	targets := []ioprio.Target{}
	for _, id := range s.IDs {
		targets = append(targets, ioprio.Target{Who: s.Who, ID: id})
	}

	return targets
}

type Config struct {
	Class      ioprio.Class
	Data       int
	ClassGiven bool
	DataGiven  bool
	Tolerant   bool
	Selector   Selector
	Command    []string // program + its args, if we're to exec one
}

func New() *Config {
	return &Config{
		Class: DefaultClass,
		Data:  DefaultData,
	}
}

// whether user asked to change priority (as opposed to just reading it)
func (c *Config) SetRequested() bool {
	return c.ClassGiven || c.DataGiven
}

func (c *Config) Value() ioprio.Value {
	return ioprio.Value{Class: c.Class, Data: c.Data}
}

// Finalize consumes the positional arguments left over after option parsing and
// normalizes class data. with an active selector the leftovers are more IDs,
// otherwise they're the command to run.
func (c *Config) Finalize(positional []string, logger *log.Logger) error {
	if c.Selector.Active() {
		for _, idArg := range positional {
			if err := c.Selector.Add(c.Selector.Who, idArg); err != nil {
				return err
			}
		}
	} else if len(positional) > 0 {
		c.Command = positional
	}

	logl := logex.Levels(logger)

	switch c.Class {
	case ioprio.ClassNone:
		if c.DataGiven && !c.Tolerant {
			logl.Info.Println("ignoring given class data for none class")
		}
		c.Data = 0
	case ioprio.ClassRealtime, ioprio.ClassBestEffort:
		// anything wider would spill into the class bits
		if c.Data < 0 || c.Data > MaxData {
			return errors.Errorf("invalid class data argument: %d (expected 0..%d)", c.Data, MaxData)
		}
	case ioprio.ClassIdle:
		if c.DataGiven && !c.Tolerant {
			logl.Info.Println("ignoring given class data for idle class")
		}
		c.Data = MaxData
	default:
		// newer kernels may know classes we don't, so let it through
		if !c.Tolerant {
			logl.Info.Printf("unknown prio class %d", c.Class)
		}
	}

	return nil
}

func ParseClass(arg string) (ioprio.Class, error) {
	if arg != "" && unicode.IsDigit(rune(arg[0])) {
		code, err := parseInt32(arg, "invalid class argument")
		if err != nil {
			return ioprio.ClassNone, err
		}

		return ioprio.Class(code), nil
	}

	class, found := ioprio.ClassByName(arg)
	if !found {
		return ioprio.ClassNone, errors.Errorf("unknown scheduling class: '%s'", arg)
	}

	return class, nil
}

func ParseData(arg string) (int, error) {
	return parseInt32(arg, "invalid class data argument")
}

func ParseID(who ioprio.Who, arg string) (int, error) {
	switch who {
	case ioprio.WhoProcess:
		return parseInt32(arg, "invalid PID argument")
	case ioprio.WhoProcessGroup:
		return parseInt32(arg, "invalid PGID argument")
	case ioprio.WhoUser:
		return parseInt32(arg, "invalid UID argument")
	default:
		return 0, errors.Errorf("unsupported selector: %s", who)
	}
}

func parseInt32(arg string, errMsg string) (int, error) {
	num, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return 0, errors.Errorf("%s: '%s'", errMsg, arg)
	}

	return int(num), nil
}
