// Linux I/O scheduling classes and the encoded priority value the kernel's
// ioprio_get / ioprio_set calls speak
package ioprio

import (
	"strconv"
	"strings"
)

const (
	classShift = 13
	dataMask   = (1 << classShift) - 1
)

type Class int

const (
	ClassNone Class = iota
	ClassRealtime
	ClassBestEffort
	ClassIdle
)

// index is the class code
var classNames = [...]string{
	"none",
	"realtime",
	"best-effort",
	"idle",
}

func (c Class) Known() bool {
	return c >= 0 && int(c) < len(classNames)
}

func (c Class) String() string {
	if !c.Known() {
		return "unknown"
	}

	return classNames[c]
}

// looks up class by its name, case-insensitively
func ClassByName(name string) (Class, bool) {
	for code, candidate := range classNames {
		if strings.EqualFold(candidate, name) {
			return Class(code), true
		}
	}

	return ClassNone, false
}

type Value struct {
	Class Class
	Data  int
}

// data is masked so it can't alter the class
func (v Value) Encode() int {
	return int(v.Class)<<classShift | v.Data&dataMask
}

func Decode(encoded int) Value {
	return Value{
		Class: Class(encoded >> classShift),
		Data:  encoded & dataMask,
	}
}

// "best-effort: prio 4", or just "idle" since idle carries no level
func (v Value) String() string {
	if v.Class == ClassIdle {
		return v.Class.String()
	}

	return v.Class.String() + ": prio " + strconv.Itoa(v.Data)
}

// who the ID of a Target refers to. values are the kernel's IOPRIO_WHO_*
type Who int

const (
	WhoProcess Who = iota + 1
	WhoProcessGroup
	WhoUser
)

func (w Who) String() string {
	switch w {
	case WhoProcess:
		return "pid"
	case WhoProcessGroup:
		return "pgid"
	case WhoUser:
		return "uid"
	default:
		return "who(" + strconv.Itoa(int(w)) + ")"
	}
}

type Target struct {
	Who Who
	ID  int
}

// ID 0 means the calling process
func Self() Target {
	return Target{Who: WhoProcess, ID: 0}
}

func (t Target) String() string {
	return t.Who.String() + " " + strconv.Itoa(t.ID)
}

// reads and writes I/O priorities. the kernel implementation lives in
// NewKernel(), tests use fakes
type Prioritizer interface {
	Get(target Target) (Value, error)
	Set(target Target, value Value) error
}
