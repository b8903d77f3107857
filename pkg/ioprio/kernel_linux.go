//go:build linux

package ioprio

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

type kernel struct{}

func NewKernel() Prioritizer {
	return kernel{}
}

func (kernel) Get(target Target) (Value, error) {
	res, _, errno := unix.Syscall(
		unix.SYS_IOPRIO_GET,
		uintptr(target.Who),
		uintptr(target.ID),
		0)
	if errno != 0 {
		return Value{}, errors.Wrap(errno, target.String())
	}

	return Decode(int(res)), nil
}

func (kernel) Set(target Target, value Value) error {
	if _, _, errno := unix.Syscall(
		unix.SYS_IOPRIO_SET,
		uintptr(target.Who),
		uintptr(target.ID),
		uintptr(value.Encode()),
	); errno != 0 {
		return errors.Wrap(errno, target.String())
	}

	return nil
}
