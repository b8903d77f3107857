//go:build !linux

package ioprio

type kernel struct{}

func NewKernel() Prioritizer {
	return kernel{}
}

func (kernel) Get(target Target) (Value, error) {
	return Value{}, ErrUnsupported
}

func (kernel) Set(target Target, value Value) error {
	return ErrUnsupported
}
