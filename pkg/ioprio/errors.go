package ioprio

import (
	"github.com/pkg/errors"
)

var ErrUnsupported = errors.New("I/O priorities are not supported on this platform")
