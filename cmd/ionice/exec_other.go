//go:build !linux

package main

import (
	"github.com/function61/ionice/pkg/ioprio"
)

type processImageReplacer struct{}

func (processImageReplacer) Exec(argv []string) error {
	return ioprio.ErrUnsupported
}
