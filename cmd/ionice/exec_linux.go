//go:build linux

package main

import (
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// searches $PATH like execvp(3) and keeps our environment
type processImageReplacer struct{}

func (processImageReplacer) Exec(argv []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return err
	}

	return unix.Exec(path, argv, os.Environ())
}
