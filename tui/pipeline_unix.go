//go:build unix

package tui

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// terminatePipelineGroup interrupts the surrounding pipeline. In shells
// with job control a pipeline runs in its own process group, separate
// from the shell's; signalling that group stops upstream producers like
// `tail -f` the moment the user quits. When this process shares its
// group with the parent (no job control, or run bare) nothing is sent.
func terminatePipelineGroup() {
	pgid := unix.Getpgrp()
	if pgid <= 0 {
		return
	}
	parentPgid, err := unix.Getpgid(os.Getppid())
	if err != nil || parentPgid == pgid {
		return
	}

	signal.Ignore(syscall.SIGINT)
	_ = unix.Kill(-pgid, unix.SIGINT)
}
