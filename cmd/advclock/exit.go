package main

import (
	"errors"
	"os/exec"
	"syscall"
)

// exitStatus maps the result of running a child process to the exit code advclock propagates. A
// child terminated by a signal maps to 128 plus the signal number, as shells report it. ran is
// false when the child could not be started at all.
func exitStatus(err error) (code int, ran bool) {
	if err == nil {
		return 0, true
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, false
	}

	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal()), true
	}

	return exitErr.ExitCode(), true
}
