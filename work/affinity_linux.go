// Copyright © 2024 Galvanized Logic Inc.

//go:build linux

package work

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCPU locks the calling goroutine to its current OS thread and
// pins that thread to the logical CPU numbered id, satisfying the work
// queue's one-thread-per-core discipline.
func pinToCPU(id int) error {
	runtime.LockOSThread()
	var set unix.CPUSet
	set.Zero()
	set.Set(id % runtime.NumCPU())
	return unix.SchedSetaffinity(0, &set)
}
