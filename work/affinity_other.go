// Copyright © 2024 Galvanized Logic Inc.

//go:build !linux

package work

import "runtime"

// pinToCPU locks the calling goroutine to its current OS thread. Hard
// affinity to a specific logical CPU is a Linux-only facility here;
// other platforms get thread locking only.
func pinToCPU(id int) error {
	runtime.LockOSThread()
	return nil
}
