//go:build windows

package document

import (
	"os"

	"golang.org/x/sys/windows"
)

// lockExclusive locks the first byte of the file; every isl process locks
// the same range, so this acts as a whole-file mutex.
func lockExclusive(f *os.File) error {
	h := windows.Handle(f.Fd())
	var ol windows.Overlapped
	return windows.LockFileEx(h, windows.LOCKFILE_EXCLUSIVE_LOCK, 0, 1, 0, &ol)
}

func unlock(f *os.File) error {
	h := windows.Handle(f.Fd())
	var ol windows.Overlapped
	return windows.UnlockFileEx(h, 0, 1, 0, &ol)
}
