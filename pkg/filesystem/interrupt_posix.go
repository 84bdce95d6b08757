//go:build !windows

package filesystem

import (
	"errors"

	"golang.org/x/sys/unix"
)

// openRetryingOnEINTR is a wrapper around the open system call that retries
// on EINTR errors and returns on the first successful call or non-EINTR
// error.
func openRetryingOnEINTR(path string, flags int, mode uint32) (int, error) {
	for {
		result, err := unix.Open(path, flags, mode)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}

// readDirentRetryingOnEINTR is a wrapper around the directory entry read
// system call that retries on EINTR errors and returns on the first
// successful call or non-EINTR error.
func readDirentRetryingOnEINTR(directory int, buffer []byte) (int, error) {
	for {
		result, err := unix.ReadDirent(directory, buffer)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return result, err
	}
}

// fstatatRetryingOnEINTR is a wrapper around the fstatat system call that
// retries on EINTR errors and returns on the first successful call or
// non-EINTR error.
func fstatatRetryingOnEINTR(directory int, path string, metadata *unix.Stat_t, flags int) error {
	for {
		err := unix.Fstatat(directory, path, metadata, flags)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

// closeConsideringEINTR is a direct passthrough to the close system call
// that doesn't retry on EINTR. It's only defined to highlight the
// intentional absence of closeRetryingOnEINTR. closeRetryingOnEINTR is left
// unimplemented because POSIX makes no guarantees about the state of a file
// descriptor in the event of an EINTR error, and thus retrying closure could
// lead to a race condition with file descriptor re-use if the file is, in
// fact, closed. This is the same policy adopted by the Go standard library
// and runtime.
func closeConsideringEINTR(file int) error {
	return unix.Close(file)
}
