//go:build !windows

package filesystem

import (
	"golang.org/x/sys/unix"
)

// Kind classifies a directory entry by type. Its values are the raw POSIX
// file type bits from the stat mode field (the S_IFMT family), so they can
// be compared directly against the well-known numeric constants.
type Kind uint32

const (
	// KindUnknown is a sentinel indicating that an entry's type could not be
	// classified. It is distinct from all real kinds, which are non-zero.
	KindUnknown = Kind(0)
	// KindFile represents a regular file.
	KindFile = Kind(unix.S_IFREG)
	// KindDirectory represents a directory.
	KindDirectory = Kind(unix.S_IFDIR)
	// KindSymbolicLink represents a symbolic link.
	KindSymbolicLink = Kind(unix.S_IFLNK)
	// KindBlockDevice represents a block device.
	KindBlockDevice = Kind(unix.S_IFBLK)
	// KindCharacterDevice represents a character device.
	KindCharacterDevice = Kind(unix.S_IFCHR)
	// KindFIFO represents a named pipe.
	KindFIFO = Kind(unix.S_IFIFO)
	// KindSocket represents a Unix domain socket.
	KindSocket = Kind(unix.S_IFSOCK)
)

// kindFromMode extracts the entry kind from a raw stat mode.
func kindFromMode(mode uint32) Kind {
	return Kind(mode & unix.S_IFMT)
}
