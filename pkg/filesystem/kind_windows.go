package filesystem

import (
	"golang.org/x/sys/windows"
)

// Kind classifies a directory entry by type. Its values are the POSIX file
// type bits from the S_IFMT family, so they can be compared directly against
// the well-known numeric constants. On Windows, enumeration can only
// distinguish files from directories, so only KindFile and KindDirectory are
// ever produced, but the full constant set is provided for uniform
// comparison code across platforms.
type Kind uint32

const (
	// KindUnknown is a sentinel indicating that an entry's type could not be
	// classified. It is distinct from all real kinds, which are non-zero.
	KindUnknown = Kind(0)
	// KindFile represents a regular file.
	KindFile = Kind(windows.S_IFREG)
	// KindDirectory represents a directory.
	KindDirectory = Kind(windows.S_IFDIR)
	// KindSymbolicLink represents a symbolic link.
	KindSymbolicLink = Kind(windows.S_IFLNK)
	// KindBlockDevice represents a block device.
	KindBlockDevice = Kind(windows.S_IFBLK)
	// KindCharacterDevice represents a character device.
	KindCharacterDevice = Kind(windows.S_IFCHR)
	// KindFIFO represents a named pipe.
	KindFIFO = Kind(windows.S_IFIFO)
	// KindSocket represents a socket.
	KindSocket = Kind(windows.S_IFSOCK)
)
