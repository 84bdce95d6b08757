//go:build !windows && !solaris

package filesystem

import (
	"golang.org/x/sys/unix"
)

// direntKindHint returns the kind hint for a raw directory entry record by
// mapping the platform's DT_* type code to the corresponding kind. Records
// with an unknown or unsupported type code (including everything on
// filesystems that don't populate entry types) map to KindUnknown, which
// forces classification through an explicit metadata query.
func direntKindHint(record []byte) Kind {
	switch direntType(record) {
	case unix.DT_REG:
		return KindFile
	case unix.DT_DIR:
		return KindDirectory
	case unix.DT_LNK:
		return KindSymbolicLink
	case unix.DT_BLK:
		return KindBlockDevice
	case unix.DT_CHR:
		return KindCharacterDevice
	case unix.DT_FIFO:
		return KindFIFO
	case unix.DT_SOCK:
		return KindSocket
	default:
		return KindUnknown
	}
}
