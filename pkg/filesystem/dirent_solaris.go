package filesystem

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// direntReclen extracts the record length from a raw directory entry record.
func direntReclen(record []byte) int {
	return int((*unix.Dirent)(unsafe.Pointer(&record[0])).Reclen)
}

// direntInode extracts the inode number from a raw directory entry record.
func direntInode(record []byte) uint64 {
	return (*unix.Dirent)(unsafe.Pointer(&record[0])).Ino
}

// direntKindHint returns the kind hint for a raw directory entry record.
// Solaris directory entries don't carry a type field, so classification
// always requires an explicit metadata query.
func direntKindHint(record []byte) Kind {
	return KindUnknown
}
