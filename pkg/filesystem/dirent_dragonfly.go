package filesystem

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// direntReclen computes the record length for a raw directory entry record.
// Dragonfly's dirent structure doesn't carry a record length field, so the
// length is reconstructed from the name length with the records' 8-byte
// alignment applied.
func direntReclen(record []byte) int {
	namlen := int((*unix.Dirent)(unsafe.Pointer(&record[0])).Namlen)
	return (direntNameOffset + namlen + 1 + 7) &^ 7
}

// direntInode extracts the file number from a raw directory entry record.
func direntInode(record []byte) uint64 {
	return (*unix.Dirent)(unsafe.Pointer(&record[0])).Fileno
}

// direntType extracts the type code from a raw directory entry record.
func direntType(record []byte) uint8 {
	return (*unix.Dirent)(unsafe.Pointer(&record[0])).Type
}
