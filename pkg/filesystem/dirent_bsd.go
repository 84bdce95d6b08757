//go:build freebsd || netbsd || openbsd

package filesystem

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// direntReclen extracts the record length from a raw directory entry record.
func direntReclen(record []byte) int {
	return int((*unix.Dirent)(unsafe.Pointer(&record[0])).Reclen)
}

// direntInode extracts the file number from a raw directory entry record.
func direntInode(record []byte) uint64 {
	return (*unix.Dirent)(unsafe.Pointer(&record[0])).Fileno
}

// direntType extracts the type code from a raw directory entry record.
func direntType(record []byte) uint8 {
	return (*unix.Dirent)(unsafe.Pointer(&record[0])).Type
}
