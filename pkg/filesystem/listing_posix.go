//go:build !windows

package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"
)

// direntBufferSize is the size of the buffer used for raw directory entry
// reads. It's large enough to receive many entries per system call while
// remaining cache-friendly.
const direntBufferSize = 32 * 1024

// direntNameOffset is the offset of the name field within the platform's
// raw directory entry record. The name data extends from this offset to the
// end of the record and is NUL-terminated.
const direntNameOffset = int(unsafe.Offsetof(unix.Dirent{}.Name))

// errInvalidDirentRecord indicates a malformed record in a raw directory
// entry read, such as a record length of zero or one extending past the data
// actually read.
var errInvalidDirentRecord = errors.New("invalid directory entry record")

// direntName extracts the entry name from a raw directory entry record.
func direntName(record []byte) string {
	name := record[direntNameOffset:]
	for i := 0; i < len(name); i++ {
		if name[i] == 0 {
			name = name[:i]
			break
		}
	}
	return string(name)
}

// scan is the POSIX directory enumerator. It anchors the entire scan on a
// single directory file descriptor: raw entry records are read through it
// and any per-entry metadata queries are performed relative to it with
// fstatat, so concurrent renames of ancestor path components can't redirect
// a query mid-scan. The kind hint carried by each entry record is trusted
// only when it both resolves the kind and no metadata record was requested;
// in every other case exactly one fstatat resolves kind and metadata
// together.
func scan(path string, wantMetadata bool, skip string) (*Listing, error) {
	// Open the directory descriptor that anchors enumeration and metadata
	// queries, and defer its closure. This is the only descriptor acquired
	// by the scan, so release ordering is trivial.
	descriptor, err := openRetryingOnEINTR(path, unix.O_RDONLY|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	defer closeConsideringEINTR(descriptor)

	// Loop over raw entry record batches until the directory stream is
	// exhausted.
	var entries []Entry
	buffer := make([]byte, direntBufferSize)
	for {
		count, err := readDirentRetryingOnEINTR(descriptor, buffer)
		if err != nil {
			return nil, &os.PathError{Op: "readdirent", Path: path, Err: err}
		} else if count <= 0 {
			break
		}

		// Process each record in the batch.
		records := buffer[:count]
		for len(records) > 0 {
			// Extract and bounds-check the record.
			length := direntReclen(records)
			if length <= direntNameOffset || length > len(records) {
				return nil, &os.PathError{Op: "readdirent", Path: path, Err: errInvalidDirentRecord}
			}
			record := records[:length]
			records = records[length:]

			// Skip records without a backing entry. Some filesystems use
			// these as placeholders for recently deleted content.
			if direntInode(record) == 0 {
				continue
			}

			// Skip the self and parent pseudo-entries.
			name := direntName(record)
			if name == "." || name == ".." {
				continue
			}

			// Classify the entry from the cheap kind hint, falling back to
			// (or, if metadata was requested, unconditionally performing) a
			// single descriptor-relative metadata query that yields both the
			// kind and the full record. Symbolic links are never followed.
			kind := direntKindHint(record)
			var metadata *Metadata
			if kind == KindUnknown || wantMetadata {
				var rawMetadata unix.Stat_t
				if err := fstatatRetryingOnEINTR(descriptor, name, &rawMetadata, unix.AT_SYMLINK_NOFOLLOW); err != nil {
					return nil, &os.PathError{Op: "fstatat", Path: filepath.Join(path, name), Err: err}
				}
				kind = kindFromMode(uint32(rawMetadata.Mode))
				if wantMetadata {
					metadata = newMetadataFromStat(&rawMetadata)
				}
			}

			// Apply the skip filter. It only ever matches directory-kind
			// entries, and a match abandons the scan, discarding everything
			// accumulated so far.
			if skip != "" && kind == KindDirectory && name == skip {
				return &Listing{Aborted: true}, nil
			}

			// Record the entry.
			entries = append(entries, Entry{Name: name, Kind: kind, Metadata: metadata})
		}
	}

	// Success.
	return &Listing{Entries: entries}, nil
}
