package filesystem

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

const (
	// filetimeEpochOffsetDays is the number of days between the Windows
	// FILETIME epoch (January 1, 1601) and the Unix epoch.
	filetimeEpochOffsetDays = 134774
	// filetimeIntervalsPerSecond is the number of FILETIME intervals (100
	// nanoseconds each) per second.
	filetimeIntervalsPerSecond = 10000000
)

// filetimeToUnix converts a FILETIME value to seconds since the Unix epoch.
func filetimeToUnix(filetime windows.Filetime) int64 {
	intervals := int64(filetime.HighDateTime)<<32 + int64(filetime.LowDateTime)
	return intervals/filetimeIntervalsPerSecond - filetimeEpochOffsetDays*24*3600
}

// findPattern computes the find-files pattern for a directory path by
// appending a wildcard, with a path separator inserted only if the path
// doesn't already end in one (or in a drive designator).
func findPattern(path string) string {
	if length := len(path); length > 0 {
		if last := path[length-1]; last != ':' && last != '/' && last != '\\' {
			return path + `\*`
		}
	}
	return path + "*"
}

// scan is the Windows directory enumerator. It iterates entries with the
// native find-first/find-next sequence, whose per-entry find data already
// carries attributes, size, and times, so metadata records are synthesized
// without any additional system call. Only files and directories can be
// distinguished from find data, and permission bits don't exist on this
// platform, so metadata modes carry the type flag alone.
func scan(path string, wantMetadata bool, skip string) (*Listing, error) {
	// Convert the search pattern to UTF-16.
	pattern, err := windows.UTF16PtrFromString(findPattern(path))
	if err != nil {
		return nil, fmt.Errorf("unable to convert search pattern to UTF-16: %w", err)
	}

	// Start the find sequence and defer closure of the search handle. This
	// is the only handle acquired by the scan, so release ordering is
	// trivial.
	var data windows.Win32finddata
	handle, err := windows.FindFirstFile(pattern, &data)
	if err != nil {
		return nil, &os.PathError{Op: "FindFirstFile", Path: path, Err: err}
	}
	defer windows.FindClose(handle)

	// Process entries until the find sequence is exhausted. The terminal
	// condition is signaled by a dedicated error code; anything else
	// trailing the sequence is a real error.
	var entries []Entry
	for {
		if entry, ok, aborted := convertFindData(&data, wantMetadata, skip); aborted {
			return &Listing{Aborted: true}, nil
		} else if ok {
			entries = append(entries, entry)
		}
		if err := windows.FindNextFile(handle, &data); err != nil {
			if err == windows.ERROR_NO_MORE_FILES {
				break
			}
			return nil, &os.PathError{Op: "FindNextFile", Path: path, Err: err}
		}
	}

	// Success.
	return &Listing{Entries: entries}, nil
}

// convertFindData classifies a single find data record and (if requested)
// synthesizes its metadata record. It returns the converted entry, whether
// the record describes a real entry (as opposed to a self or parent
// pseudo-entry), and whether the record matched the skip name and the scan
// must be abandoned.
func convertFindData(data *windows.Win32finddata, wantMetadata bool, skip string) (Entry, bool, bool) {
	// Classify from the directory attribute flag, the only type information
	// the find data carries, and apply the pseudo-entry and skip filters to
	// directory-kind records.
	name := windows.UTF16ToString(data.FileName[:])
	kind := KindFile
	if data.FileAttributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
		kind = KindDirectory
		if name == "." || name == ".." {
			return Entry{}, false, false
		}
		if skip != "" && name == skip {
			return Entry{}, false, true
		}
	}

	// Synthesize the metadata record if requested. The size field is only
	// meaningful for regular files, and the change time slot carries the
	// creation time since no status change time is reported.
	var metadata *Metadata
	if wantMetadata {
		metadata = &Metadata{
			Mode:             uint32(kind),
			ModificationTime: filetimeToUnix(data.LastWriteTime),
			ChangeTime:       filetimeToUnix(data.CreationTime),
		}
		if kind == KindFile {
			metadata.Size = int64(data.FileSizeHigh)<<32 + int64(data.FileSizeLow)
		}
	}

	// Success.
	return Entry{Name: name, Kind: kind, Metadata: metadata}, true, false
}
