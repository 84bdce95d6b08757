package filesystem

import (
	"errors"
)

// maximumPathLength bounds the length of directory paths accepted by Scan.
// It matches the traditional PATH_MAX value and is enforced uniformly on all
// platforms, before any system call is attempted, so that callers see
// consistent validation behavior everywhere.
const maximumPathLength = 4096

// ErrPathTooLong indicates that a directory path exceeded the maximum
// supported length. It is returned before any I/O is attempted.
var ErrPathTooLong = errors.New("path too long")

// Entry represents a single directory entry produced by a scan.
type Entry struct {
	// Name is the base name of the entry.
	Name string
	// Kind is the entry's classification. It is never KindUnknown in scan
	// results: entries whose type the filesystem doesn't report cheaply are
	// resolved with an explicit metadata query.
	Kind Kind
	// Metadata is the entry's full metadata record. It is non-nil if and
	// only if metadata was requested for the scan.
	Metadata *Metadata
}

// Listing is the result of a directory scan. It distinguishes normal
// completion from the early exit triggered by a skip name match, so that the
// short circuit is explicit at the type level rather than indistinguishable
// from scanning an empty directory.
type Listing struct {
	// Entries are the scanned entries in the directory's native iteration
	// order (platform-dependent and unspecified). It is empty if Aborted is
	// true.
	Entries []Entry
	// Aborted indicates that a directory entry matching the skip name was
	// encountered and the scan was abandoned, discarding any entries
	// accumulated up to that point.
	Aborted bool
}

// Scan enumerates the entries of the directory at path in a single pass. If
// wantMetadata is true, each returned entry carries a full Metadata record,
// otherwise entries carry only name and kind. If skip is non-empty and a
// directory entry with that exact name is encountered, the scan is abandoned
// immediately and a Listing with Aborted set (and no entries) is returned;
// the skip name never matches non-directory entries. Classification never
// follows symbolic links.
//
// Scans are synchronous and self-contained: each call acquires and releases
// its own operating system handles, so concurrent calls from independent
// callers are safe.
//
// Any error aborts the entire call with no partial results: a path longer
// than the supported maximum yields ErrPathTooLong before any I/O, while
// directory open failures and per-entry metadata failures yield an
// *os.PathError identifying the path attempted and the underlying system
// error.
func Scan(path string, wantMetadata bool, skip string) (*Listing, error) {
	// Enforce the path length bound before touching the filesystem.
	if len(path) >= maximumPathLength {
		return nil, ErrPathTooLong
	}

	// Delegate to the platform enumerator.
	return scan(path, wantMetadata, skip)
}

// List is a convenience wrapper around Scan that flattens the result shape:
// a scan aborted by a skip name match is returned as an empty sequence
// rather than a distinct condition.
func List(path string, wantMetadata bool, skip string) ([]Entry, error) {
	listing, err := Scan(path, wantMetadata, skip)
	if err != nil {
		return nil, err
	} else if listing.Aborted {
		return nil, nil
	}
	return listing.Entries, nil
}
