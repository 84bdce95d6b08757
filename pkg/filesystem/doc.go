// Package filesystem provides a fast, platform-abstracted directory listing
// primitive. It enumerates the entries of a single directory in one pass,
// classifying each entry by kind and (optionally) capturing a full metadata
// record, while avoiding a separate stat system call for entries whose kind
// the filesystem already reports. All classification uses lstat-equivalent
// semantics (symbolic links are never followed).
package filesystem
