package filesystem

// Metadata encodes stat-equivalent information about a directory entry. It
// is a value object: construction during enumeration is its only mutation
// point, and each instance is owned solely by the entry that carries it.
type Metadata struct {
	// Device is the device ID of the filesystem on which the entry resides.
	// On POSIX systems, this is the value of the st_dev field of stat. On
	// Windows, this field is always left set to 0 because it can't be cheaply
	// accessed during enumeration.
	Device uint64
	// Mode is the raw file mode of the entry. On POSIX systems, this is the
	// full st_mode value (type and permission bits). On Windows, permission
	// bits are meaningless and only the file type bits (matching the entry's
	// Kind) are populated.
	Mode uint32
	// Links is the number of hard links to the entry. On Windows, it is
	// always 0.
	Links uint64
	// Size is the size of the entry in bytes. On Windows, it is populated
	// only for regular files.
	Size int64
	// ModificationTime is the modification time of the entry in seconds
	// since the Unix epoch.
	ModificationTime int64
	// ChangeTime is the status change time of the entry in seconds since the
	// Unix epoch. On Windows, where no change time is reported during
	// enumeration, it carries the creation time instead.
	ChangeTime int64
}
