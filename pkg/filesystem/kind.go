package filesystem

// String provides a human-readable representation of an entry kind.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymbolicLink:
		return "symbolic link"
	case KindBlockDevice:
		return "block device"
	case KindCharacterDevice:
		return "character device"
	case KindFIFO:
		return "fifo"
	case KindSocket:
		return "socket"
	default:
		return "unknown"
	}
}
