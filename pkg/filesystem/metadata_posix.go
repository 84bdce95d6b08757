//go:build !windows

package filesystem

import (
	"golang.org/x/sys/unix"
)

// newMetadataFromStat converts a raw stat structure into a Metadata record.
// The conversions are widening only, so no information relevant to the
// record is lost on any platform.
func newMetadataFromStat(metadata *unix.Stat_t) *Metadata {
	return &Metadata{
		Device:           uint64(metadata.Dev),
		Mode:             uint32(metadata.Mode),
		Links:            uint64(metadata.Nlink),
		Size:             metadata.Size,
		ModificationTime: int64(extractModificationTime(metadata).Sec),
		ChangeTime:       int64(extractChangeTime(metadata).Sec),
	}
}
