package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/windows"
)

func TestFindPattern(t *testing.T) {
	cases := []struct {
		path    string
		pattern string
	}{
		{`C:\content`, `C:\content\*`},
		{`C:\content\`, `C:\content\*`},
		{`C:\content/`, `C:\content/*`},
		{`C:`, `C:*`},
		{``, `*`},
	}
	for _, c := range cases {
		if pattern := findPattern(c.path); pattern != c.pattern {
			t.Errorf("pattern for %q was %q, expected %q", c.path, pattern, c.pattern)
		}
	}
}

func TestFiletimeToUnix(t *testing.T) {
	// The Unix epoch expressed as a FILETIME value.
	const unixEpochAsFiletime = 116444736000000000

	epoch := windows.Filetime{
		LowDateTime:  uint32(unixEpochAsFiletime & 0xffffffff),
		HighDateTime: uint32(unixEpochAsFiletime >> 32),
	}
	if seconds := filetimeToUnix(epoch); seconds != 0 {
		t.Error("Unix epoch converted to non-zero time:", seconds)
	}

	const oneSecondLater = unixEpochAsFiletime + 10000000
	later := windows.Filetime{
		LowDateTime:  uint32(oneSecondLater & 0xffffffff),
		HighDateTime: uint32(oneSecondLater >> 32),
	}
	if seconds := filetimeToUnix(later); seconds != 1 {
		t.Error("one second past the Unix epoch converted incorrectly:", seconds)
	}
}

func TestScanMetadataSynthesis(t *testing.T) {
	directory := createBasicDirectory(t)

	entries, err := List(directory, true, "")
	if err != nil {
		t.Fatal("unable to list directory:", err)
	}

	file, ok := entryByName(entries, "a.txt")
	if !ok {
		t.Fatal("file entry missing from listing")
	}
	if file.Metadata.Size != 10 {
		t.Error("file entry metadata has unexpected size:", file.Metadata.Size)
	}
	if file.Metadata.Mode != uint32(KindFile) {
		t.Error("file entry metadata mode carries unexpected bits:", file.Metadata.Mode)
	}
	if info, err := os.Lstat(filepath.Join(directory, "a.txt")); err != nil {
		t.Fatal("unable to query file metadata independently:", err)
	} else if delta := file.Metadata.ModificationTime - info.ModTime().Unix(); delta < -1 || delta > 1 {
		t.Error("file entry modification time diverges from independent query by", delta, "seconds")
	}

	subdirectory, ok := entryByName(entries, "b")
	if !ok {
		t.Fatal("directory entry missing from listing")
	}
	if subdirectory.Metadata.Mode != uint32(KindDirectory) {
		t.Error("directory entry metadata mode carries unexpected bits:", subdirectory.Metadata.Mode)
	}
	if subdirectory.Metadata.Size != 0 {
		t.Error("directory entry metadata has non-zero size:", subdirectory.Metadata.Size)
	}
	if subdirectory.Metadata.Device != 0 || subdirectory.Metadata.Links != 0 {
		t.Error("directory entry metadata carries fields unavailable during enumeration")
	}
}
