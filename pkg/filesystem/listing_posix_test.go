//go:build !windows

package filesystem

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/scandir-io/scandir/pkg/logging"
	"github.com/scandir-io/scandir/pkg/must"
)

func TestScanKinds(t *testing.T) {
	logger := logging.NewLogger(logging.LevelError, &bytes.Buffer{})
	directory := t.TempDir()

	// Create one entry of each kind creatable without elevated privileges.
	if err := os.WriteFile(filepath.Join(directory, "file"), []byte("contents"), 0600); err != nil {
		t.Fatal("unable to create test file:", err)
	}
	if err := os.Mkdir(filepath.Join(directory, "directory"), 0700); err != nil {
		t.Fatal("unable to create test directory:", err)
	}
	if err := os.Symlink("file", filepath.Join(directory, "link")); err != nil {
		t.Fatal("unable to create test symbolic link:", err)
	}
	if err := unix.Mkfifo(filepath.Join(directory, "fifo"), 0600); err != nil {
		t.Fatal("unable to create test fifo:", err)
	}
	listener, err := net.Listen("unix", filepath.Join(directory, "socket"))
	if err != nil {
		t.Fatal("unable to create test socket:", err)
	}
	defer must.Close(listener, logger)

	// Scan without metadata so that classification relies on the kind hint
	// wherever the filesystem provides one.
	entries, err := List(directory, false, "")
	if err != nil {
		t.Fatal("unable to list directory:", err)
	}
	if len(entries) != 5 {
		t.Fatal("listing yielded unexpected entry count:", len(entries))
	}

	// Verify that each kind matches an independent link-unaware query.
	for _, entry := range entries {
		var metadata unix.Stat_t
		if err := unix.Lstat(filepath.Join(directory, entry.Name), &metadata); err != nil {
			t.Fatalf("unable to query %q independently: %v", entry.Name, err)
		}
		if expected := kindFromMode(uint32(metadata.Mode)); entry.Kind != expected {
			t.Errorf("entry %q classified as %v, expected %v", entry.Name, entry.Kind, expected)
		}
	}
}

func TestScanMetadataMatchesStat(t *testing.T) {
	directory := createBasicDirectory(t)

	entries, err := List(directory, true, "")
	if err != nil {
		t.Fatal("unable to list directory:", err)
	}

	for _, entry := range entries {
		var metadata unix.Stat_t
		if err := unix.Lstat(filepath.Join(directory, entry.Name), &metadata); err != nil {
			t.Fatalf("unable to query %q independently: %v", entry.Name, err)
		}
		if entry.Metadata.Device != uint64(metadata.Dev) {
			t.Errorf("entry %q device mismatch", entry.Name)
		}
		if entry.Metadata.Mode != uint32(metadata.Mode) {
			t.Errorf("entry %q mode mismatch", entry.Name)
		}
		if entry.Metadata.Links != uint64(metadata.Nlink) {
			t.Errorf("entry %q link count mismatch", entry.Name)
		}
		if entry.Metadata.Size != metadata.Size {
			t.Errorf("entry %q size mismatch", entry.Name)
		}
		if entry.Metadata.ModificationTime != int64(extractModificationTime(&metadata).Sec) {
			t.Errorf("entry %q modification time mismatch", entry.Name)
		}
		if entry.Metadata.ChangeTime != int64(extractChangeTime(&metadata).Sec) {
			t.Errorf("entry %q change time mismatch", entry.Name)
		}
	}
}

func TestScanSymbolicLinkNotFollowed(t *testing.T) {
	directory := t.TempDir()

	// Create a symbolic link to a directory. The entry must be classified as
	// a link, not as its target.
	if err := os.Mkdir(filepath.Join(directory, "target"), 0700); err != nil {
		t.Fatal("unable to create test directory:", err)
	}
	if err := os.Symlink("target", filepath.Join(directory, "link")); err != nil {
		t.Fatal("unable to create test symbolic link:", err)
	}

	entries, err := List(directory, false, "")
	if err != nil {
		t.Fatal("unable to list directory:", err)
	}
	if entry, ok := entryByName(entries, "link"); !ok {
		t.Fatal("link entry missing from listing")
	} else if entry.Kind != KindSymbolicLink {
		t.Error("link entry misclassified as", entry.Kind)
	}

	// A directory link matching the skip name must not abort the scan, since
	// the link itself is not a directory.
	if listing, err := Scan(directory, false, "link"); err != nil {
		t.Fatal("unable to scan directory:", err)
	} else if listing.Aborted {
		t.Error("scan aborted by a symbolic link matching the skip name")
	}
}
