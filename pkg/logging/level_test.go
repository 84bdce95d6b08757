package logging

import (
	"testing"
)

// TestLevelNameRoundTrip verifies that every valid level name converts to a
// level whose string representation matches the name.
func TestLevelNameRoundTrip(t *testing.T) {
	names := []string{"disabled", "error", "warn", "info", "debug"}
	for _, name := range names {
		level, ok := NameToLevel(name)
		if !ok {
			t.Errorf("valid level name %q rejected", name)
			continue
		}
		if level.String() != name {
			t.Errorf("level name %q round-tripped to %q", name, level.String())
		}
	}
}

// TestInvalidLevelName verifies rejection of invalid level names.
func TestInvalidLevelName(t *testing.T) {
	if _, ok := NameToLevel("verbose"); ok {
		t.Error("invalid level name accepted")
	}
}
