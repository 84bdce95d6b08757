package version

import (
	"fmt"
	"strings"
	"testing"
)

// TestVersionComputation verifies that the stringified version is computed
// from its components.
func TestVersionComputation(t *testing.T) {
	expected := fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
	if VersionTag != "" {
		expected += "-" + VersionTag
	}
	if Version != expected {
		t.Error("stringified version does not match components:", Version)
	}
	if strings.Contains(Version, " ") {
		t.Error("stringified version contains spaces:", Version)
	}
}
