// Package must provides best-effort variants of common cleanup operations
// whose failures can't meaningfully be handled, only logged.
package must

import (
	"fmt"
	"io"
	"os"

	"github.com/scandir-io/scandir/pkg/logging"
)

// Close closes the closer and logs any failure as a warning.
func Close(c io.Closer, logger *logging.Logger) {
	err := c.Close()
	if err != nil {
		logger.Warnf("Unable to close: %s", err.Error())
	}
}

// OSRemove removes the named file or empty directory and logs any failure as
// a warning.
func OSRemove(name string, logger *logging.Logger) {
	err := os.Remove(name)
	if err != nil {
		logger.Warnf("Unable to remove '%s': %s", name, err.Error())
	}
}

// OSRemoveAll removes the named path and any children it contains and logs
// any failure as a warning.
func OSRemoveAll(name string, logger *logging.Logger) {
	err := os.RemoveAll(name)
	if err != nil {
		logger.Warnf("Unable to remove '%s': %s", name, err.Error())
	}
}

// Fprintf formats to the writer and logs any failure (including short
// writes) as a warning.
func Fprintf(w io.Writer, logger *logging.Logger, format string, a ...interface{}) {
	s := fmt.Sprintf(format, a...)
	n, err := fmt.Fprint(w, s)
	if err != nil {
		logger.Warnf("Unable to Fprintf '%s': %s", s, err.Error())
	}
	if n < len(s) {
		logger.Warnf("Unable to Fprintf all of '%s'; printed only %d of %d bytes", s, n, len(s))
	}
}
