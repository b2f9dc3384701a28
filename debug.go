package pinchzoom

import (
	"fmt"
	"os"
)

// debugEnabled gates gesture-transition and viewer logging. Set via
// SetDebugMode. Package-wide: with several viewers in one process, whichever
// SetDebugMode call came last wins.
var debugEnabled bool

// SetDebugMode enables or disables logging of gesture transitions and
// viewer state changes to stderr.
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

// DebugMode reports whether debug logging is enabled.
func DebugMode() bool {
	return debugEnabled
}

// debugf prints one "[pinchzoom]"-prefixed line to stderr.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[pinchzoom] "+format+"\n", args...)
}
