package scene

import (
	"fmt"
	"os"
)

// logf writes a diagnostic line to stderr, prefixed the way willow's
// debug.go prefixes its own diagnostics, but tagged for this package.
// Every survivable error condition in §7 (bad node handle, queue
// overflow, unknown font/image format) reports through here instead of
// panicking; the program always continues.
func logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[scene] "+format+"\n", args...)
}

// diagnostic is an alias kept for call-site readability where the
// message describes a rejected operation rather than raw tracing.
func diagnostic(format string, args ...any) {
	logf(format, args...)
}
