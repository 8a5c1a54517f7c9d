//go:build !debug

package visgraph

// logDebugf is a no-op outside of debug builds, so call sites don't pay for
// formatting arguments that are never printed.
func logDebugf(format string, v ...interface{}) {}
