//go:build debug

package visgraph

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[visgraph DEBUG] ", log.LstdFlags)

// logDebugf writes a debug message to logger; this file is only compiled
// with the debug build tag.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
