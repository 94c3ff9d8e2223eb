package gridblur

import "log"

// Logf is the package diagnostic logger. It defaults to log.Printf and can be
// redirected or muted with SetLogger.
var Logf func(format string, v ...any) = log.Printf

// SetLogger replaces Logf. A nil f installs a no-op logger.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}
