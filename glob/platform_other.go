//go:build !windows

package glob

import "runtime"

const isWindowsPlatform = false

// forceWindowsStyle models the spec's "_FORCEWIN" escape hatch used by
// tests that need to exercise Windows path semantics on a non-Windows build.
var forceWindowsStyle = false

func platformCaseSensitive() bool {
	// macOS defaults to a case-insensitive (but case-preserving) volume;
	// every other non-Windows platform in practice defaults sensitive.
	return runtime.GOOS != "darwin"
}
