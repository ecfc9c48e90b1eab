package gls

import "github.com/petermattis/goid"

// getg returns the runtime identifier of the current goroutine. Identifiers
// are never reused during the lifetime of a process.
func getg() int64 {
	return goid.Get()
}
