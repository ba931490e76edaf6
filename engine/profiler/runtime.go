// Package profiler records named scopes into a ring buffer and dumps them
// as a speedscope profile. Scopes are only recorded when built with
// -tags profile.
package profiler

import "runtime"

// Memory is a point-in-time view of the Go heap for on-screen stats.
type Memory struct {
	HeapBytes  uint64
	Mallocs    uint64
	Goroutines int
}

func ReadMemory() Memory {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Memory{HeapBytes: m.Alloc, Mallocs: m.Mallocs, Goroutines: runtime.NumGoroutine()}
}
