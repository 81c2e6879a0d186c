package hostval

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// Region is a scoped, re-entrant guard serializing access to the host
// allocator. The host's memory manager assumes a single logical thread
// drives the interpreter; any allocation or attribute mutation issued
// concurrently with collector activity can corrupt the heap. Mutating
// operations therefore run inside a Region rather than in parallel.
//
// Re-entrancy lets independent call sites wrap their own mutations without
// coordinating: an embedding constructor can hold the region while the
// attribute writes it performs acquire it again.
type Region struct {
	mu    sync.Mutex
	owner atomic.Int64
}

// Do runs fn while holding the region. Nested calls from the same
// goroutine run immediately.
func (r *Region) Do(fn func()) {
	id := goid()
	if r.owner.Load() == id {
		fn()
		return
	}
	r.mu.Lock()
	r.owner.Store(id)
	defer func() {
		r.owner.Store(0)
		r.mu.Unlock()
	}()
	fn()
}

var hostRegion Region

// Critical runs fn inside the process-wide single-writer region guarding
// the host allocator.
func Critical(fn func()) {
	hostRegion.Do(fn)
}

// goid returns the current goroutine id. The runtime does not expose it;
// the stack header ("goroutine N [...") is stable enough to parse.
func goid() int64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	s := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(s, ' '); i > 0 {
		if id, err := strconv.ParseInt(s[:i], 10, 64); err == nil {
			return id
		}
	}
	return -1
}
