package rift

import (
	"sync"

	"github.com/shaban/rift/native"
)

// moduleBracket owns the process-wide init/shutdown bracket of a native
// module: Init exactly once before the first handle is created, Shutdown
// exactly once after the last handle is destroyed.
//
// The live count and the Init/Shutdown calls form one critical section. A
// bare atomic counter is not enough here: a second constructor that
// observes count > 0 must also be guaranteed that Init has already
// returned, so Init runs while the mutex is still held. Symmetrically,
// release is only called after the session's own handle has been
// destroyed, so Shutdown (count 1 -> 0) always runs after the final
// Destroy.
//
// Counts are kept per module instance. Production binaries only ever see
// the one registered driver, but keying the bracket this way keeps stub
// modules in concurrent tests from sharing lifecycle state.
type moduleBracket struct {
	mu   sync.Mutex
	live map[native.Module]int
}

var bracket = moduleBracket{live: make(map[native.Module]int)}

// acquire claims one live-session reference on m, initializing the module
// when the count rises from zero. When acquire returns, Init has completed
// and the caller may create a handle.
func (b *moduleBracket) acquire(m native.Module) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.live[m] == 0 {
		m.Init()
	}
	b.live[m]++
}

// release drops one live-session reference on m, shutting the module down
// when the count returns to zero. The caller must have already destroyed
// its handle.
func (b *moduleBracket) release(m native.Module) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.live[m]--
	if b.live[m] == 0 {
		m.Shutdown()
		delete(b.live, m)
	}
}

// liveCount reports the number of live sessions currently claiming m.
func (b *moduleBracket) liveCount(m native.Module) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.live[m]
}

// LiveSessions reports how many sessions are currently live on the module
// m. Diagnostic only; the value may be stale by the time it is read.
func LiveSessions(m native.Module) int {
	return bracket.liveCount(m)
}
