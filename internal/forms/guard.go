package forms

import "sync"

// Guard allows one in-flight submission per form key. A second submit while
// the first is still outstanding is rejected instead of queued, which is the
// double-click protection the original left to a disabled button.
type Guard struct {
	mu       sync.Mutex
	inflight map[string]bool
}

func NewGuard() *Guard {
	return &Guard{inflight: make(map[string]bool)}
}

// Acquire reports whether the caller may proceed with the submission for
// key. Callers that got true must Release when done.
func (g *Guard) Acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.inflight[key] {
		return false
	}
	g.inflight[key] = true
	return true
}

func (g *Guard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, key)
}
