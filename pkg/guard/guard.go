package guard

import "sync/atomic"

// Guard single-entry execution guard. A mutating operation takes the guard
// on entry and releases it on every exit path; a nested or concurrent entry
// is rejected instead of queued.
type Guard struct {
	entered int32
}

func New() *Guard {
	return &Guard{}
}

// Enter try to take the guard. Returns false if an operation already holds
// it; the caller must not proceed.
func (g *Guard) Enter() bool {
	return atomic.CompareAndSwapInt32(&g.entered, 0, 1)
}

// Exit release the guard
func (g *Guard) Exit() {
	atomic.StoreInt32(&g.entered, 0)
}
