package picker

import "sync"

// Watcher converts successive visibility levels into false→true edges.
// The zero value starts hidden, so a first observation of true is an edge.
type Watcher struct {
	mu      sync.Mutex
	visible bool
}

// Observe records visible and reports whether it is a false→true transition.
func (w *Watcher) Observe(visible bool) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	edge := visible && !w.visible
	w.visible = visible
	return edge
}

// Visible reports the last observed level.
func (w *Watcher) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Reset forgets the last observed level, as if the host remounted.
func (w *Watcher) Reset() {
	w.mu.Lock()
	w.visible = false
	w.mu.Unlock()
}
