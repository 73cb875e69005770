package replay

import "sync"

// ThreadSafe wraps a Policy and is safe to use from multiple goroutines.
// The core policies themselves are unsynchronized; callers sharing one
// buffer across training workers should wrap it here or serialize access
// externally.
type ThreadSafe struct {
	mu sync.Mutex
	p  Policy
}

// NewThreadSafe wraps the given policy with a mutex.
func NewThreadSafe(p Policy) *ThreadSafe {
	return &ThreadSafe{p: p}
}

func (ts *ThreadSafe) String() string {
	return ts.p.String()
}

// Store implements Policy.
func (ts *ThreadSafe) Store(t Transition, tdError float32) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.p.Store(t, tdError)
}

// Sample implements Policy.
func (ts *ThreadSafe) Sample() (int, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.p.Sample()
}

// UpdatePriority implements Policy.
func (ts *ThreadSafe) UpdatePriority(idx int, tdError float32) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.p.UpdatePriority(idx, tdError)
}

// Get implements Policy.
func (ts *ThreadSafe) Get(idx int) (Transition, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.p.Get(idx)
}

// Len implements Policy.
func (ts *ThreadSafe) Len() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.p.Len()
}

// Cap implements Policy.
func (ts *ThreadSafe) Cap() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.p.Cap()
}
