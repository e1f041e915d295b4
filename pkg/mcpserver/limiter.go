package mcpserver

import "sync"

// CallLimiter bounds the number of simultaneous in-flight calls. Report
// generation is cheap and CPU-only, so this is a defensive cap rather than a
// queueing discipline.
type CallLimiter struct {
	mu       sync.Mutex
	max      int
	inFlight int
}

// NewCallLimiter creates a limiter allowing up to max concurrent calls.
// A non-positive max disables the limit.
func NewCallLimiter(max int) *CallLimiter {
	return &CallLimiter{max: max}
}

// Acquire reserves a slot, reporting false when the server is saturated.
func (l *CallLimiter) Acquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.max > 0 && l.inFlight >= l.max {
		return false
	}
	l.inFlight++
	return true
}

// Release frees a slot reserved by Acquire.
func (l *CallLimiter) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inFlight > 0 {
		l.inFlight--
	}
}

// InFlight returns the current number of reserved slots.
func (l *CallLimiter) InFlight() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inFlight
}
