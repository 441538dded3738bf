package sat

// Allocator is the three-operation memory interface the binding and its
// engines allocate through. A nil return from Alloc or Realloc means out of
// memory; callers surface that as *MemoryError instead of crashing.
type Allocator interface {
	Alloc(n int) []byte
	// Realloc resizes buf to n bytes, preserving its prefix.
	Realloc(buf []byte, n int) []byte
	// Free returns buf to the allocator. Each buffer is freed at most once.
	Free(buf []byte)
}

// runtimeAllocator delegates to the Go runtime; freed buffers are simply
// left to the garbage collector.
type runtimeAllocator struct{}

func (runtimeAllocator) Alloc(n int) []byte { return make([]byte, n) }

func (runtimeAllocator) Realloc(buf []byte, n int) []byte {
	if n <= cap(buf) {
		return buf[:n]
	}
	next := make([]byte, n)
	copy(next, buf)
	return next
}

func (runtimeAllocator) Free([]byte) {}

// A TrackingAllocator wraps another allocator with live-byte accounting and
// an optional budget. It is the hook for host-side memory attribution and
// the standard way to exercise out-of-memory paths in tests.
type TrackingAllocator struct {
	inner  Allocator
	budget int
	live   int
}

// NewTrackingAllocator returns a TrackingAllocator over inner (the runtime
// allocator when nil). A positive budget makes allocations beyond it fail.
func NewTrackingAllocator(inner Allocator, budget int) *TrackingAllocator {
	if inner == nil {
		inner = runtimeAllocator{}
	}
	return &TrackingAllocator{inner: inner, budget: budget}
}

func (a *TrackingAllocator) Alloc(n int) []byte {
	if a.budget > 0 && a.live+n > a.budget {
		return nil
	}
	buf := a.inner.Alloc(n)
	if buf != nil {
		a.live += n
	}
	return buf
}

func (a *TrackingAllocator) Realloc(buf []byte, n int) []byte {
	grow := n - len(buf)
	if a.budget > 0 && grow > 0 && a.live+grow > a.budget {
		return nil
	}
	next := a.inner.Realloc(buf, n)
	if next != nil {
		a.live += grow
	}
	return next
}

func (a *TrackingAllocator) Free(buf []byte) {
	a.live -= len(buf)
	a.inner.Free(buf)
}

// Live reports the bytes currently held through this allocator.
func (a *TrackingAllocator) Live() int { return a.live }
