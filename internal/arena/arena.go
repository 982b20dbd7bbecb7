// Package arena stores long-lived resources (GPU painters, framebuffers)
// behind generation-checked handles.
//
// Widgets keep a Handle and resolve it on the render thread each frame.
// A handle whose slot has been removed, or removed and reused, no longer
// resolves.
package arena

import "fmt"

// Handle identifies a slot in an Arena. The zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// String implements fmt.Stringer for logging.
func (h Handle) String() string {
	if h.IsZero() {
		return "handle(nil)"
	}
	return fmt.Sprintf("handle(%d#%d)", h.index, h.gen)
}

type slot[T any] struct {
	value T
	gen   uint32 // odd while occupied
}

// Arena is a slot allocator. It is not safe for concurrent use; all access
// happens on the render thread.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[idx]
	s.gen++
	s.value = v
	a.count++
	return Handle{index: idx, gen: s.gen}
}

// Get returns the value for h.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	s := a.lookup(h)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Remove frees the slot for h and returns the value it held.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	var zero T
	s := a.lookup(h)
	if s == nil {
		return zero, false
	}
	v := s.value
	s.value = zero
	s.gen++
	a.free = append(a.free, h.index)
	a.count--
	return v, true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.count
}

// Each calls fn for every live value in slot order. fn may Remove the
// handle it is given.
func (a *Arena[T]) Each(fn func(Handle, T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.gen&1 == 1 {
			fn(Handle{index: uint32(i), gen: s.gen}, s.value)
		}
	}
}

func (a *Arena[T]) lookup(h Handle) *slot[T] {
	if h.IsZero() || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if s.gen != h.gen {
		return nil
	}
	return s
}
