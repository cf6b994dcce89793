package events

// Disposable is anything that releases its resources through a single
// Dispose call. [ScopedCallback] and [Holder] implement it, and Holder
// stores its registrations through it, so one holder can own callbacks on
// events of different payload types.
type Disposable interface {
	Dispose()
}

// ScopedCallback owns one registration on one [Event]. Creating it
// registers the callback immediately; disposing it removes the
// registration. It exists so a registration's removal can be tied to its
// owner's teardown instead of being tracked by hand.
//
// Go has no destructors, so the owner must call Dispose (directly or via a
// [Holder]) on every teardown path. The target event must still be alive at
// that point: registrations are removed before the event they reference is
// discarded, never after.
//
// ScopedCallback must not be copied after creation; the one value returned
// by the constructor carries the removal responsibility.
type ScopedCallback[T any] struct {
	event  *Event[T]
	handle Handle[T]
	fn     Callback[T]
}

// NewScopedCallback registers fn on e and returns the owning
// ScopedCallback.
func NewScopedCallback[T any](e *Event[T], fn Callback[T]) *ScopedCallback[T] {
	return &ScopedCallback[T]{event: e, handle: e.Add(fn), fn: fn}
}

// NewScopedCallbackFront is [NewScopedCallback] with front insertion, so fn
// fires before previously registered callbacks.
func NewScopedCallbackFront[T any](e *Event[T], fn Callback[T]) *ScopedCallback[T] {
	return &ScopedCallback[T]{event: e, handle: e.AddFront(fn), fn: fn}
}

// Dispose removes the owned registration from its event. Disposing twice,
// or disposing after the registration was already removed, is a no-op.
func (s *ScopedCallback[T]) Dispose() {
	if s.event != nil {
		s.event.Remove(s.handle)
	}
	s.event = nil
	s.handle = Handle[T]{}
	s.fn = nil
}

// Replace removes the current registration and registers fn on e, which may
// be a different event than before. The ScopedCallback then owns the new
// registration.
func (s *ScopedCallback[T]) Replace(e *Event[T], fn Callback[T]) {
	if s.event != nil {
		s.event.Remove(s.handle)
	}
	s.event = e
	s.fn = fn
	s.handle = e.Add(fn)
}

// ReplaceFront is [ScopedCallback.Replace] with front insertion.
func (s *ScopedCallback[T]) ReplaceFront(e *Event[T], fn Callback[T]) {
	if s.event != nil {
		s.event.Remove(s.handle)
	}
	s.event = e
	s.fn = fn
	s.handle = e.AddFront(fn)
}

// Invoke calls the owned callback directly with v, bypassing the event.
// Useful for manual firing and tests. After Dispose, Invoke is a no-op.
func (s *ScopedCallback[T]) Invoke(v T) {
	if s.fn != nil {
		s.fn(v)
	}
}

// Event returns the event the registration currently lives on, or nil after
// Dispose.
func (s *ScopedCallback[T]) Event() *Event[T] {
	return s.event
}

// Holder owns a set of scoped registrations, typically one per event the
// owning object listens to. Embed it in a listener-like object and register
// through [Attach]; disposing the holder (or the object calling Dispose in
// its own teardown) removes every registration at once:
//
//	type gauge struct {
//	    events.Holder
//	    level float64
//	}
//
//	g := &gauge{}
//	events.Attach(&g.Holder, levelChanged, func(v float64) { g.level = v })
//	...
//	g.Dispose() // gauge stops listening
//
// Dispose the holder before destroying anything its callbacks reference,
// and before the events it registered on go away. The zero Holder is ready
// for use. Holder is NOT thread-safe.
type Holder struct {
	callbacks []Disposable
}

// Attach registers fn on e and stores the resulting [ScopedCallback] in h.
// The returned pointer is a non-owning reference usable for one-off early
// removal via [Holder.Remove]; the holder keeps ownership either way.
//
// Attach is a function rather than a method because the holder is
// payload-type-erased while each registration is typed.
func Attach[T any](h *Holder, e *Event[T], fn Callback[T]) *ScopedCallback[T] {
	sc := NewScopedCallback(e, fn)
	h.callbacks = append(h.callbacks, sc)
	return sc
}

// AttachFront is [Attach] with front insertion.
func AttachFront[T any](h *Holder, e *Event[T], fn Callback[T]) *ScopedCallback[T] {
	sc := NewScopedCallbackFront(e, fn)
	h.callbacks = append(h.callbacks, sc)
	return sc
}

// Remove disposes exactly one owned registration, identified by the pointer
// [Attach] returned, and releases it from the holder. A pointer the holder
// does not own is a no-op.
func (h *Holder) Remove(d Disposable) {
	for i, c := range h.callbacks {
		if c == d {
			c.Dispose()
			h.callbacks = append(h.callbacks[:i], h.callbacks[i+1:]...)
			return
		}
	}
}

// RemoveAll disposes every owned registration immediately, newest first.
// Useful defensively before tearing down members the callbacks still
// reference. The holder remains usable afterwards.
func (h *Holder) RemoveAll() {
	for i := len(h.callbacks) - 1; i >= 0; i-- {
		h.callbacks[i].Dispose()
	}
	h.callbacks = nil
}

// Dispose removes all owned registrations. It makes Holder a [Disposable]
// so holders can themselves be owned.
func (h *Holder) Dispose() {
	h.RemoveAll()
}

// Len returns the number of registrations the holder currently owns.
func (h *Holder) Len() int {
	return len(h.callbacks)
}
