package events

// Callback is a function registered on an [Event] with payload type T.
type Callback[T any] func(T)

// node is one slot in an Event's callback list. Nodes are never reused, so a
// stale Handle can never alias a registration made after it was removed.
type node[T any] struct {
	fn      Callback[T]
	prev    *node[T]
	next    *node[T]
	owner   *Event[T]
	removed bool
}

// Handle identifies one registered callback for later removal or
// replacement. Handles are issued by [Event.Add] and [Event.AddFront] and
// stay valid until the registration is removed.
//
// The zero Handle is the empty sentinel: removing or replacing through it is
// a no-op.
type Handle[T any] struct {
	n *node[T]
}

// Valid reports whether the handle refers to a live registration.
func (h Handle[T]) Valid() bool {
	return h.n != nil && !h.n.removed
}

// cursor tracks the next callback an in-flight Notify pass will visit.
// Remove advances any cursor parked on the node being unlinked, so a cursor
// only ever points at a live node or nil.
type cursor[T any] struct {
	next *node[T]
}

// Event is an ordered registry of callbacks with synchronous dispatch.
//
// The zero value is an enabled, empty event ready for use:
//
//	var changed events.Event[int]
//	changed.Add(func(v int) { ... })
//	changed.Notify(42)
//
// Callbacks fire in registration order, front-inserted callbacks before
// appended ones. Event is NOT thread-safe; see the package documentation.
type Event[T any] struct {
	head *node[T]
	tail *node[T]
	size int

	// disabled is inverted so the zero value starts enabled.
	disabled bool

	// cursors holds one entry per active Notify pass, innermost last.
	cursors []*cursor[T]
}

// Add appends a callback and returns its handle. Add always succeeds; a nil
// callback registers an inert slot that dispatch skips.
func (e *Event[T]) Add(fn Callback[T]) Handle[T] {
	n := &node[T]{fn: fn, prev: e.tail, owner: e}
	if e.tail != nil {
		e.tail.next = n
	} else {
		e.head = n
	}
	e.tail = n
	e.size++
	return Handle[T]{n: n}
}

// AddFront prepends a callback so it fires before all currently registered
// ones, and returns its handle.
func (e *Event[T]) AddFront(fn Callback[T]) Handle[T] {
	n := &node[T]{fn: fn, next: e.head, owner: e}
	if e.head != nil {
		e.head.prev = n
	} else {
		e.tail = n
	}
	e.head = n
	e.size++
	return Handle[T]{n: n}
}

// Remove deletes the registration identified by h. Removing the zero handle,
// an already-removed handle, or a handle issued by a different event is a
// no-op. Other live handles are unaffected.
//
// Remove is safe to call while this event is notifying, including from a
// callback removing itself or any callback the in-flight pass has not
// reached yet (the pass skips it).
func (e *Event[T]) Remove(h Handle[T]) {
	n := h.n
	if n == nil || n.removed || n.owner != e {
		return
	}
	for _, c := range e.cursors {
		if c.next == n {
			c.next = n.next
		}
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		e.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		e.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	n.fn = nil
	n.removed = true
	e.size--
}

// Replace swaps the callback stored at h in place. The handle stays valid
// and the registration keeps its position in dispatch order. Replace reports
// whether the swap happened; it returns false for the zero handle, a removed
// handle, or a handle issued by a different event.
func (e *Event[T]) Replace(h Handle[T], fn Callback[T]) bool {
	n := h.n
	if n == nil || n.removed || n.owner != e {
		return false
	}
	n.fn = fn
	return true
}

// Notify synchronously invokes every registered callback with v, in
// registration order, on the calling goroutine. If the event is disabled,
// Notify invokes nothing.
//
// Before each callback runs, the pass captures the next registration to
// visit. Callbacks may therefore mutate this event freely:
//
//   - Removing the running callback or any later one works; a removed
//     callback the pass has not reached yet is skipped.
//   - A callback appended during a pass is reached by that pass, unless it
//     was appended by the last callback (the cursor had already run off the
//     end). A front-inserted callback is never reached by an in-flight pass.
//     Either way it fires in every subsequent Notify.
//   - Calling Notify again from a callback runs a complete nested pass;
//     the outer pass then resumes where it left off.
func (e *Event[T]) Notify(v T) {
	if e.disabled || e.head == nil {
		return
	}
	c := &cursor[T]{next: e.head}
	e.cursors = append(e.cursors, c)
	defer func() {
		e.cursors = e.cursors[:len(e.cursors)-1]
	}()
	for c.next != nil {
		n := c.next
		c.next = n.next
		if n.fn != nil {
			n.fn(v)
		}
	}
}

// SetEnabled gates Notify: while disabled, Notify is a no-op. Add, Remove,
// and Replace are unaffected. Events start enabled.
func (e *Event[T]) SetEnabled(enabled bool) {
	e.disabled = !enabled
}

// Enabled reports whether Notify currently dispatches.
func (e *Event[T]) Enabled() bool {
	return !e.disabled
}

// Disable disables the event and returns a function that restores the
// enabled state the event had before this call. Restore closures nest:
//
//	restore := e.Disable()
//	defer restore()
//
// Restoring re-establishes the previous state, not unconditionally enabled,
// so nested disables compose.
func (e *Event[T]) Disable() (restore func()) {
	prev := e.disabled
	e.disabled = true
	return func() {
		e.disabled = prev
	}
}

// Len returns the number of registered callbacks.
func (e *Event[T]) Len() int {
	return e.size
}
