// Package observable provides a value container that broadcasts changes
// through an [events.Event].
//
// An Observable holds a current value and notifies listeners synchronously
// whenever it is set. Listeners registered through [Observable.AddListener]
// are owned by the observable itself and removed when it is disposed, so a
// value and its subscriptions tear down together.
//
// Like the rest of this module, Observable is NOT thread-safe: confine each
// observable to one goroutine or serialize access externally.
package observable

import "github.com/go-drift/events/pkg/events"

// Observable holds a value of type T and an event that fires with the new
// value on every Set. Create one with [New].
type Observable[T any] struct {
	value   T
	changed events.Event[T]
	holder  events.Holder
}

// New creates an observable holding initial. No notification fires for the
// initial value.
func New[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	return o.value
}

// Set stores v, then notifies every listener with the stored value. The
// value is updated before any listener runs, so listeners reading
// [Observable.Value] see the new state. Set always notifies, even when v
// equals the current value.
func (o *Observable[T]) Set(v T) {
	o.value = v
	o.changed.Notify(o.value)
}

// Update applies transform to the current value and stores the result via
// [Observable.Set].
func (o *Observable[T]) Update(transform func(T) T) {
	o.Set(transform(o.value))
}

// Notify re-fires the change event with the current value without changing
// it. Useful to push the present state at listeners registered after the
// last Set.
func (o *Observable[T]) Notify() {
	o.changed.Notify(o.value)
}

// Changed exposes the backing change event, for callers that want to manage
// their own registrations (front insertion, handles, notifiers) instead of
// going through [Observable.AddListener].
func (o *Observable[T]) Changed() *events.Event[T] {
	return &o.changed
}

// AddListener registers fn on the change event. The registration is owned
// by the observable and removed when the observable is disposed; the
// returned pointer can be passed to [Observable.RemoveListener] for early
// removal.
//
// If a listener's own lifetime is shorter than the observable's, remove it
// before it goes away.
func (o *Observable[T]) AddListener(fn events.Callback[T]) *events.ScopedCallback[T] {
	return events.Attach(&o.holder, &o.changed, fn)
}

// AddListenerFront is [Observable.AddListener] with front insertion.
func (o *Observable[T]) AddListenerFront(fn events.Callback[T]) *events.ScopedCallback[T] {
	return events.AttachFront(&o.holder, &o.changed, fn)
}

// RemoveListener removes one listener previously returned by
// [Observable.AddListener]. Unknown or already-removed listeners are a
// no-op.
func (o *Observable[T]) RemoveListener(sc events.Disposable) {
	o.holder.Remove(sc)
}

// Dispose removes every listener the observable owns. Call it in the
// owner's teardown; the backing event and the owned registrations are torn
// down together, so nothing is left registered on a dead event.
func (o *Observable[T]) Dispose() {
	o.holder.RemoveAll()
}
