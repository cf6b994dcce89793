package events

// Notifier is a deferred trigger for one [Event]. It captures the payload by
// value when it is created, decoupling the decision to notify from the
// notification itself: the payload's source can go out of scope, or change,
// without affecting what a later Trigger delivers.
//
// A Notifier may be triggered any number of times; it never expires. A
// prepared notification is "cancelled" simply by never triggering it, or by
// disabling the event first.
//
// To guarantee a notification fires on every exit path of a function,
// including early returns, defer the trigger:
//
//	n := progressChanged.MakeNotifier(done)
//	defer n.Trigger()
//
// Notifier is NOT thread-safe; a Notifier may be handed to another
// goroutine, but the caller must ensure Trigger runs serialized with all
// other access to the event.
type Notifier[T any] struct {
	event *Event[T]
	value T
}

// MakeNotifier snapshots v now and returns a Notifier that delivers it to
// this event on each Trigger.
func (e *Event[T]) MakeNotifier(v T) Notifier[T] {
	return Notifier[T]{event: e, value: v}
}

// Trigger notifies the target event with the captured payload. Triggering
// the zero Notifier is a no-op.
func (n Notifier[T]) Trigger() {
	if n.event != nil {
		n.event.Notify(n.value)
	}
}
