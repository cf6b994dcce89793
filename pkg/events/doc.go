// Package events provides a small synchronous observer primitive for
// decoupling components that react to each other's state changes.
//
// # Core Components
//
//   - [Event]: an ordered registry of typed callbacks with synchronous
//     dispatch. Registrations are identified by a [Handle] that stays valid
//     across arbitrary other insertions and removals.
//
//   - [Notifier]: a deferred trigger that snapshots the payload by value at
//     creation time, so "prepare a notification" and "fire it" can happen at
//     different points in the program.
//
//   - [ScopedCallback] and [Holder]: tie a registration's lifetime to an
//     owning object, so tearing the owner down removes all its callbacks and
//     nothing is left dangling on the event.
//
// # Basic Usage
//
// Define an event, register callbacks, and notify:
//
//	var buttonPressed events.Event[bool]
//
//	handle := buttonPressed.Add(func(down bool) {
//	    updateHighlight(down)
//	})
//
//	buttonPressed.Notify(true)
//
//	// Later, when the consumer goes away:
//	buttonPressed.Remove(handle)
//
// Components communicate through the event without any knowledge of each
// other: anyone holding the event can notify, anyone can listen.
//
// Events carry a single payload type. For multiple arguments, use a small
// struct; for events with no payload, use Event[struct{}].
//
// # Reentrancy
//
// Dispatch is reentrancy-safe: a callback may add, remove, or replace
// callbacks on the event that is currently notifying it, including removing
// itself, and may call Notify again. See [Event.Notify] for the exact
// visibility rules.
//
// # Ownership
//
// A registration has exactly one owner responsible for removing it. When the
// owner is an object with its own teardown, embed a [Holder] and register
// through [Attach]; disposing the holder removes every registration it owns.
// An Event must outlive the registrations made on it: dispose holders and
// scoped callbacks before the event they reference goes away.
//
// # Threading
//
// This package is NOT thread-safe. Events, notifiers, and holders must be
// confined to a single goroutine, or the caller must serialize all access
// externally. Dispatch never blocks and never touches another goroutine; a
// common pattern is to prepare a [Notifier] anywhere and marshal the
// Trigger call onto the owning goroutine.
package events
