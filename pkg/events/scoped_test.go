package events

import (
	"reflect"
	"testing"
)

func TestScopedCallback_Dispose(t *testing.T) {
	var e Event[int]
	calls := 0

	sc := NewScopedCallback(&e, func(int) { calls++ })
	e.Notify(0)
	sc.Dispose()
	e.Notify(0)

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
	if e.Len() != 0 {
		t.Errorf("Expected registration removed, Len = %d", e.Len())
	}

	sc.Dispose() // second dispose is a no-op
}

func TestScopedCallback_Front(t *testing.T) {
	var e Event[int]
	var log []string

	e.Add(func(int) { log = append(log, "appended") })
	sc := NewScopedCallbackFront(&e, func(int) { log = append(log, "front") })
	defer sc.Dispose()

	e.Notify(0)

	want := []string{"front", "appended"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
}

func TestScopedCallback_Replace(t *testing.T) {
	var e1, e2 Event[int]
	var log []string

	sc := NewScopedCallback(&e1, func(int) { log = append(log, "one") })
	sc.Replace(&e2, func(int) { log = append(log, "two") })

	e1.Notify(0)
	e2.Notify(0)

	want := []string{"two"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
	if e1.Len() != 0 {
		t.Errorf("Old registration should be gone, e1.Len = %d", e1.Len())
	}
	if sc.Event() != &e2 {
		t.Error("Event accessor should report the new target")
	}

	sc.Dispose()
	if e2.Len() != 0 {
		t.Errorf("Dispose after Replace should remove the new registration, e2.Len = %d", e2.Len())
	}
}

func TestScopedCallback_ReplaceFront(t *testing.T) {
	var e Event[int]
	var log []string

	e.Add(func(int) { log = append(log, "appended") })
	sc := NewScopedCallback(&e, func(int) { log = append(log, "old") })
	sc.ReplaceFront(&e, func(int) { log = append(log, "front") })
	defer sc.Dispose()

	e.Notify(0)

	want := []string{"front", "appended"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
}

func TestScopedCallback_Invoke(t *testing.T) {
	var e Event[int]
	got := 0

	sc := NewScopedCallback(&e, func(v int) { got = v })
	sc.Invoke(9)

	// Invoke bypasses the event entirely.
	if got != 9 {
		t.Errorf("Expected 9, got %d", got)
	}

	sc.Dispose()
	sc.Invoke(1) // no-op after dispose

	if got != 9 {
		t.Errorf("Invoke after Dispose should be a no-op, got %d", got)
	}
}

func TestHolder_RemoveAll(t *testing.T) {
	var e1 Event[int]
	var e2 Event[string]
	var h Holder
	calls := 0

	Attach(&h, &e1, func(int) { calls++ })
	Attach(&h, &e1, func(int) { calls++ })
	Attach(&h, &e2, func(string) { calls++ })

	if h.Len() != 3 {
		t.Errorf("Expected holder to own 3 registrations, got %d", h.Len())
	}

	h.RemoveAll()
	e1.Notify(0)
	e2.Notify("")

	if calls != 0 {
		t.Errorf("Expected no calls after RemoveAll, got %d", calls)
	}
	if e1.Len() != 0 || e2.Len() != 0 {
		t.Errorf("Expected both events empty, got %d and %d", e1.Len(), e2.Len())
	}

	// The holder stays usable.
	Attach(&h, &e1, func(int) { calls++ })
	e1.Notify(0)
	if calls != 1 {
		t.Errorf("Expected holder to accept new registrations, got %d calls", calls)
	}
}

func TestHolder_RemoveOne(t *testing.T) {
	var e Event[int]
	var h Holder
	var log []string

	sca := Attach(&h, &e, func(int) { log = append(log, "a") })
	Attach(&h, &e, func(int) { log = append(log, "b") })

	h.Remove(sca)
	e.Notify(0)

	want := []string{"b"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
	if h.Len() != 1 {
		t.Errorf("Expected 1 owned registration, got %d", h.Len())
	}
}

func TestHolder_RemoveUnknown(t *testing.T) {
	var e Event[int]
	var h, other Holder

	Attach(&h, &e, func(int) {})
	foreign := Attach(&other, &e, func(int) {})

	h.Remove(foreign) // not owned by h, no-op

	if h.Len() != 1 || other.Len() != 1 {
		t.Errorf("Expected both holders untouched, got %d and %d", h.Len(), other.Len())
	}
	if e.Len() != 2 {
		t.Errorf("Expected both registrations live, Len = %d", e.Len())
	}
}

func TestHolder_AttachFront(t *testing.T) {
	var e Event[int]
	var h Holder
	var log []string

	e.Add(func(int) { log = append(log, "appended") })
	AttachFront(&h, &e, func(int) { log = append(log, "front") })
	defer h.Dispose()

	e.Notify(0)

	want := []string{"front", "appended"}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("Expected %v, got %v", want, log)
	}
}

// listener is a typical holder-embedding consumer: its registrations go
// away with it.
type listener struct {
	Holder
	log []int
}

func TestHolder_EmbeddedTeardown(t *testing.T) {
	var e Event[int]

	l := &listener{}
	Attach(&l.Holder, &e, func(v int) { l.log = append(l.log, v) })

	e.Notify(1)
	l.Dispose()
	e.Notify(2)

	want := []int{1}
	if !reflect.DeepEqual(l.log, want) {
		t.Errorf("Expected %v, got %v", want, l.log)
	}
	if e.Len() != 0 {
		t.Errorf("Expected no registrations to survive the listener, Len = %d", e.Len())
	}
}
