package heap

import (
	"sync"
	"testing"

	"github.com/hostbridge/host-bridge/hostval"
)

func TestHeap_TrackAndGet(t *testing.T) {
	h := New()
	v := hostval.ScalarInteger(1)

	hd, err := h.Track(v)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if hd == 0 {
		t.Fatal("handle 0 is reserved")
	}

	got, ok := h.Get(hd)
	if !ok || got != v {
		t.Error("Get did not return the tracked value")
	}

	// re-tracking returns the same handle
	hd2, err := h.Track(v)
	if err != nil || hd2 != hd {
		t.Errorf("re-track returned %d, want %d", hd2, hd)
	}

	if _, ok := h.Get(0); ok {
		t.Error("handle 0 must be invalid")
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHeap_ReleaseRunsFinalizerOnce(t *testing.T) {
	h := New()
	v := hostval.ScalarInteger(1)
	h.Track(v)

	runs := 0
	if err := h.RegisterFinalizer(v, func(*hostval.Value) { runs++ }, true); err != nil {
		t.Fatal(err)
	}

	if !h.Release(v) {
		t.Fatal("Release returned false")
	}
	if runs != 1 {
		t.Fatalf("finalizer runs = %d, want 1", runs)
	}

	// second release is a no-op
	if h.Release(v) {
		t.Error("double release should return false")
	}
	if runs != 1 {
		t.Errorf("finalizer ran again: runs = %d", runs)
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
}

func TestHeap_ProtectBlocksRelease(t *testing.T) {
	h := New()
	v := hostval.ScalarInteger(1)
	h.Track(v)

	if !h.Protect(v) {
		t.Fatal("Protect failed")
	}
	if h.Release(v) {
		t.Fatal("released a pinned value")
	}
	if !h.Unprotect(v) {
		t.Fatal("Unprotect failed")
	}
	if !h.Release(v) {
		t.Fatal("release after unpin failed")
	}
}

func TestHeap_CollectSweepsUnpinned(t *testing.T) {
	h := New()
	pinned := hostval.ScalarInteger(1)
	loose := hostval.ScalarInteger(2)
	h.Track(pinned)
	h.Track(loose)
	h.Protect(pinned)

	finalized := make(map[*hostval.Value]int)
	for _, v := range []*hostval.Value{pinned, loose} {
		v := v
		h.RegisterFinalizer(v, func(*hostval.Value) { finalized[v]++ }, false)
	}

	if n := h.Collect(); n != 1 {
		t.Fatalf("Collect() = %d, want 1", n)
	}
	if finalized[loose] != 1 || finalized[pinned] != 0 {
		t.Errorf("finalized = %v", finalized)
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHeap_CloseRunsOnExitFinalizers(t *testing.T) {
	h := New()
	withExit := hostval.ScalarInteger(1)
	withoutExit := hostval.ScalarInteger(2)
	h.Track(withExit)
	h.Track(withoutExit)
	h.Protect(withExit) // teardown finalizes pinned values too

	runs := make(map[*hostval.Value]int)
	h.RegisterFinalizer(withExit, func(v *hostval.Value) { runs[v]++ }, true)
	h.RegisterFinalizer(withoutExit, func(v *hostval.Value) { runs[v]++ }, false)

	if err := h.Close(); err != nil {
		t.Fatal(err)
	}
	if runs[withExit] != 1 {
		t.Errorf("on-exit finalizer runs = %d, want 1", runs[withExit])
	}
	if runs[withoutExit] != 0 {
		t.Errorf("non-exit finalizer ran at teardown")
	}

	// closed heap rejects new work
	if _, err := h.Track(hostval.NewNull()); err != ErrClosed {
		t.Errorf("Track after close: err = %v, want ErrClosed", err)
	}
	// second close is fine
	if err := h.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestHeap_RegisterFinalizerUntracked(t *testing.T) {
	h := New()
	err := h.RegisterFinalizer(hostval.NewNull(), func(*hostval.Value) {}, false)
	if err != ErrNotTracked {
		t.Errorf("err = %v, want ErrNotTracked", err)
	}
}

func TestHeap_HandleReuse(t *testing.T) {
	h := New()
	a := hostval.ScalarInteger(1)
	hd1, _ := h.Track(a)
	h.Release(a)

	b := hostval.ScalarInteger(2)
	hd2, _ := h.Track(b)
	if hd2 != hd1 {
		t.Errorf("freed handle not reused: %d vs %d", hd2, hd1)
	}
	got, ok := h.Get(hd2)
	if !ok || got != b {
		t.Error("reused handle resolves to wrong value")
	}
}

type eventRecorder struct {
	mu     sync.Mutex
	events []EventType
}

func (r *eventRecorder) OnHeapEvent(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e.Type)
}

func TestHeap_Observers(t *testing.T) {
	h := New()
	rec := &eventRecorder{}
	h.Subscribe(rec)

	v := hostval.ScalarInteger(1)
	h.Track(v)
	h.Protect(v)
	h.Unprotect(v)
	h.RegisterFinalizer(v, func(*hostval.Value) {}, false)
	h.Release(v)

	want := []EventType{EventTracked, EventProtected, EventUnprotected, EventFinalized, EventReleased}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.events) != len(want) {
		t.Fatalf("events = %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d = %d, want %d", i, rec.events[i], want[i])
		}
	}

	h.Unsubscribe(rec)
	h.Track(hostval.NewNull())
	if len(rec.events) != len(want) {
		t.Error("observer notified after unsubscribe")
	}
}
