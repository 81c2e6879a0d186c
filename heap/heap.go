package heap

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/hostbridge/host-bridge/hostval"
)

var (
	ErrClosed     = errors.New("host heap closed")
	ErrNotTracked = errors.New("value not tracked by the heap")
)

// Handle is an opaque reference to a tracked value.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Finalizer is the host collector's reclamation callback. It is invoked at
// most once per value and must be safe to run even if the value was never
// dereferenced after creation.
type Finalizer func(*hostval.Value)

// Event types for heap lifecycle notifications.
type EventType uint8

const (
	EventTracked EventType = iota
	EventProtected
	EventUnprotected
	EventFinalized
	EventReleased
)

// Event represents a heap lifecycle event.
type Event struct {
	Value  *hostval.Value
	Handle Handle
	Type   EventType
}

// Observer receives notifications about heap lifecycle events.
type Observer interface {
	OnHeapEvent(Event)
}

// Heap tracks the dynamic values the host keeps alive and runs their
// finalizers when they become unreachable.
type Heap struct {
	entries   []entry
	freeList  []Handle
	index     map[*hostval.Value]Handle
	observers []Observer
	mu        sync.Mutex
	obsMu     sync.RWMutex
	closed    bool
}

type entry struct {
	value     *hostval.Value
	fin       Finalizer
	onExit    bool
	protects  uint32
	valid     bool
	finalized bool
}

// New creates an empty host heap.
func New() *Heap {
	return &Heap{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
		index:    make(map[*hostval.Value]Handle, 64),
	}
}

// Track places a value under the collector's management and returns its
// handle. Tracking an already-tracked value returns the existing handle.
func (h *Heap) Track(v *hostval.Value) (Handle, error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return 0, ErrClosed
	}
	if hd, ok := h.index[v]; ok {
		h.mu.Unlock()
		return hd, nil
	}

	e := entry{value: v, valid: true}

	var hd Handle
	if len(h.freeList) > 0 {
		hd = h.freeList[len(h.freeList)-1]
		h.freeList = h.freeList[:len(h.freeList)-1]
		h.entries[hd-1] = e
	} else {
		h.entries = append(h.entries, e)
		hd = Handle(len(h.entries))
	}
	h.index[v] = hd
	h.mu.Unlock()

	Logger().Debug("value tracked",
		zap.Uint32("handle", uint32(hd)),
		zap.Stringer("kind", v.Kind()))
	h.notify(Event{Type: EventTracked, Handle: hd, Value: v})
	return hd, nil
}

// Lookup returns the handle of a tracked value.
func (h *Heap) Lookup(v *hostval.Value) (Handle, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	hd, ok := h.index[v]
	return hd, ok
}

// Get retrieves a tracked value by handle.
func (h *Heap) Get(hd Handle) (*hostval.Value, bool) {
	if hd == 0 {
		return nil, false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if int(hd) > len(h.entries) {
		return nil, false
	}
	e := h.entries[hd-1]
	if !e.valid {
		return nil, false
	}
	return e.value, true
}

// RegisterFinalizer installs the collector's reclamation callback for a
// tracked value. onExit additionally requests invocation at host-session
// teardown. The value must already be tracked.
func (h *Heap) RegisterFinalizer(v *hostval.Value, fn Finalizer, onExit bool) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}
	hd, ok := h.index[v]
	if !ok {
		return ErrNotTracked
	}
	e := &h.entries[hd-1]
	e.fin = fn
	e.onExit = onExit
	return nil
}

// Protect pins a value against collection. Pins nest.
func (h *Heap) Protect(v *hostval.Value) bool {
	h.mu.Lock()
	hd, ok := h.index[v]
	if !ok {
		h.mu.Unlock()
		return false
	}
	h.entries[hd-1].protects++
	h.mu.Unlock()

	h.notify(Event{Type: EventProtected, Handle: hd, Value: v})
	return true
}

// Unprotect releases one pin.
func (h *Heap) Unprotect(v *hostval.Value) bool {
	h.mu.Lock()
	hd, ok := h.index[v]
	if !ok || h.entries[hd-1].protects == 0 {
		h.mu.Unlock()
		return false
	}
	h.entries[hd-1].protects--
	h.mu.Unlock()

	h.notify(Event{Type: EventUnprotected, Handle: hd, Value: v})
	return true
}

// Release drops a value the host has determined to be unreachable, running
// its finalizer exactly once. Pinned values are not released.
func (h *Heap) Release(v *hostval.Value) bool {
	h.mu.Lock()
	hd, ok := h.index[v]
	if !ok {
		h.mu.Unlock()
		return false
	}
	fin, ok := h.dropLocked(hd)
	h.mu.Unlock()
	if !ok {
		return false
	}

	h.finalize(hd, v, fin)
	h.notify(Event{Type: EventReleased, Handle: hd, Value: v})
	return true
}

// dropLocked invalidates an entry and returns its pending finalizer.
// Returns ok=false when the entry is pinned or already gone.
func (h *Heap) dropLocked(hd Handle) (Finalizer, bool) {
	e := &h.entries[hd-1]
	if !e.valid || e.protects > 0 {
		return nil, false
	}
	fin := e.fin
	if e.finalized {
		fin = nil
	}
	e.finalized = true
	e.valid = false
	delete(h.index, e.value)
	e.value = nil
	e.fin = nil
	h.freeList = append(h.freeList, hd)
	return fin, true
}

// finalize runs a finalizer outside the heap lock.
func (h *Heap) finalize(hd Handle, v *hostval.Value, fin Finalizer) {
	if fin == nil {
		return
	}
	fin(v)
	Logger().Debug("finalizer run", zap.Uint32("handle", uint32(hd)))
	h.notify(Event{Type: EventFinalized, Handle: hd, Value: v})
}

// Collect sweeps every unpinned value, running finalizers. This stands in
// for the host collector deciding the values are unreachable.
func (h *Heap) Collect() int {
	h.mu.Lock()
	type pending struct {
		v   *hostval.Value
		fin Finalizer
		hd  Handle
	}
	var victims []pending
	for i := range h.entries {
		e := &h.entries[i]
		if !e.valid || e.protects > 0 {
			continue
		}
		hd := Handle(i + 1)
		v := e.value
		fin, ok := h.dropLocked(hd)
		if ok {
			victims = append(victims, pending{v: v, fin: fin, hd: hd})
		}
	}
	h.mu.Unlock()

	for _, p := range victims {
		h.finalize(p.hd, p.v, p.fin)
		h.notify(Event{Type: EventReleased, Handle: p.hd, Value: p.v})
	}
	return len(victims)
}

// Close is host-session teardown: every outstanding finalizer registered
// with onExit runs, pinned or not, and the heap stops accepting operations.
func (h *Heap) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true

	type pending struct {
		v   *hostval.Value
		fin Finalizer
		hd  Handle
	}
	var victims []pending
	for i := range h.entries {
		e := &h.entries[i]
		if !e.valid {
			continue
		}
		if e.fin != nil && e.onExit && !e.finalized {
			victims = append(victims, pending{v: e.value, fin: e.fin, hd: Handle(i + 1)})
		}
		e.finalized = true
		e.valid = false
		e.value = nil
		e.fin = nil
	}
	h.entries = nil
	h.freeList = nil
	h.index = nil
	h.mu.Unlock()

	for _, p := range victims {
		h.finalize(p.hd, p.v, p.fin)
	}
	Logger().Debug("heap closed", zap.Int("finalized", len(victims)))
	return nil
}

// Len returns the number of live tracked values.
func (h *Heap) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	count := 0
	for _, e := range h.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Subscribe adds an observer for lifecycle events.
func (h *Heap) Subscribe(o Observer) {
	h.obsMu.Lock()
	defer h.obsMu.Unlock()
	h.observers = append(h.observers, o)
}

// Unsubscribe removes an observer.
func (h *Heap) Unsubscribe(o Observer) {
	h.obsMu.Lock()
	defer h.obsMu.Unlock()
	for i, obs := range h.observers {
		if obs == o {
			h.observers = append(h.observers[:i], h.observers[i+1:]...)
			return
		}
	}
}

func (h *Heap) notify(e Event) {
	h.obsMu.RLock()
	defer h.obsMu.RUnlock()
	for _, o := range h.observers {
		o.OnHeapEvent(e)
	}
}
