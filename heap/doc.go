// Package heap models the host collector's side of the bridge: the set of
// dynamic values the host keeps alive, and the finalizers it runs when a
// value becomes unreachable.
//
// # Lifecycle
//
// Values enter the heap with Track, which returns an opaque Handle (0 is
// reserved and always invalid). Protect pins a value against collection;
// Unprotect releases the pin. Release finalizes and drops a single value;
// Collect sweeps everything unpinned. Close is host-session teardown: it
// runs every outstanding finalizer registered with onExit and stops
// accepting operations.
//
// # Finalizers
//
// A finalizer is a one-argument callback invoked with the value being
// reclaimed. The heap guarantees at-most-once invocation per value; the
// callback must tolerate a value whose pointer was already cleared, and
// native code must not depend on invocation timing — the collector may run
// it at any later point, or never if the process exits first.
//
// # Observers
//
// Observers receive lifecycle events (tracked, protected, released,
// finalized) for diagnostics and tests.
package heap
