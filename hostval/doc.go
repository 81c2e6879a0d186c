// Package hostval models the host runtime's dynamic value representation.
//
// Every host value is a single runtime-tagged container (Value) whose shape
// is discovered at runtime: a vector of integers, reals, complexes, logicals
// or strings, a raw byte vector, a named list, an opaque external pointer,
// or null. The tag is a closed Kind set; consumers pattern-match the kind
// once and dispatch rather than probing repeatedly.
//
// # Missing values
//
// Each vector type has a distinguished missing-value ("NA") sentinel that is
// not a representable payload:
//
//	Type      Sentinel
//	─────────────────────────────────────────────
//	integer   math.MinInt32
//	real      the 0x7FF00000000007A2 NaN payload
//	logical   tri-state Rbool, NA = math.MinInt32
//	complex   real-NA in either component
//	string    out-of-band flag on Rstr, never a byte pattern
//
// The element types Rint, Rfloat, Rbool, Rcplx and Rstr wrap the raw storage
// representation and expose IsNA.
//
// # Attributes
//
// Named side-channel values may be attached to a Value: "dim" (integer
// extents read by the array package), "levels" (string vector read by the
// factor codec and the string iterator), "class" (string vector marking the
// value's logical type for host dispatch) and "names" (list element names).
//
// # Ownership
//
// A Value is Owned (exclusively held by native code), Shared (visible to the
// host's active heap, read-only) or Weak (a non-owning view valid only while
// another holder keeps it alive). Mutation requires exclusive access;
// mutating a shared or weak value is a native programming error and panics.
//
// # Borrowed views
//
// Slice, SliceMut and StrIter borrow the value's flat storage. They are only
// valid while the source Value's storage location is stable; host calls that
// reallocate the source invalidate outstanding views. This is a documented
// aliasing hazard, not a runtime-checked one.
//
// # Single-writer region
//
// The host allocator is cooperative and not reentrant: it assumes a single
// logical thread drives the interpreter. All mutating operations (attribute
// sets, embedding, finalizer registration) funnel through Critical, a
// scoped re-entrant guard that serializes access to the host allocator.
package hostval
