// Package embed moves native objects into host-managed containers.
//
// An ExternalPtr wraps a dynamic value of the opaque-pointer tag holding an
// owning pointer to a heap-allocated native object, a descriptive tag (the
// native type's name, diagnostics only) and an optional protected companion
// value kept alive alongside it.
//
// Construction registers a finalizer with the host collector as a single
// uninterruptible unit: the allocation and the registration run inside the
// single-writer region, so a failed construction is all-or-nothing. The
// finalizer runs at most once — when the collector decides the embedding is
// unreachable, or at host-session teardown — and clears the stored pointer
// to a null sentinel. Dereferencing afterwards fails through the checked
// accessors instead of reading freed memory; the unchecked MustRef panics.
//
// Exclusivity of Ref versus RefMut is the caller's responsibility,
// mirroring the host's single-threaded execution model.
package embed
