// Package hostbridge bridges statically-typed native code and a
// dynamically-typed, garbage-collected host runtime.
//
// The subpackages split along the boundary's concerns: hostval models the
// host's dynamic values and their storage tags, convert maps dynamic values
// onto native types with checked scalar and vector conversions, embed moves
// native objects behind host-managed opaque pointers, array views flat
// storage through typed dimensions, factor codes native enumerations as
// categorical values, frame reads tabular lists, and heap stands in for the
// host collector's bookkeeping.
//
// A Session ties the pieces to one host heap. Closing the session runs the
// teardown finalizers of every embedding still alive, so native resources
// are reclaimed even when the host never collected them.
package hostbridge

import (
	"go.uber.org/zap"

	"github.com/hostbridge/host-bridge/embed"
	"github.com/hostbridge/host-bridge/heap"
)

// Session owns one host heap and its outstanding embeddings.
type Session struct {
	heap *heap.Heap
}

// NewSession creates a session backed by a fresh host heap.
func NewSession() *Session {
	return &Session{heap: heap.New()}
}

// Heap exposes the session's host heap for tracking and embedding.
func (s *Session) Heap() *heap.Heap {
	return s.heap
}

// Collect sweeps the unpinned values of the session's heap, standing in
// for a host collection cycle. It returns the number of values reclaimed.
func (s *Session) Collect() int {
	return s.heap.Collect()
}

// Close is host-session teardown. Outstanding teardown finalizers run and
// further heap operations fail. Closing twice is a no-op.
func (s *Session) Close() error {
	return s.heap.Close()
}

// SetLogger routes the library's structured logs to l.
func SetLogger(l *zap.Logger) {
	heap.SetLogger(l.Named("heap"))
	embed.SetLogger(l.Named("embed"))
}
