package hostval

import (
	"github.com/hostbridge/host-bridge/errors"
)

// StrIter is a lazy, finite, restartable sequence of string elements over
// either a plain string vector or an integer-coded factor, in storage
// order. Factor codes are resolved to labels on the fly by 1-based lookup
// into the level set.
//
// The iterator is a constant-size cursor; all data is borrowed from the
// source value, which must outlive it. Clone restarts are cheap.
type StrIter struct {
	strs   []Rstr // string vector storage, nil for factors and NA iterators
	codes  []Rint // factor codes
	levels []Rstr // factor labels
	i      int
	n      int
}

// NAIter returns an iterator of known length whose every element is the
// string missing-value marker. Used when length is known but content is
// absent.
func NAIter(n int) *StrIter {
	return &StrIter{n: n}
}

// AsStrIter returns an iterator over a string vector or a factor.
// Any other tag yields no iterator.
func (v *Value) AsStrIter() (*StrIter, bool) {
	switch v.kind {
	case KindString:
		d := v.data.([]Rstr)
		return &StrIter{strs: d, n: len(d)}, true
	case KindInteger:
		if !v.IsFactor() {
			return nil, false
		}
		lv, _ := v.Levels()
		return &StrIter{
			codes:  v.data.([]Rint),
			levels: lv.data.([]Rstr),
			n:      v.Len(),
		}, true
	default:
		return nil, false
	}
}

// StrIterFrom is the fallible form of AsStrIter, failing with
// ExpectedString for other tags.
func StrIterFrom(v *Value) (*StrIter, error) {
	it, ok := v.AsStrIter()
	if !ok {
		return nil, &errors.Error{Phase: errors.PhaseValue, Kind: errors.KindExpectedString, Value: v}
	}
	return it, nil
}

// Next yields the next element, resolving factor codes to labels. A missing
// code yields the string NA marker. Code 0 is an invalid factor encoding
// and is never dereferenced; encountering it panics.
func (it *StrIter) Next() (Rstr, bool) {
	if it.i >= it.n {
		return Rstr{}, false
	}
	i := it.i
	it.i++
	switch {
	case it.strs != nil:
		return it.strs[i], true
	case it.codes != nil:
		code := it.codes[i]
		if code.IsNA() {
			return NARstr(), true
		}
		if code == 0 {
			panic("hostval: factor code 0")
		}
		return it.levels[code-1], true
	default:
		return NARstr(), true
	}
}

// Len returns the exact number of elements remaining.
func (it *StrIter) Len() int {
	return it.n - it.i
}

// Skip advances past n elements. Skipping beyond the end exhausts the
// iterator; there is no faster-than-O(n) skip requirement and the cursor
// advance is O(1) here anyway.
func (it *StrIter) Skip(n int) *StrIter {
	it.i += n
	if it.i > it.n {
		it.i = it.n
	}
	return it
}

// Clone returns an independent cursor at the current position, restarting
// the remaining sequence.
func (it *StrIter) Clone() *StrIter {
	c := *it
	return &c
}

// Collect drains the iterator into a slice.
func (it *StrIter) Collect() []Rstr {
	out := make([]Rstr, 0, it.Len())
	for {
		s, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}
