package hostval

import (
	"github.com/hostbridge/host-bridge/errors"
)

// Elem enumerates the element types a vector value can store.
type Elem interface {
	Rint | Rfloat | Rbool | Rcplx | Rstr | byte
}

// NewVector wraps element storage of any supported element type in a value.
func NewVector[T Elem](data []T) *Value {
	switch d := any(data).(type) {
	case []Rint:
		return NewIntegers(d)
	case []Rfloat:
		return NewReals(d)
	case []Rbool:
		return NewLogicals(d)
	case []Rcplx:
		return NewComplexes(d)
	case []Rstr:
		return NewStrings(d)
	case []byte:
		return NewRaw(d)
	}
	panic("unreachable")
}

// Slice borrows the value's flat storage as a read-only typed slice. It
// fails with TypeMismatch when the storage holds a different element type.
// The slice is valid only while the source value is alive and its storage
// has not been reallocated.
func Slice[T Elem](v *Value) ([]T, error) {
	if d, ok := v.data.([]T); ok {
		return d, nil
	}
	return nil, errors.TypeMismatch(errors.PhaseValue, v,
		"storage is "+v.kind.String())
}

// SliceMut borrows the value's flat storage read-write. Mutation requires
// exclusive access; calling it on a shared or weak value panics.
func SliceMut[T Elem](v *Value) ([]T, error) {
	if !v.IsMutable() {
		panic("hostval: mutable slice of " + v.own.String() + " value")
	}
	return Slice[T](v)
}

// ScalarOf returns the single element of a length-1 vector of T, applying
// the scalar shape checks: zero length and multi-element vectors fail.
func ScalarOf[T Elem](v *Value) (T, error) {
	var zero T
	s, err := Slice[T](v)
	if err != nil {
		return zero, err
	}
	switch len(s) {
	case 0:
		return zero, errors.ExpectedNonZeroLength(errors.PhaseValue, v)
	case 1:
		return s[0], nil
	default:
		return zero, errors.ExpectedScalar(errors.PhaseValue, v, len(s))
	}
}
