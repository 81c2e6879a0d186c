package convert

import (
	"fmt"
	"math"

	"github.com/hostbridge/host-bridge/errors"
	"github.com/hostbridge/host-bridge/hostval"
)

// Integer enumerates the native integer targets.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float enumerates the native floating targets.
type Float interface {
	~float32 | ~float64
}

// epsilon is the float64 machine epsilon used for the whole-number check.
const epsilon = 2.220446049250313e-16

func checkScalar(v *hostval.Value) error {
	switch n := v.Len(); n {
	case 0:
		return errors.ExpectedNonZeroLength(errors.PhaseConvert, v)
	case 1:
		return nil
	default:
		return errors.ExpectedScalar(errors.PhaseConvert, v, n)
	}
}

// fits reports whether the 32-bit host integer x is representable in T.
// The round-trip comparison alone is not enough: a negative value wraps to
// a large unsigned and can survive the trip for 64-bit targets.
func fits[T Integer](x int32) bool {
	var zero T
	if zero-1 > zero && x < 0 { // unsigned target
		return false
	}
	return int64(T(x)) == int64(x)
}

func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}

// Int converts a numeric scalar value to a native integer type.
func Int[T Integer](v *hostval.Value) (T, error) {
	var zero T
	if err := checkScalar(v); err != nil {
		return zero, err
	}
	if v.IsNA() {
		return zero, errors.MustNotBeNA(errors.PhaseConvert, v)
	}

	// Int-to-int needs an explicit limit check: a plain narrowing
	// conversion turns -1 into 255 for unsigned targets.
	if iv, ok := v.AsInteger(); ok {
		if !fits[T](iv) {
			return zero, errors.OutOfLimits(errors.PhaseConvert, v, typeName[T]())
		}
		return T(iv), nil
	}

	// Float-to-int accepts only reals representing a whole number within
	// floating-point epsilon.
	if rv, ok := v.AsReal(); ok {
		result := T(rv)
		if math.Abs(float64(result)-rv) < epsilon {
			return result, nil
		}
		return zero, errors.ExpectedWholeNumber(errors.PhaseConvert, v)
	}

	return zero, errors.ExpectedNumeric(errors.PhaseConvert, v)
}

// FloatOf converts a numeric scalar value to a native floating type.
// Real sources always succeed; integer sources widen.
func FloatOf[T Float](v *hostval.Value) (T, error) {
	var zero T
	if err := checkScalar(v); err != nil {
		return zero, err
	}
	if v.IsNA() {
		return zero, errors.MustNotBeNA(errors.PhaseConvert, v)
	}

	if rv, ok := v.AsReal(); ok {
		return T(rv), nil
	}
	if iv, ok := v.AsInteger(); ok {
		return T(iv), nil
	}

	return zero, errors.ExpectedNumeric(errors.PhaseConvert, v)
}

// Logical converts a scalar logical value to the tri-state element,
// NA included.
func Logical(v *hostval.Value) (hostval.Rbool, error) {
	if err := checkScalar(v); err != nil {
		return hostval.False, err
	}
	if b, ok := v.AsLogical(); ok {
		return b, nil
	}
	return hostval.False, errors.New(errors.PhaseConvert, errors.KindExpectedLogical).
		Value(v).Build()
}

// Bool converts a scalar logical value to a native bool.
// NAs are not allowed; the tri-state value's "true" projection is taken.
func Bool(v *hostval.Value) (bool, error) {
	if v.IsNA() {
		return false, errors.MustNotBeNA(errors.PhaseConvert, v)
	}
	b, err := Logical(v)
	if err != nil {
		return false, err
	}
	return b.IsTrue(), nil
}

// String converts a scalar string value to native text. NAs are not allowed.
func String(v *hostval.Value) (string, error) {
	if v.IsNA() {
		return "", errors.MustNotBeNA(errors.PhaseConvert, v)
	}
	switch n := v.Len(); n {
	case 0:
		return "", errors.ExpectedNonZeroLength(errors.PhaseConvert, v)
	case 1:
		if s, ok := v.AsStr(); ok {
			return s.String(), nil
		}
		return "", &errors.Error{Phase: errors.PhaseConvert, Kind: errors.KindExpectedString, Value: v}
	default:
		return "", errors.ExpectedScalar(errors.PhaseConvert, v, n)
	}
}

// Complex converts a scalar numeric value to a complex element. Unlike the
// other scalar paths a missing value is valid and converts to the complex
// NA element. For complex-typed storage the first element is returned.
func Complex(v *hostval.Value) (hostval.Rcplx, error) {
	if err := checkScalar(v); err != nil {
		return 0, err
	}
	if v.IsNA() {
		return hostval.NARcplx(), nil
	}

	if rv, ok := v.AsReal(); ok {
		return hostval.Rcplx(complex(rv, 0)), nil
	}
	// Any 32-bit integer is exactly representable as a float64.
	if iv, ok := v.AsInteger(); ok {
		return hostval.Rcplx(complex(float64(iv), 0)), nil
	}

	s, err := hostval.Slice[hostval.Rcplx](v)
	if err != nil {
		return 0, err
	}
	return s[0], nil
}

// Optional maps null or missing values to absent instead of failing, and
// otherwise applies conv.
func Optional[T any](v *hostval.Value, conv func(*hostval.Value) (T, error)) (*T, error) {
	if v.IsNull() || v.IsNA() {
		return nil, nil
	}
	t, err := conv(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
