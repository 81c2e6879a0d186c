package array

import (
	"fmt"

	"github.com/hostbridge/host-bridge/errors"
	"github.com/hostbridge/host-bridge/hostval"
)

// Column is a one-dimensional typed view.
type Column[T hostval.Elem] struct {
	val  *hostval.Value
	data []T
}

// Matrix is a two-dimensional typed view in column-major order.
type Matrix[T hostval.Elem] struct {
	val   *hostval.Value
	data  []T
	nrows int
	ncols int
}

// Matrix3D is a three-dimensional typed view in column-major order.
type Matrix3D[T hostval.Elem] struct {
	val  *hostval.Value
	data []T
	dims [3]int
}

// NewColumn builds a fresh column of n elements, filling each from f.
func NewColumn[T hostval.Elem](n int, f func(i int) T) *Column[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = f(i)
	}
	v := hostval.NewVector(data)
	v.SetDim(n)
	return &Column[T]{val: v, data: data}
}

// NewMatrix builds a fresh nrows-by-ncols matrix, filling each cell from f.
// Storage is column-major: the row index varies fastest.
func NewMatrix[T hostval.Elem](nrows, ncols int, f func(r, c int) T) *Matrix[T] {
	data := make([]T, nrows*ncols)
	for c := 0; c < ncols; c++ {
		for r := 0; r < nrows; r++ {
			data[r+nrows*c] = f(r, c)
		}
	}
	v := hostval.NewVector(data)
	v.SetDim(nrows, ncols)
	return &Matrix[T]{val: v, data: data, nrows: nrows, ncols: ncols}
}

// NewMatrix3D builds a fresh n0-by-n1-by-n2 array, filling each cell from f.
// The first extent varies fastest and the last slowest.
func NewMatrix3D[T hostval.Elem](n0, n1, n2 int, f func(i, j, k int) T) *Matrix3D[T] {
	data := make([]T, n0*n1*n2)
	for k := 0; k < n2; k++ {
		for j := 0; j < n1; j++ {
			for i := 0; i < n0; i++ {
				data[i+n0*(j+n1*k)] = f(i, j, k)
			}
		}
	}
	v := hostval.NewVector(data)
	v.SetDim(n0, n1, n2)
	return &Matrix3D[T]{val: v, data: data, dims: [3]int{n0, n1, n2}}
}

// NAElem enumerates the element types that have a missing-value marker.
type NAElem interface {
	hostval.Rint | hostval.Rfloat | hostval.Rbool | hostval.Rcplx | hostval.Rstr
}

func naOf[T NAElem]() T {
	var zero T
	switch any(zero).(type) {
	case hostval.Rint:
		return any(hostval.NARint()).(T)
	case hostval.Rfloat:
		return any(hostval.NARfloat()).(T)
	case hostval.Rbool:
		return any(hostval.NARbool()).(T)
	case hostval.Rcplx:
		return any(hostval.NARcplx()).(T)
	default:
		return any(hostval.NARstr()).(T)
	}
}

// NewColumnWithNA builds a column of n missing elements.
func NewColumnWithNA[T NAElem](n int) *Column[T] {
	na := naOf[T]()
	return NewColumn(n, func(int) T { return na })
}

// NewMatrixWithNA builds an nrows-by-ncols matrix of missing elements.
func NewMatrixWithNA[T NAElem](nrows, ncols int) *Matrix[T] {
	na := naOf[T]()
	return NewMatrix(nrows, ncols, func(int, int) T { return na })
}

// NewMatrix3DWithNA builds an n0-by-n1-by-n2 array of missing elements.
func NewMatrix3DWithNA[T NAElem](n0, n1, n2 int) *Matrix3D[T] {
	na := naOf[T]()
	return NewMatrix3D(n0, n1, n2, func(int, int, int) T { return na })
}

// ColumnFromValue wraps existing vector storage in a column view.
func ColumnFromValue[T hostval.Elem](v *hostval.Value) (*Column[T], error) {
	data, err := hostval.Slice[T](v)
	if err != nil {
		return nil, &errors.Error{Phase: errors.PhaseArray, Kind: errors.KindExpectedVector, Value: v, Cause: err}
	}
	return &Column[T]{val: v, data: data}, nil
}

// MatrixFromValue wraps existing storage in a matrix view. The value must
// carry a two-extent dimension attribute consistent with its length.
func MatrixFromValue[T hostval.Elem](v *hostval.Value) (*Matrix[T], error) {
	dims, ok := v.Dim()
	if !ok || len(dims) != 2 {
		return nil, &errors.Error{Phase: errors.PhaseArray, Kind: errors.KindExpectedMatrix, Value: v}
	}
	data, err := hostval.Slice[T](v)
	if err != nil {
		return nil, errors.TypeMismatch(errors.PhaseArray, v, "matrix storage is "+v.Kind().String())
	}
	if dims[0]*dims[1] != len(data) {
		return nil, errors.TypeMismatch(errors.PhaseArray, v,
			fmt.Sprintf("dimension %dx%d does not cover length %d", dims[0], dims[1], len(data)))
	}
	return &Matrix[T]{val: v, data: data, nrows: dims[0], ncols: dims[1]}, nil
}

// Matrix3DFromValue wraps existing storage in a three-dimensional view. The
// value must carry a three-extent dimension attribute consistent with its
// length.
func Matrix3DFromValue[T hostval.Elem](v *hostval.Value) (*Matrix3D[T], error) {
	dims, ok := v.Dim()
	if !ok || len(dims) != 3 {
		return nil, &errors.Error{Phase: errors.PhaseArray, Kind: errors.KindExpectedMatrix3D, Value: v}
	}
	data, err := hostval.Slice[T](v)
	if err != nil {
		return nil, errors.TypeMismatch(errors.PhaseArray, v, "array storage is "+v.Kind().String())
	}
	if dims[0]*dims[1]*dims[2] != len(data) {
		return nil, errors.TypeMismatch(errors.PhaseArray, v,
			fmt.Sprintf("dimension %dx%dx%d does not cover length %d", dims[0], dims[1], dims[2], len(data)))
	}
	return &Matrix3D[T]{val: v, data: data, dims: [3]int{dims[0], dims[1], dims[2]}}, nil
}

func checkIndex(i, extent int, axis string) {
	if i < 0 || i >= extent {
		panic(fmt.Sprintf("array: %s index %d out of range [0,%d)", axis, i, extent))
	}
}

// Len returns the number of elements.
func (c *Column[T]) Len() int { return len(c.data) }

// At returns the element at index i. Out-of-range indices panic.
func (c *Column[T]) At(i int) T {
	checkIndex(i, len(c.data), "column")
	return c.data[i]
}

// Set writes the element at index i. Out-of-range indices panic.
func (c *Column[T]) Set(i int, x T) {
	checkIndex(i, len(c.data), "column")
	c.data[i] = x
}

// Data borrows the flat storage.
func (c *Column[T]) Data() []T { return c.data }

// Value returns the underlying dynamic value.
func (c *Column[T]) Value() *hostval.Value { return c.val }

// Nrows returns the row extent.
func (m *Matrix[T]) Nrows() int { return m.nrows }

// Ncols returns the column extent.
func (m *Matrix[T]) Ncols() int { return m.ncols }

// At returns the element at row r, column c. Out-of-range indices panic,
// including r equal to the row extent.
func (m *Matrix[T]) At(r, c int) T {
	checkIndex(r, m.nrows, "row")
	checkIndex(c, m.ncols, "column")
	return m.data[r+m.nrows*c]
}

// Set writes the element at row r, column c. Out-of-range indices panic.
func (m *Matrix[T]) Set(r, c int, x T) {
	checkIndex(r, m.nrows, "row")
	checkIndex(c, m.ncols, "column")
	m.data[r+m.nrows*c] = x
}

// Data borrows the flat column-major storage.
func (m *Matrix[T]) Data() []T { return m.data }

// Value returns the underlying dynamic value.
func (m *Matrix[T]) Value() *hostval.Value { return m.val }

// Dims returns the three extents.
func (a *Matrix3D[T]) Dims() (int, int, int) { return a.dims[0], a.dims[1], a.dims[2] }

// At returns the element at (i, j, k). Out-of-range indices panic.
func (a *Matrix3D[T]) At(i, j, k int) T {
	checkIndex(i, a.dims[0], "first")
	checkIndex(j, a.dims[1], "second")
	checkIndex(k, a.dims[2], "third")
	return a.data[i+a.dims[0]*(j+a.dims[1]*k)]
}

// Set writes the element at (i, j, k). Out-of-range indices panic.
func (a *Matrix3D[T]) Set(i, j, k int, x T) {
	checkIndex(i, a.dims[0], "first")
	checkIndex(j, a.dims[1], "second")
	checkIndex(k, a.dims[2], "third")
	a.data[i+a.dims[0]*(j+a.dims[1]*k)] = x
}

// Data borrows the flat column-major storage.
func (a *Matrix3D[T]) Data() []T { return a.data }

// Value returns the underlying dynamic value.
func (a *Matrix3D[T]) Value() *hostval.Value { return a.val }
