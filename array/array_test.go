package array

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hostbridge/host-bridge/errors"
	"github.com/hostbridge/host-bridge/hostval"
)

func wantKind(t *testing.T, err error, kind errors.Kind) {
	t.Helper()
	var be *errors.Error
	if !stderrors.As(err, &be) {
		t.Fatalf("err = %v, want *errors.Error with kind %s", err, kind)
	}
	if be.Kind != kind {
		t.Errorf("kind = %s, want %s", be.Kind, kind)
	}
}

func TestNewMatrix_FillAndAccess(t *testing.T) {
	m := NewMatrix(3, 2, func(r, c int) hostval.Rfloat {
		return hostval.Rfloat(10*r + c)
	})

	if m.Nrows() != 3 || m.Ncols() != 2 {
		t.Fatalf("extents = %dx%d, want 3x2", m.Nrows(), m.Ncols())
	}
	if got := m.At(1, 0); got != 10 {
		t.Errorf("At(1,0) = %v, want 10", got)
	}
	if got := m.At(2, 1); got != 21 {
		t.Errorf("At(2,1) = %v, want 21", got)
	}

	m.Set(2, 1, 99)
	if got := m.At(2, 1); got != 99 {
		t.Errorf("after Set, At(2,1) = %v, want 99", got)
	}

	// the write is visible through the underlying storage
	flat, err := hostval.Slice[hostval.Rfloat](m.Value())
	if err != nil {
		t.Fatal(err)
	}
	if flat[2+3*1] != 99 {
		t.Error("Set not visible through flat storage")
	}
}

func TestMatrix_ColumnMajorLayout(t *testing.T) {
	m := NewMatrix(2, 3, func(r, c int) hostval.Rint {
		return hostval.Rint(r + 2*c)
	})
	want := []hostval.Rint{0, 1, 2, 3, 4, 5}
	if diff := cmp.Diff(want, m.Data()); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}

	dims, ok := m.Value().Dim()
	if !ok || dims[0] != 2 || dims[1] != 3 {
		t.Errorf("dim attribute = %v, %v", dims, ok)
	}
}

func TestMatrix_RowIndexAtExtentPanics(t *testing.T) {
	m := NewMatrix(3, 2, func(r, c int) hostval.Rint { return 0 })

	defer func() {
		if recover() == nil {
			t.Error("At(3,0) on a 3-row matrix did not panic")
		}
	}()
	m.At(3, 0)
}

func TestMatrix_NegativeIndexPanics(t *testing.T) {
	m := NewMatrix(3, 2, func(r, c int) hostval.Rint { return 0 })

	defer func() {
		if recover() == nil {
			t.Error("At(-1,0) did not panic")
		}
	}()
	m.At(-1, 0)
}

func TestMatrixFromValue(t *testing.T) {
	v := hostval.NewIntegers([]hostval.Rint{1, 2, 3, 4, 5, 6})
	v.SetDim(3, 2)

	m, err := MatrixFromValue[hostval.Rint](v)
	if err != nil {
		t.Fatal(err)
	}
	if got := m.At(0, 1); got != 4 {
		t.Errorf("At(0,1) = %v, want 4", got)
	}
}

func TestMatrixFromValue_Failures(t *testing.T) {
	plain := hostval.NewIntegers([]hostval.Rint{1, 2, 3})
	_, err := MatrixFromValue[hostval.Rint](plain)
	wantKind(t, err, errors.KindExpectedMatrix)

	wrongRank := hostval.NewIntegers([]hostval.Rint{1, 2, 3, 4, 5, 6})
	wrongRank.SetDim(1, 2, 3)
	_, err = MatrixFromValue[hostval.Rint](wrongRank)
	wantKind(t, err, errors.KindExpectedMatrix)

	wrongElem := hostval.NewReals([]hostval.Rfloat{1, 2, 3, 4})
	wrongElem.SetDim(2, 2)
	_, err = MatrixFromValue[hostval.Rint](wrongElem)
	wantKind(t, err, errors.KindTypeMismatch)

	short := hostval.NewIntegers([]hostval.Rint{1, 2, 3})
	short.SetDim(2, 2)
	_, err = MatrixFromValue[hostval.Rint](short)
	wantKind(t, err, errors.KindTypeMismatch)
}

func TestColumn(t *testing.T) {
	c := NewColumn(4, func(i int) hostval.Rfloat { return hostval.Rfloat(i) * 0.5 })
	if c.Len() != 4 {
		t.Fatalf("Len = %d, want 4", c.Len())
	}
	if got := c.At(3); got != 1.5 {
		t.Errorf("At(3) = %v, want 1.5", got)
	}
	c.Set(0, 9)
	if c.Data()[0] != 9 {
		t.Error("Set not visible through Data")
	}

	dims, ok := c.Value().Dim()
	if !ok || len(dims) != 1 || dims[0] != 4 {
		t.Errorf("dim attribute = %v, %v", dims, ok)
	}
}

func TestColumnFromValue_WrongElem(t *testing.T) {
	_, err := ColumnFromValue[hostval.Rint](hostval.NewReals([]hostval.Rfloat{1}))
	wantKind(t, err, errors.KindExpectedVector)
}

func TestMatrix3D(t *testing.T) {
	a := NewMatrix3D(2, 3, 4, func(i, j, k int) hostval.Rint {
		return hostval.Rint(i + 10*j + 100*k)
	})

	n0, n1, n2 := a.Dims()
	if n0 != 2 || n1 != 3 || n2 != 4 {
		t.Fatalf("extents = %d,%d,%d", n0, n1, n2)
	}
	if got := a.At(1, 2, 3); got != 321 {
		t.Errorf("At(1,2,3) = %v, want 321", got)
	}
	// flat offset i + d0*(j + d1*k)
	if a.Data()[1+2*(2+3*3)] != 321 {
		t.Error("column-major offset mismatch")
	}

	a.Set(0, 0, 0, -7)
	if a.At(0, 0, 0) != -7 {
		t.Error("Set(0,0,0) lost")
	}
}

func TestNewMatrixWithNA(t *testing.T) {
	m := NewMatrixWithNA[hostval.Rfloat](2, 2)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if !m.At(r, c).IsNA() {
				t.Errorf("At(%d,%d) is not missing", r, c)
			}
		}
	}

	s := NewColumnWithNA[hostval.Rstr](3)
	if !s.At(0).IsNA() {
		t.Error("string column element is not missing")
	}
}

func TestMatrix3DFromValue_Failures(t *testing.T) {
	twoD := hostval.NewIntegers([]hostval.Rint{1, 2, 3, 4})
	twoD.SetDim(2, 2)
	_, err := Matrix3DFromValue[hostval.Rint](twoD)
	wantKind(t, err, errors.KindExpectedMatrix3D)

	short := hostval.NewIntegers([]hostval.Rint{1, 2, 3, 4})
	short.SetDim(2, 2, 2)
	_, err = Matrix3DFromValue[hostval.Rint](short)
	wantKind(t, err, errors.KindTypeMismatch)
}
