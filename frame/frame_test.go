package frame

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hostbridge/host-bridge/convert"
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

func TestFromColumns(t *testing.T) {
	d, err := FromColumns(
		[]string{"id", "score"},
		[]*hostval.Value{
			hostval.NewIntegers([]hostval.Rint{1, 2, 3}),
			hostval.NewReals([]hostval.Rfloat{0.5, 1.5, 2.5}),
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	if d.Ncols() != 2 || d.Nrows() != 3 {
		t.Fatalf("shape = %dx%d, want 3x2", d.Nrows(), d.Ncols())
	}
	if diff := cmp.Diff([]string{"id", "score"}, d.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if !d.Value().HasClass(ClassDataframe) {
		t.Error("class mark missing")
	}
	if _, ok := d.Value().Attr(hostval.AttrRowNames); !ok {
		t.Error("row names missing")
	}

	col, ok := d.Column("score")
	if !ok {
		t.Fatal("column score not found")
	}
	reals, err := convert.Reals(col)
	if err != nil || reals[2] != 2.5 {
		t.Errorf("score column = %v, %v", reals, err)
	}

	if _, ok := d.Column("missing"); ok {
		t.Error("lookup of absent column = ok")
	}
}

func TestFromColumns_Failures(t *testing.T) {
	_, err := FromColumns(
		[]string{"a"},
		[]*hostval.Value{
			hostval.NewIntegers([]hostval.Rint{1}),
			hostval.NewIntegers([]hostval.Rint{2}),
		},
	)
	wantKind(t, err, errors.KindExpectedDataframe)

	_, err = FromColumns(
		[]string{"a", "b"},
		[]*hostval.Value{
			hostval.NewIntegers([]hostval.Rint{1, 2}),
			hostval.NewIntegers([]hostval.Rint{1, 2, 3}),
		},
	)
	wantKind(t, err, errors.KindExpectedDataframe)
}

func TestFromValue(t *testing.T) {
	v := hostval.NewList(
		[]*hostval.Value{hostval.NewIntegers([]hostval.Rint{7, 8})},
		hostval.Strs("x"),
	)
	v.SetClass(ClassDataframe)

	d, err := FromValue(v)
	if err != nil {
		t.Fatal(err)
	}
	if d.Nrows() != 2 {
		t.Errorf("Nrows = %d, want 2", d.Nrows())
	}
	if d.ColumnAt(0).Kind() != hostval.KindInteger {
		t.Error("column storage kind changed")
	}
}

func TestFromValue_Failures(t *testing.T) {
	// a plain list without the class mark is not a frame
	plain := hostval.NewList([]*hostval.Value{hostval.ScalarInteger(1)}, nil)
	_, err := FromValue(plain)
	wantKind(t, err, errors.KindExpectedDataframe)

	// neither is a classed non-list
	scalar := hostval.ScalarInteger(1)
	scalar.SetClass(ClassDataframe)
	_, err = FromValue(scalar)
	wantKind(t, err, errors.KindExpectedDataframe)
}

func TestEmptyFrame(t *testing.T) {
	d, err := FromColumns(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.Ncols() != 0 || d.Nrows() != 0 {
		t.Errorf("shape = %dx%d, want 0x0", d.Nrows(), d.Ncols())
	}
}
