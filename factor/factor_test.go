package factor

import (
	stderrors "errors"
	"testing"

	"github.com/hostbridge/host-bridge/errors"
	"github.com/hostbridge/host-bridge/hostval"
)

type color int

const (
	red color = iota
	green
	blue
)

func (color) Levels() []string { return []string{"Red", "Green", "Blue"} }

type animal int

const (
	cat animal = iota
	dog
)

func (animal) Levels() []string { return []string{"Cat", "Dog"} }

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

func TestEncode(t *testing.T) {
	v := Encode(green)

	if !v.IsFactor() {
		t.Fatal("encoded value is not a factor")
	}
	code, ok := v.AsInteger()
	if !ok || code != 2 {
		t.Errorf("code = %d, %v, want 2", code, ok)
	}
	if got := levelNames(v); len(got) != 3 || got[0] != "Red" || got[2] != "Blue" {
		t.Errorf("levels = %v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []color{red, green, blue} {
		got, err := Decode[color](Encode(c))
		if err != nil {
			t.Fatalf("Decode(Encode(%d)): %v", c, err)
		}
		if got != c {
			t.Errorf("round trip of %d gave %d", c, got)
		}
	}
}

func TestEncode_SharedLevels(t *testing.T) {
	a := Encode(red)
	b := Encode(blue)

	la, _ := a.Levels()
	lb, _ := b.Levels()
	sa, _ := hostval.Slice[hostval.Rstr](la)
	sb, _ := hostval.Slice[hostval.Rstr](lb)
	if &sa[0] != &sb[0] {
		t.Error("label sets not shared between encodings of the same type")
	}
	if la.IsMutable() {
		t.Error("shared label set is mutable")
	}
}

func TestDecode_NotAFactor(t *testing.T) {
	_, err := Decode[color](hostval.ScalarInteger(1))
	wantKind(t, err, errors.KindExpectedFactor)
}

func TestDecode_WrongLevels(t *testing.T) {
	v := hostval.NewIntegers([]hostval.Rint{1})
	v.SetAttr(hostval.AttrLevels, hostval.NewStringsFrom("Red", "Green"))
	v.SetClass(hostval.ClassFactor)

	_, err := Decode[color](v)
	wantKind(t, err, errors.KindInvalidLevels)

	var be *errors.Error
	stderrors.As(err, &be)
	if len(be.Found) != 2 || len(be.Expected) != 3 {
		t.Errorf("Found = %v, Expected = %v", be.Found, be.Expected)
	}
}

func TestDecode_CrossTypeLevels(t *testing.T) {
	_, err := Decode[animal](Encode(red))
	wantKind(t, err, errors.KindInvalidLevels)
}

func TestDecode_NotScalar(t *testing.T) {
	v := hostval.NewIntegers([]hostval.Rint{1, 2})
	v.SetAttr(hostval.AttrLevels, hostval.NewStringsFrom("Red", "Green", "Blue"))
	v.SetClass(hostval.ClassFactor)

	_, err := Decode[color](v)
	wantKind(t, err, errors.KindExpectedScalarFactor)
}

func TestDecode_BadCodes(t *testing.T) {
	tests := []struct {
		name string
		code hostval.Rint
	}{
		{"missing", hostval.NARint()},
		{"zero", 0},
		{"negative", -2},
		{"past the label range", 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := hostval.NewIntegers([]hostval.Rint{tc.code})
			v.SetAttr(hostval.AttrLevels, hostval.NewStringsFrom("Red", "Green", "Blue"))
			v.SetClass(hostval.ClassFactor)

			_, err := Decode[color](v)
			wantKind(t, err, errors.KindOutOfLimits)
		})
	}
}
