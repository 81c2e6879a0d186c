package factor

import (
	"reflect"
	"sync"

	"github.com/hostbridge/host-bridge/errors"
	"github.com/hostbridge/host-bridge/hostval"
)

// Enum is the constraint for integer-backed enumeration types. Variant
// values must be contiguous from zero in the order Levels names them.
type Enum interface {
	~int
	Levels() []string
}

// levelValues caches the label-set value per enumeration type so every
// encoded value of the same type shares one label set.
var levelValues sync.Map // reflect.Type -> *hostval.Value

func levelsValue[E Enum]() *hostval.Value {
	key := reflect.TypeOf((*E)(nil)).Elem()
	if v, ok := levelValues.Load(key); ok {
		return v.(*hostval.Value)
	}
	var zero E
	v := hostval.NewStringsFrom(zero.Levels()...).AsShared()
	actual, _ := levelValues.LoadOrStore(key, v)
	return actual.(*hostval.Value)
}

// Encode maps variant e onto a one-element categorical value holding
// code int(e)+1 with e's declared label set attached.
func Encode[E Enum](e E) *hostval.Value {
	v := hostval.NewIntegers([]hostval.Rint{hostval.Rint(int(e) + 1)})
	v.SetAttr(hostval.AttrLevels, levelsValue[E]())
	v.SetClass(hostval.ClassFactor)
	return v
}

// Decode maps a scalar categorical value back onto a variant of E. The
// value must carry the categorical class mark, a label set equal to E's,
// a single element, and a code inside the label range.
func Decode[E Enum](v *hostval.Value) (E, error) {
	var zero E
	if !v.IsFactor() {
		return zero, &errors.Error{Phase: errors.PhaseFactor, Kind: errors.KindExpectedFactor, Value: v}
	}

	expected := zero.Levels()
	found := levelNames(v)
	if !equalLevels(found, expected) {
		return zero, errors.InvalidLevels(found, expected)
	}

	codes, err := hostval.Slice[hostval.Rint](v)
	if err != nil || len(codes) != 1 {
		return zero, &errors.Error{Phase: errors.PhaseFactor, Kind: errors.KindExpectedScalarFactor, Value: v}
	}

	code := codes[0]
	if code.IsNA() || code < 1 || int(code) > len(expected) {
		return zero, errors.OutOfLimits(errors.PhaseFactor, v, reflect.TypeOf(zero).String())
	}
	return E(code - 1), nil
}

func levelNames(v *hostval.Value) []string {
	lv, ok := v.Levels()
	if !ok {
		return nil
	}
	labels, err := hostval.Slice[hostval.Rstr](lv)
	if err != nil {
		return nil
	}
	out := make([]string, len(labels))
	for i, s := range labels {
		out[i] = s.String()
	}
	return out
}

func equalLevels(found, expected []string) bool {
	if len(found) != len(expected) {
		return false
	}
	for i := range found {
		if found[i] != expected[i] {
			return false
		}
	}
	return true
}
