package convert

import (
	"github.com/hostbridge/host-bridge/errors"
	"github.com/hostbridge/host-bridge/hostval"
)

// Strings converts a string vector or factor into owned native strings.
// Every element must be non-missing or the whole conversion fails.
func Strings(v *hostval.Value) ([]string, error) {
	it, err := hostval.StrIterFrom(v)
	if err != nil {
		return nil, err
	}

	for probe := it.Clone(); ; {
		s, ok := probe.Next()
		if !ok {
			break
		}
		if s.IsNA() {
			return nil, errors.MustNotBeNA(errors.PhaseConvert, v)
		}
	}

	out := make([]string, 0, it.Len())
	for {
		s, ok := it.Next()
		if !ok {
			return out, nil
		}
		out = append(out, s.String())
	}
}

// Slice converts vector storage into an owned copy of its elements. It does
// not filter missing markers; check per-element IsNA where it matters.
func Slice[T hostval.Elem](v *hostval.Value) ([]T, error) {
	s, err := hostval.Slice[T](v)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(s))
	copy(out, s)
	return out, nil
}

// Ints converts an integer vector into raw int32 storage values, NA
// sentinels included.
func Ints(v *hostval.Value) ([]int32, error) {
	s, err := hostval.Slice[hostval.Rint](v)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(s))
	for i, x := range s {
		out[i] = x.Inner()
	}
	return out, nil
}

// Reals converts a real vector into raw float64 storage values.
func Reals(v *hostval.Value) ([]float64, error) {
	s, err := hostval.Slice[hostval.Rfloat](v)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(s))
	for i, x := range s {
		out[i] = x.Inner()
	}
	return out, nil
}

// Bytes converts a raw vector into an owned byte slice.
func Bytes(v *hostval.Value) ([]byte, error) {
	return Slice[byte](v)
}

// Map converts a named list into a name-to-element map. Unnamed elements
// collapse under the empty name and duplicate names collapse to the last
// occurrence; use the list directly when order or duplicates matter.
func Map(v *hostval.Value) (map[string]*hostval.Value, error) {
	elems, ok := v.AsList()
	if !ok {
		return nil, &errors.Error{Phase: errors.PhaseConvert, Kind: errors.KindExpectedList, Value: v}
	}
	names, _ := v.Names()

	m := make(map[string]*hostval.Value, len(elems))
	for i, e := range elems {
		name := ""
		if i < len(names) && !names[i].IsNA() {
			name = names[i].String()
		}
		m[name] = e
	}
	return m, nil
}
