package hostval

// Ownership describes who keeps a Value alive.
type Ownership uint8

const (
	// Owned values are exclusively held by native code and may be mutated.
	Owned Ownership = iota
	// Shared values are visible to the host's active heap and are read-only.
	Shared
	// Weak values are non-owning views, valid only while another holder
	// keeps the value alive.
	Weak
)

var ownershipNames = [...]string{"owned", "shared", "weak"}

func (o Ownership) String() string {
	if int(o) < len(ownershipNames) {
		return ownershipNames[o]
	}
	return "unknown"
}

// Attribute names understood by the core.
const (
	AttrDim      = "dim"
	AttrLevels   = "levels"
	AttrClass    = "class"
	AttrNames    = "names"
	AttrRowNames = "row.names"
)

// ClassFactor marks an integer vector as a categorical value.
const ClassFactor = "factor"

// Value is the host runtime's universal, runtime-tagged value container.
type Value struct {
	kind  Kind
	data  any
	attrs map[string]*Value
	own   Ownership
	ext   *external
}

type external struct {
	addr any // pointer to the embedded native object, nil once cleared
	tag  *Value
	prot *Value
}

// NewNull returns the null value.
func NewNull() *Value {
	return &Value{kind: KindNull}
}

// NewIntegers wraps integer storage in a value. The slice is adopted, not
// copied; the value owns it from here on.
func NewIntegers(data []Rint) *Value {
	return &Value{kind: KindInteger, data: data}
}

// NewReals wraps real storage in a value.
func NewReals(data []Rfloat) *Value {
	return &Value{kind: KindReal, data: data}
}

// NewComplexes wraps complex storage in a value.
func NewComplexes(data []Rcplx) *Value {
	return &Value{kind: KindComplex, data: data}
}

// NewLogicals wraps logical storage in a value.
func NewLogicals(data []Rbool) *Value {
	return &Value{kind: KindLogical, data: data}
}

// NewStrings wraps string storage in a value.
func NewStrings(data []Rstr) *Value {
	return &Value{kind: KindString, data: data}
}

// NewStringsFrom builds a string vector from plain text, all elements
// non-missing.
func NewStringsFrom(ss ...string) *Value {
	return NewStrings(Strs(ss...))
}

// NewRaw wraps raw byte storage in a value.
func NewRaw(data []byte) *Value {
	return &Value{kind: KindRaw, data: data}
}

// NewList builds a list value. names may be nil for an unnamed list;
// otherwise it must have one entry per element.
func NewList(elems []*Value, names []Rstr) *Value {
	v := &Value{kind: KindList, data: elems}
	if names != nil {
		v.setAttr(AttrNames, NewStrings(names))
	}
	return v
}

// NewExternal wraps a pointer to a native object, a descriptive tag and an
// optional protected companion value. The tag is diagnostic only and is not
// enforced at runtime.
func NewExternal(addr any, tag, prot *Value) *Value {
	if tag == nil {
		tag = NewNull()
	}
	if prot == nil {
		prot = NewNull()
	}
	return &Value{kind: KindExternalPtr, ext: &external{addr: addr, tag: tag, prot: prot}}
}

// Scalar constructors.

func ScalarInteger(x int32) *Value      { return NewIntegers([]Rint{Rint(x)}) }
func ScalarReal(x float64) *Value       { return NewReals([]Rfloat{Rfloat(x)}) }
func ScalarComplex(x complex128) *Value { return NewComplexes([]Rcplx{Rcplx(x)}) }
func ScalarLogical(x Rbool) *Value      { return NewLogicals([]Rbool{x}) }
func ScalarString(s string) *Value      { return NewStrings([]Rstr{Str(s)}) }

// Kind returns the runtime type tag.
func (v *Value) Kind() Kind { return v.kind }

// Ownership returns how this value is held.
func (v *Value) Ownership() Ownership { return v.own }

// IsMutable reports whether native code holds the value exclusively.
func (v *Value) IsMutable() bool { return v.own == Owned }

// AsShared returns a read-only view of the value, as handed to the host's
// active heap. The storage is shared with the receiver.
func (v *Value) AsShared() *Value {
	c := *v
	c.own = Shared
	return &c
}

// AsWeak returns a non-owning view, valid only while another holder keeps
// the value alive.
func (v *Value) AsWeak() *Value {
	c := *v
	c.own = Weak
	return &c
}

// Len returns the number of elements. Null has length 0; an external
// pointer has length 1.
func (v *Value) Len() int {
	switch d := v.data.(type) {
	case []Rint:
		return len(d)
	case []Rfloat:
		return len(d)
	case []Rcplx:
		return len(d)
	case []Rbool:
		return len(d)
	case []Rstr:
		return len(d)
	case []byte:
		return len(d)
	case []*Value:
		return len(d)
	}
	if v.kind == KindExternalPtr {
		return 1
	}
	return 0
}

// IsNull reports whether the value is the null value.
func (v *Value) IsNull() bool { return v.kind == KindNull }

// IsVector reports whether the value carries flat element storage.
func (v *Value) IsVector() bool { return v.kind.IsVector() }

// IsNA reports whether the value is a length-1 vector holding its type's
// missing-value sentinel.
func (v *Value) IsNA() bool {
	if v.Len() != 1 {
		return false
	}
	switch d := v.data.(type) {
	case []Rint:
		return d[0].IsNA()
	case []Rfloat:
		return d[0].IsNA()
	case []Rcplx:
		return d[0].IsNA()
	case []Rbool:
		return d[0].IsNA()
	case []Rstr:
		return d[0].IsNA()
	}
	return false
}

// AsInteger returns the raw element of a length-1 integer vector, NA
// sentinel included.
func (v *Value) AsInteger() (int32, bool) {
	if d, ok := v.data.([]Rint); ok && len(d) == 1 {
		return int32(d[0]), true
	}
	return 0, false
}

// AsReal returns the element of a length-1 real vector.
func (v *Value) AsReal() (float64, bool) {
	if d, ok := v.data.([]Rfloat); ok && len(d) == 1 {
		return float64(d[0]), true
	}
	return 0, false
}

// AsLogical returns the element of a length-1 logical vector.
func (v *Value) AsLogical() (Rbool, bool) {
	if d, ok := v.data.([]Rbool); ok && len(d) == 1 {
		return d[0], true
	}
	return False, false
}

// AsStr returns the element of a length-1 string vector.
func (v *Value) AsStr() (Rstr, bool) {
	if d, ok := v.data.([]Rstr); ok && len(d) == 1 {
		return d[0], true
	}
	return Rstr{}, false
}

// AsList returns the elements of a list value.
func (v *Value) AsList() ([]*Value, bool) {
	if d, ok := v.data.([]*Value); ok {
		return d, true
	}
	return nil, false
}

// Names returns the element names of a list, one per element, or ok=false
// when the value carries no names attribute.
func (v *Value) Names() ([]Rstr, bool) {
	nv, ok := v.Attr(AttrNames)
	if !ok {
		return nil, false
	}
	d, ok := nv.data.([]Rstr)
	return d, ok
}

// Attr returns the named attribute, if attached.
func (v *Value) Attr(name string) (*Value, bool) {
	a, ok := v.attrs[name]
	return a, ok
}

// SetAttr attaches a named attribute and returns the receiver for chaining.
// Attribute mutation requires exclusive access and is serialized through the
// single-writer region; calling it on a shared or weak value panics.
func (v *Value) SetAttr(name string, attr *Value) *Value {
	if !v.IsMutable() {
		panic("hostval: set attribute on " + v.own.String() + " value")
	}
	Critical(func() {
		v.setAttr(name, attr)
	})
	return v
}

func (v *Value) setAttr(name string, attr *Value) {
	if v.attrs == nil {
		v.attrs = make(map[string]*Value, 2)
	}
	v.attrs[name] = attr
}

// Class returns the class attribute as plain strings.
func (v *Value) Class() ([]string, bool) {
	cv, ok := v.Attr(AttrClass)
	if !ok {
		return nil, false
	}
	d, ok := cv.data.([]Rstr)
	if !ok {
		return nil, false
	}
	out := make([]string, len(d))
	for i, s := range d {
		out[i] = s.String()
	}
	return out, true
}

// SetClass attaches a class attribute marking the value's logical type for
// the host's dispatch.
func (v *Value) SetClass(names ...string) *Value {
	return v.SetAttr(AttrClass, NewStringsFrom(names...))
}

// HasClass reports whether the class attribute contains name.
func (v *Value) HasClass(name string) bool {
	classes, ok := v.Class()
	if !ok {
		return false
	}
	for _, c := range classes {
		if c == name {
			return true
		}
	}
	return false
}

// Dim returns the dimension attribute as extents.
func (v *Value) Dim() ([]int, bool) {
	dv, ok := v.Attr(AttrDim)
	if !ok {
		return nil, false
	}
	d, ok := dv.data.([]Rint)
	if !ok {
		return nil, false
	}
	out := make([]int, len(d))
	for i, x := range d {
		out[i] = int(x)
	}
	return out, true
}

// SetDim attaches a dimension attribute.
func (v *Value) SetDim(extents ...int) *Value {
	d := make([]Rint, len(extents))
	for i, e := range extents {
		d[i] = Rint(e)
	}
	return v.SetAttr(AttrDim, NewIntegers(d))
}

// IsFactor reports whether the value is an integer vector classed as a
// factor with an attached label set.
func (v *Value) IsFactor() bool {
	if v.kind != KindInteger || !v.HasClass(ClassFactor) {
		return false
	}
	lv, ok := v.Attr(AttrLevels)
	return ok && lv.kind == KindString
}

// Levels returns the attached label set of a factor.
func (v *Value) Levels() (*Value, bool) {
	lv, ok := v.Attr(AttrLevels)
	if !ok || lv.kind != KindString {
		return nil, false
	}
	return lv, true
}

// ExternalAddr returns the embedded pointer of an external-pointer value,
// or nil if the value is not an external pointer or the pointer has been
// cleared by its finalizer.
func (v *Value) ExternalAddr() any {
	if v.ext == nil {
		return nil
	}
	return v.ext.addr
}

// ExternalTag returns the descriptive tag of an external-pointer value.
func (v *Value) ExternalTag() *Value {
	if v.ext == nil {
		return NewNull()
	}
	return v.ext.tag
}

// ExternalProtected returns the protected companion of an external-pointer
// value.
func (v *Value) ExternalProtected() *Value {
	if v.ext == nil {
		return NewNull()
	}
	return v.ext.prot
}

// ClearExternal drops the tag and nulls the embedded pointer. Safe to call
// more than once and on values that were never dereferenced; the finalizer
// relies on both.
func (v *Value) ClearExternal() {
	if v.ext == nil {
		return
	}
	v.ext.tag = NewNull()
	v.ext.addr = nil
}
