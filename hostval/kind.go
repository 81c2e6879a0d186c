package hostval

// Kind is the runtime type tag of a dynamic value.
type Kind uint8

const (
	KindNull Kind = iota
	KindInteger
	KindReal
	KindComplex
	KindLogical
	KindString
	KindRaw
	KindList
	KindExternalPtr
)

var kindNames = [...]string{
	KindNull:        "null",
	KindInteger:     "integer",
	KindReal:        "real",
	KindComplex:     "complex",
	KindLogical:     "logical",
	KindString:      "string",
	KindRaw:         "raw",
	KindList:        "list",
	KindExternalPtr: "externalptr",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsVector reports whether values of this kind carry flat element storage.
func (k Kind) IsVector() bool {
	switch k {
	case KindInteger, KindReal, KindComplex, KindLogical, KindString, KindRaw:
		return true
	default:
		return false
	}
}

// IsNumeric reports whether the kind is integer- or real-typed.
func (k Kind) IsNumeric() bool {
	return k == KindInteger || k == KindReal
}
