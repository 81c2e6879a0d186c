package hostval

import "math"

// NAInteger is the integer missing-value sentinel.
const NAInteger int32 = math.MinInt32

// naRealBits is the bit pattern of the real missing-value sentinel, an NaN
// with a distinguished payload. Ordinary NaN is a valid payload and is not NA.
const naRealBits uint64 = 0x7FF00000000007A2

// NAReal returns the real missing-value sentinel.
func NAReal() float64 {
	return math.Float64frombits(naRealBits)
}

// IsNAReal reports whether x is exactly the real NA sentinel.
func IsNAReal(x float64) bool {
	return math.Float64bits(x) == naRealBits
}

// Rint is an integer vector element: an int32 whose minimum value is NA.
type Rint int32

// NARint returns the integer NA element.
func NARint() Rint { return Rint(NAInteger) }

func (r Rint) IsNA() bool { return int32(r) == NAInteger }

// Inner returns the raw storage value, NA sentinel included.
func (r Rint) Inner() int32 { return int32(r) }

// Rfloat is a real vector element.
type Rfloat float64

// NARfloat returns the real NA element.
func NARfloat() Rfloat { return Rfloat(NAReal()) }

func (r Rfloat) IsNA() bool { return IsNAReal(float64(r)) }

func (r Rfloat) Inner() float64 { return float64(r) }

// Rbool is a tri-state logical vector element: true, false or NA.
type Rbool int32

const (
	False Rbool = 0
	True  Rbool = 1
)

// NARbool returns the logical NA element.
func NARbool() Rbool { return Rbool(NAInteger) }

func (r Rbool) IsNA() bool    { return int32(r) == NAInteger }
func (r Rbool) IsTrue() bool  { return int32(r) == 1 }
func (r Rbool) IsFalse() bool { return int32(r) == 0 }

// Rcplx is a complex vector element. It is NA when either component is the
// real NA sentinel.
type Rcplx complex128

// NARcplx returns the complex NA element.
func NARcplx() Rcplx { return Rcplx(complex(NAReal(), NAReal())) }

func (r Rcplx) IsNA() bool {
	return IsNAReal(real(complex128(r))) || IsNAReal(imag(complex128(r)))
}

func (r Rcplx) Inner() complex128 { return complex128(r) }

// Rstr is a string vector element. The missing-value marker is an
// out-of-band flag, never a byte pattern: the string "NA" is not NA.
type Rstr struct {
	s  string
	na bool
}

// Str constructs a non-missing string element.
func Str(s string) Rstr { return Rstr{s: s} }

// NARstr returns the string NA element.
func NARstr() Rstr { return Rstr{na: true} }

func (r Rstr) IsNA() bool { return r.na }

// String returns the element text. The NA element renders as "NA" for
// display only; check IsNA before trusting the text.
func (r Rstr) String() string {
	if r.na {
		return "NA"
	}
	return r.s
}

// Strs wraps plain strings as non-missing string elements.
func Strs(ss ...string) []Rstr {
	out := make([]Rstr, len(ss))
	for i, s := range ss {
		out[i] = Str(s)
	}
	return out
}
