package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hostbridge/host-bridge/hostval"
)

// Literal syntax: a comma-separated element list. Each element is NA, TRUE,
// FALSE, an integer, a real, a complex like 1+2i, or a quoted string. The
// vector takes the widest element tag, promoting logical through integer,
// real and complex up to string. NULL parses to the null value.

type litKind int

const (
	litNA litKind = iota
	litLogical
	litInteger
	litReal
	litComplex
	litString
)

type literal struct {
	kind litKind
	b    hostval.Rbool
	i    int32
	f    float64
	c    complex128
	s    string
}

func parseValue(expr string) (*hostval.Value, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty expression")
	}
	if strings.EqualFold(expr, "NULL") {
		return hostval.NewNull(), nil
	}

	tokens, err := splitElements(expr)
	if err != nil {
		return nil, err
	}

	lits := make([]literal, len(tokens))
	widest := litNA
	for i, tok := range tokens {
		lit, err := parseElement(tok)
		if err != nil {
			return nil, err
		}
		lits[i] = lit
		if lit.kind > widest {
			widest = lit.kind
		}
	}
	if widest == litNA {
		widest = litLogical
	}

	return assemble(lits, widest), nil
}

// splitElements splits on commas outside of quotes.
func splitElements(expr string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
	)
	for i := 0; i < len(expr); i++ {
		ch := expr[i]
		switch {
		case ch == '"':
			quoted = !quoted
			current.WriteByte(ch)
		case ch == ',' && !quoted:
			tokens = append(tokens, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	if quoted {
		return nil, fmt.Errorf("unterminated string")
	}
	tokens = append(tokens, strings.TrimSpace(current.String()))
	return tokens, nil
}

func parseElement(tok string) (literal, error) {
	switch {
	case tok == "NA":
		return literal{kind: litNA}, nil
	case strings.EqualFold(tok, "TRUE"):
		return literal{kind: litLogical, b: hostval.True}, nil
	case strings.EqualFold(tok, "FALSE"):
		return literal{kind: litLogical, b: hostval.False}, nil
	case len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"':
		return literal{kind: litString, s: tok[1 : len(tok)-1]}, nil
	}

	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		if i >= math.MinInt32+1 && i <= math.MaxInt32 {
			return literal{kind: litInteger, i: int32(i)}, nil
		}
		return literal{kind: litReal, f: float64(i)}, nil
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return literal{kind: litReal, f: f}, nil
	}
	if c, err := strconv.ParseComplex(strings.ReplaceAll(tok, " ", ""), 128); err == nil {
		return literal{kind: litComplex, c: c}, nil
	}
	return literal{}, fmt.Errorf("cannot parse element %q", tok)
}

func assemble(lits []literal, widest litKind) *hostval.Value {
	switch widest {
	case litLogical:
		out := make([]hostval.Rbool, len(lits))
		for i, l := range lits {
			if l.kind == litNA {
				out[i] = hostval.NARbool()
			} else {
				out[i] = l.b
			}
		}
		return hostval.NewLogicals(out)

	case litInteger:
		out := make([]hostval.Rint, len(lits))
		for i, l := range lits {
			switch l.kind {
			case litNA:
				out[i] = hostval.NARint()
			case litLogical:
				out[i] = hostval.Rint(l.b)
			default:
				out[i] = hostval.Rint(l.i)
			}
		}
		return hostval.NewIntegers(out)

	case litReal:
		out := make([]hostval.Rfloat, len(lits))
		for i, l := range lits {
			switch l.kind {
			case litNA:
				out[i] = hostval.NARfloat()
			case litLogical:
				out[i] = hostval.Rfloat(l.b)
			case litInteger:
				out[i] = hostval.Rfloat(l.i)
			default:
				out[i] = hostval.Rfloat(l.f)
			}
		}
		return hostval.NewReals(out)

	case litComplex:
		out := make([]hostval.Rcplx, len(lits))
		for i, l := range lits {
			switch l.kind {
			case litNA:
				out[i] = hostval.NARcplx()
			case litLogical:
				out[i] = hostval.Rcplx(complex(float64(l.b), 0))
			case litInteger:
				out[i] = hostval.Rcplx(complex(float64(l.i), 0))
			case litReal:
				out[i] = hostval.Rcplx(complex(l.f, 0))
			default:
				out[i] = hostval.Rcplx(l.c)
			}
		}
		return hostval.NewComplexes(out)

	default:
		out := make([]hostval.Rstr, len(lits))
		for i, l := range lits {
			switch l.kind {
			case litNA:
				out[i] = hostval.NARstr()
			case litLogical:
				if l.b.IsTrue() {
					out[i] = hostval.Str("TRUE")
				} else {
					out[i] = hostval.Str("FALSE")
				}
			case litInteger:
				out[i] = hostval.Str(strconv.FormatInt(int64(l.i), 10))
			case litReal:
				out[i] = hostval.Str(strconv.FormatFloat(l.f, 'g', -1, 64))
			case litComplex:
				out[i] = hostval.Str(strconv.FormatComplex(l.c, 'g', -1, 128))
			default:
				out[i] = hostval.Str(l.s)
			}
		}
		return hostval.NewStrings(out)
	}
}

// parseDims parses an extent list like "2x3" or "2x3x4".
func parseDims(s string) ([]int, error) {
	parts := strings.Split(s, "x")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad extent %q", p)
		}
		out[i] = n
	}
	return out, nil
}
