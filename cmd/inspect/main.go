package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/hostbridge/host-bridge/array"
	"github.com/hostbridge/host-bridge/convert"
	"github.com/hostbridge/host-bridge/hostval"
)

func main() {
	var (
		expr        = flag.String("expr", "", "Value literal, e.g. '1,2,NA' or '\"a\",\"b\"'")
		dims        = flag.String("dim", "", "Dimension extents to attach (2x3 or 2x3x4)")
		levels      = flag.String("levels", "", "Labels to attach as a factor (comma-separated)")
		target      = flag.String("to", "", "Conversion to apply (see -list)")
		list        = flag.Bool("list", false, "List available conversions and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *list {
		for _, c := range conversions() {
			fmt.Println(c.name)
		}
		return
	}

	if *interactive {
		if !isTerminal() {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *expr == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -expr <literal> [-dim 2x3] [-levels a,b,c] [-to conversion]")
		fmt.Fprintln(os.Stderr, "       inspect -list")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*expr, *dims, *levels, *target); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(expr, dims, levels, target string) error {
	v, err := buildValue(expr, dims, levels)
	if err != nil {
		return err
	}

	fmt.Print(describe(v))

	if target == "" {
		return nil
	}
	for _, c := range conversions() {
		if c.name != target {
			continue
		}
		out, err := c.apply(v)
		if err != nil {
			return fmt.Errorf("%s: %w", target, err)
		}
		fmt.Printf("\n%s: %s\n", target, out)
		return nil
	}
	return fmt.Errorf("unknown conversion %q, try -list", target)
}

// buildValue parses the literal and attaches the requested attributes.
func buildValue(expr, dims, levels string) (*hostval.Value, error) {
	v, err := parseValue(expr)
	if err != nil {
		return nil, err
	}
	if dims != "" {
		extents, err := parseDims(dims)
		if err != nil {
			return nil, err
		}
		v.SetDim(extents...)
	}
	if levels != "" {
		v.SetAttr(hostval.AttrLevels, hostval.NewStringsFrom(strings.Split(levels, ",")...))
		v.SetClass(hostval.ClassFactor)
	}
	return v, nil
}

func describe(v *hostval.Value) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Kind: %s\n", v.Kind())
	fmt.Fprintf(&b, "Length: %d\n", v.Len())

	if classes, ok := v.Class(); ok {
		fmt.Fprintf(&b, "Class: %s\n", strings.Join(classes, ", "))
	}
	if dims, ok := v.Dim(); ok {
		parts := make([]string, len(dims))
		for i, d := range dims {
			parts[i] = fmt.Sprint(d)
		}
		fmt.Fprintf(&b, "Dim: %s\n", strings.Join(parts, "x"))
	}
	if lv, ok := v.Levels(); ok {
		if labels, err := hostval.Slice[hostval.Rstr](lv); err == nil {
			parts := make([]string, len(labels))
			for i, l := range labels {
				parts[i] = l.String()
			}
			fmt.Fprintf(&b, "Levels: %s\n", strings.Join(parts, ", "))
		}
	}
	if na := countNA(v); na > 0 {
		fmt.Fprintf(&b, "Missing: %d\n", na)
	}

	return b.String()
}

func countNA(v *hostval.Value) int {
	n := 0
	switch v.Kind() {
	case hostval.KindInteger:
		s, _ := hostval.Slice[hostval.Rint](v)
		for _, x := range s {
			if x.IsNA() {
				n++
			}
		}
	case hostval.KindReal:
		s, _ := hostval.Slice[hostval.Rfloat](v)
		for _, x := range s {
			if x.IsNA() {
				n++
			}
		}
	case hostval.KindLogical:
		s, _ := hostval.Slice[hostval.Rbool](v)
		for _, x := range s {
			if x.IsNA() {
				n++
			}
		}
	case hostval.KindComplex:
		s, _ := hostval.Slice[hostval.Rcplx](v)
		for _, x := range s {
			if x.IsNA() {
				n++
			}
		}
	case hostval.KindString:
		s, _ := hostval.Slice[hostval.Rstr](v)
		for _, x := range s {
			if x.IsNA() {
				n++
			}
		}
	}
	return n
}

type conversion struct {
	name  string
	apply func(*hostval.Value) (string, error)
}

func conversions() []conversion {
	return []conversion{
		{"int32", func(v *hostval.Value) (string, error) {
			x, err := convert.Int[int32](v)
			return fmt.Sprint(x), err
		}},
		{"int64", func(v *hostval.Value) (string, error) {
			x, err := convert.Int[int64](v)
			return fmt.Sprint(x), err
		}},
		{"uint8", func(v *hostval.Value) (string, error) {
			x, err := convert.Int[uint8](v)
			return fmt.Sprint(x), err
		}},
		{"float64", func(v *hostval.Value) (string, error) {
			x, err := convert.FloatOf[float64](v)
			return fmt.Sprint(x), err
		}},
		{"bool", func(v *hostval.Value) (string, error) {
			x, err := convert.Bool(v)
			return fmt.Sprint(x), err
		}},
		{"string", func(v *hostval.Value) (string, error) {
			return convert.String(v)
		}},
		{"complex", func(v *hostval.Value) (string, error) {
			x, err := convert.Complex(v)
			if err != nil {
				return "", err
			}
			if x.IsNA() {
				return "NA", nil
			}
			return fmt.Sprint(x.Inner()), nil
		}},
		{"strings", func(v *hostval.Value) (string, error) {
			xs, err := convert.Strings(v)
			return strings.Join(xs, ", "), err
		}},
		{"ints", func(v *hostval.Value) (string, error) {
			xs, err := convert.Ints(v)
			return fmt.Sprint(xs), err
		}},
		{"reals", func(v *hostval.Value) (string, error) {
			xs, err := convert.Reals(v)
			return fmt.Sprint(xs), err
		}},
		{"matrix", formatMatrix},
	}
}

// formatMatrix renders a two-extent value row by row.
func formatMatrix(v *hostval.Value) (string, error) {
	switch v.Kind() {
	case hostval.KindInteger:
		return renderMatrix[hostval.Rint](v)
	case hostval.KindReal:
		return renderMatrix[hostval.Rfloat](v)
	default:
		return "", fmt.Errorf("matrix view needs integer or real storage, have %s", v.Kind())
	}
}

func renderMatrix[T interface{ hostval.Rint | hostval.Rfloat }](v *hostval.Value) (string, error) {
	m, err := array.MatrixFromValue[T](v)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for r := 0; r < m.Nrows(); r++ {
		for c := 0; c < m.Ncols(); c++ {
			if c > 0 {
				b.WriteByte('\t')
			}
			fmt.Fprint(&b, m.At(r, c))
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// isTerminal reports whether stdout is attached to a terminal; the TUI
// refuses to start on a pipe.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
