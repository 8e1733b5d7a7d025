package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	m "svgflat.dev/pkg/svgflat/internal/model"
)

// resolver turns invocations into absolute points, tracking the cursor across
// the subpath groups of one command string.
type resolver struct {
	flattener Flattener
	cursor    m.Point
	asm       Assembler
}

func newResolver(flattener Flattener) *resolver {
	return &resolver{flattener: flattener}
}

// resolveGroup resolves the invocations of one subpath and emits it.
func (r *resolver) resolveGroup(group []m.Invocation) error {
	for _, inv := range group {
		if err := r.resolve(inv); err != nil {
			return err
		}
	}

	r.asm.Boundary()

	return nil
}

func (r *resolver) resolve(inv m.Invocation) error {
	switch inv.Kind {
	case m.Close:
		if first, ok := r.asm.First(); ok {
			r.asm.Append(first)
			r.cursor = first
		}

		return nil
	case m.QuadraticCurve:
		return r.resolveCurve(inv)
	default:
	}

	for i, text := range inv.Operands {
		next, err := resolveOperand(inv, r.cursor, text)
		if err != nil {
			return newParseError(err, text, inv.Index+1+i)
		}

		// Only the first pair of a move moves; the rest are implicit lines.
		if inv.Kind == m.Move && i == 0 {
			r.cursor = next
			continue
		}

		if r.asm.Empty() {
			r.asm.Append(r.cursor)
		}

		r.asm.Append(next)
		r.cursor = next
	}

	return nil
}

// resolveCurve consumes (control, end) operand pairs. Relative operands of a
// segment are offsets from the segment's start point.
func (r *resolver) resolveCurve(inv m.Invocation) error {
	start := r.cursor

	var control m.Point

	for i, text := range inv.Operands {
		next, err := resolveOperand(inv, start, text)
		if err != nil {
			return newParseError(err, text, inv.Index+1+i)
		}

		if i%2 == 0 {
			control = next
			continue
		}

		r.asm.Append(r.flattener.Flatten(start, control, next)...)
		start = next
		r.cursor = next
	}

	if last := len(inv.Operands) - 1; last%2 == 0 {
		return newParseError(ErrTrailingOperands, inv.Operands[last], inv.Index+1+last)
	}

	return nil
}

// resolveOperand parses one operand of inv and returns the position it leads
// to from cursor.
func resolveOperand(inv m.Invocation, cursor m.Point, text string) (m.Point, error) {
	if inv.Kind.SingleOperand() {
		if strings.Contains(text, ",") {
			return m.Point{}, fmt.Errorf("%w: %s takes a single number", ErrOperandArityMismatch, inv.Kind)
		}

		v, err := parseNumber(text)
		if err != nil {
			return m.Point{}, err
		}

		next := cursor
		if inv.Relativity == m.Relative {
			v += axis(cursor, inv.Kind)
		}

		if inv.Kind == m.HorizontalLine {
			next.X = v
		} else {
			next.Y = v
		}

		return finite(next, text)
	}

	xs, ys, ok := strings.Cut(text, ",")
	if !ok {
		return m.Point{}, fmt.Errorf("%w: %s takes an x,y pair", ErrOperandArityMismatch, inv.Kind)
	}

	x, err := parseNumber(xs)
	if err != nil {
		return m.Point{}, err
	}

	y, err := parseNumber(ys)
	if err != nil {
		return m.Point{}, err
	}

	if inv.Relativity == m.Relative {
		return finite(cursor.Add(m.Pt(x, y)), text)
	}

	return m.Pt(x, y), nil
}

// finite rejects a resolved position that overflowed.
func finite(p m.Point, text string) (m.Point, error) {
	if math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return m.Point{}, fmt.Errorf("%w: %q leaves the representable range", ErrMalformedNumber, text)
	}

	return p, nil
}

func axis(p m.Point, kind m.CommandKind) float64 {
	if kind == m.HorizontalLine {
		return p.X
	}

	return p.Y
}

// parseNumber accepts decimal numbers with an optional sign, fraction and
// exponent. Hex floats, underscores and non-finite values are rejected.
func parseNumber(s string) (float64, error) {
	if !isDecimal(s) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedNumber, s)
	}

	return v, nil
}

func isDecimal(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}

	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}

	if digits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}

		exp := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			exp++
		}

		if exp == 0 {
			return false
		}
	}

	return i == len(s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
