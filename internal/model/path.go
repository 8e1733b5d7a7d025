package model

// CommandKind identifies a path-data command independently of its letter case.
type CommandKind int

// Supported path-data commands.
const (
	Move CommandKind = iota
	Line
	HorizontalLine
	VerticalLine
	QuadraticCurve
	Close
)

// String returns the lowercase command letter.
func (k CommandKind) String() string {
	switch k {
	case Move:
		return "m"
	case Line:
		return "l"
	case HorizontalLine:
		return "h"
	case VerticalLine:
		return "v"
	case QuadraticCurve:
		return "q"
	case Close:
		return "z"
	default:
		return "?"
	}
}

// SingleOperand reports whether the command takes one number per operand
// instead of an x,y pair.
func (k CommandKind) SingleOperand() bool {
	return k == HorizontalLine || k == VerticalLine
}

// Relativity tells whether operands are absolute coordinates or offsets from
// the cursor. Uppercase letters are absolute, lowercase letters relative.
type Relativity int

// Relativity values.
const (
	Absolute Relativity = iota
	Relative
)

func (r Relativity) String() string {
	if r == Relative {
		return "relative"
	}

	return "absolute"
}

// TokenKind separates command letters from operands.
type TokenKind int

// Token kinds.
const (
	TokenCommand TokenKind = iota
	TokenOperand
)

// Token is one element of a tokenized command string. Command and Relativity
// are only meaningful for TokenCommand.
type Token struct {
	Kind       TokenKind
	Text       string
	Command    CommandKind
	Relativity Relativity
}

// Invocation is a command letter together with the operands that follow it
// until the next letter. Each operand produces one resolved point (or one
// curve control point).
type Invocation struct {
	Kind       CommandKind
	Relativity Relativity
	Index      int // position of the command letter in the token stream
	Operands   []string
}

// Subpath is one continuous polyline. A closed subpath repeats its first
// point as its last one.
type Subpath []Point

// Closed reports whether the subpath ends where it starts.
func (s Subpath) Closed() bool {
	return len(s) > 1 && s[0].Equal(s[len(s)-1])
}

// Path holds every subpath produced by one command string.
type Path []Subpath

// PointCount returns the number of points across all subpaths.
func (p Path) PointCount() int {
	total := 0
	for _, sub := range p {
		total += len(sub)
	}

	return total
}
