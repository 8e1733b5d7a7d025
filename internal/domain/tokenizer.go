package domain

import (
	"strings"

	m "svgflat.dev/pkg/svgflat/internal/model"
)

var commandLetters = map[byte]m.CommandKind{
	'm': m.Move,
	'l': m.Line,
	'h': m.HorizontalLine,
	'v': m.VerticalLine,
	'q': m.QuadraticCurve,
	'z': m.Close,
}

// Tokenize splits a path-data string into command letters and operands.
//
// Fields are separated by whitespace. A command letter glued to its operand
// ("M0,0", "10,0z") is split out. Operands holding any other letter are
// rejected as unknown commands; number syntax is checked later.
func Tokenize(data string) ([]m.Token, error) {
	var tokens []m.Token

	appendOperand := func(text string) error {
		if hasUnsupportedLetter(text) {
			return newParseError(ErrUnknownCommandLetter, text, len(tokens))
		}

		tokens = append(tokens, m.Token{Kind: m.TokenOperand, Text: text})

		return nil
	}

	for _, field := range strings.Fields(data) {
		start := 0

		for i := 0; i < len(field); i++ {
			token, ok := commandToken(field[i])
			if !ok {
				continue
			}

			if i > start {
				if err := appendOperand(field[start:i]); err != nil {
					return nil, err
				}
			}

			tokens = append(tokens, token)
			start = i + 1
		}

		if start < len(field) {
			if err := appendOperand(field[start:]); err != nil {
				return nil, err
			}
		}
	}

	return tokens, nil
}

func commandToken(c byte) (m.Token, bool) {
	lower := c | 0x20

	kind, ok := commandLetters[lower]
	if !ok {
		return m.Token{}, false
	}

	rel := m.Absolute
	if c == lower {
		rel = m.Relative
	}

	return m.Token{Kind: m.TokenCommand, Text: string(c), Command: kind, Relativity: rel}, true
}

// hasUnsupportedLetter catches command letters outside the supported set
// (C, S, T, A, ...) wherever they sit in an operand. Exponent markers are
// allowed, as are the words "inf", "infinity" and "nan", which the number
// parser rejects.
func hasUnsupportedLetter(operand string) bool {
	for _, part := range strings.Split(operand, ",") {
		word := strings.ToLower(strings.TrimLeft(part, "+-"))
		if word == "inf" || word == "infinity" || word == "nan" {
			continue
		}

		for i := 0; i < len(part); i++ {
			if isASCIILetter(part[i]) && part[i]|0x20 != 'e' {
				return true
			}
		}
	}

	return false
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
