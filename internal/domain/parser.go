package domain

import (
	m "svgflat.dev/pkg/svgflat/internal/model"
)

// Parser flattens path-data strings into polylines.
type Parser interface {
	// Parse returns the subpaths described by data. On error no subpath is
	// returned.
	Parse(data string) (m.Path, error)
}

type parser struct {
	flattener Flattener
}

// NewParser creates a Parser that flattens curves with the given Flattener.
func NewParser(flattener Flattener) Parser {
	return &parser{flattener: flattener}
}

func (p *parser) Parse(data string) (m.Path, error) {
	tokens, err := Tokenize(data)
	if err != nil {
		return nil, err
	}

	var (
		state MachineState
		group []m.Invocation
	)

	res := newResolver(p.flattener)

	for _, token := range tokens {
		state, group, err = Step(state, token)
		if err != nil {
			return nil, err
		}

		if group == nil {
			continue
		}

		if err := res.resolveGroup(group); err != nil {
			return nil, err
		}
	}

	if group := Finish(state); group != nil {
		if err := res.resolveGroup(group); err != nil {
			return nil, err
		}
	}

	return res.asm.Path(), nil
}
