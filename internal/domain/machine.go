package domain

import (
	m "svgflat.dev/pkg/svgflat/internal/model"
)

// MachineState is the state of the command state machine. The zero value is
// the state before the first token.
type MachineState struct {
	started bool
	index   int
	pending m.Invocation
	queued  []m.Invocation
}

// Pending returns the invocation currently collecting operands.
func (s MachineState) Pending() m.Invocation {
	return s.pending
}

// Queued returns the finalized invocations of the current subpath group.
func (s MachineState) Queued() []m.Invocation {
	return s.queued
}

// Step feeds one token to the state machine. When the token ends a subpath,
// the invocations of that subpath are returned as a group.
//
// Step takes ownership of s: only the returned state may be used afterwards.
func Step(s MachineState, token m.Token) (MachineState, []m.Invocation, error) {
	index := s.index
	s.index++

	if token.Kind == m.TokenOperand {
		if !s.started {
			return s, nil, newParseError(ErrUnknownCommandLetter, token.Text, index)
		}

		s.pending.Operands = append(s.pending.Operands, token.Text)

		return s, nil, nil
	}

	if len(s.pending.Operands) > 0 {
		s.queued = append(s.queued, s.pending)
	}

	s.started = true
	next := m.Invocation{Kind: token.Command, Relativity: token.Relativity, Index: index}

	var group []m.Invocation

	switch token.Command {
	case m.Move:
		if len(s.queued) > 0 {
			group, s.queued = s.queued, nil
		}
	case m.Close:
		if len(s.queued) > 0 {
			group, s.queued = append(s.queued, next), nil
		}

		// Operands after a close draw lines from the closed subpath's start.
		next = m.Invocation{Kind: m.Line, Relativity: token.Relativity, Index: index}
	default:
	}

	s.pending = next

	return s, group, nil
}

// Finish flushes the state machine at the end of input and returns the last
// group, or nil when nothing is left.
func Finish(s MachineState) []m.Invocation {
	if len(s.pending.Operands) > 0 {
		s.queued = append(s.queued, s.pending)
	}

	if len(s.queued) == 0 {
		return nil
	}

	return s.queued
}
