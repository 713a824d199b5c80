// Package parse holds the low-level token stream and command line splitting used by the matcher.
package parse

import (
	"github.com/ef-ds/deque"
)

// Token is a raw argument together with its 1-based position on the command line
type Token struct {
	Value string
	Pos   int
}

// Stream is a forward-only queue of raw arguments
type Stream struct {
	q *deque.Deque
}

// NewStream returns a stream over args. The first argument gets position firstPos.
func NewStream(args []string, firstPos int) *Stream {
	q := deque.New()
	for i, a := range args {
		q.PushBack(Token{Value: a, Pos: firstPos + i})
	}

	return &Stream{q: q}
}

// Next removes and returns the front token
func (s *Stream) Next() (Token, bool) {
	v, ok := s.q.PopFront()
	if !ok {
		return Token{}, false
	}

	return v.(Token), true
}

// Peek returns the front token without removing it
func (s *Stream) Peek() (Token, bool) {
	v, ok := s.q.Front()
	if !ok {
		return Token{}, false
	}

	return v.(Token), true
}

// Len returns the number of remaining tokens
func (s *Stream) Len() int {
	return s.q.Len()
}

// Rest drains the stream and returns the remaining tokens in order
func (s *Stream) Rest() []Token {
	rest := make([]Token, 0, s.q.Len())
	for {
		t, ok := s.Next()
		if !ok {
			return rest
		}
		rest = append(rest, t)
	}
}
