package parser

import (
	"github.com/ava12/parsec/reply"
	"github.com/ava12/parsec/source"
)

// Between parses open, inner, and close; returns inner's value.
func Between[O, C, T any](open Parser[O], close Parser[C], inner Parser[T]) Parser[T] {
	return Then(open, After(inner, close))
}

// Option returns def if p fails without consuming input.
func Option[T any](p Parser[T], def T) Parser[T] {
	return Choice(p, Pure(def))
}

// Optional returns zero value if p fails without consuming input.
func Optional[T any](p Parser[T]) Parser[T] {
	var zero T
	return Option(p, zero)
}

// Lazy calls thunk each time the parser runs.
// Used for recursive grammars, where a parser refers to itself or to a parser defined later.
func Lazy[T any](thunk func() Parser[T]) Parser[T] {
	return func(src *source.Source, pos int) reply.Reply[T] {
		return thunk()(src, pos)
	}
}
