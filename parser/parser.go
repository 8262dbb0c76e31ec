/*
Package parser defines parser type and combinators used to build parsers.

A parser is a pure function of immutable input and a position in it.
Parsers are composed by combinators, the resulting parser is a tree of closures
evaluated from the top: results flow bottom-up as reply.Reply values.

Every reply tells whether input was consumed. The rule that makes choice cheap
and predictable is: once input is consumed, alternatives are not tried.
Bind turns a failure of a continuation into reply.ErrorReply if the first parser
has consumed input; Choice never tries its second branch after such a reply.
Attempt and TryCatch are the only ways to backtrack past consumed input.

Parsers hold no mutable state, so one parser may be used concurrently.
Recursive grammars use Lazy to refer to a parser before it is constructed.
*/
package parser

import (
	"github.com/ava12/parsec/reply"
	"github.com/ava12/parsec/source"
)

// Parser runs at pos in src and returns reply; pos is a rune offset.
type Parser[T any] func(src *source.Source, pos int) reply.Reply[T]

// Run applies the parser to the start of src.
func (p Parser[T]) Run(src *source.Source) reply.Reply[T] {
	return p(src, 0)
}

// Pure succeeds with value without consuming input.
func Pure[T any](value T) Parser[T] {
	return func(_ *source.Source, pos int) reply.Reply[T] {
		return reply.Epsilon(value, pos)
	}
}

// Bind runs p, then the parser returned by f for p's value.
// If p has consumed input and the continuation fails (consuming or not),
// the result is reply.ErrorReply at the position where p started.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(src *source.Source, pos int) reply.Reply[B] {
		a := p(src, pos)
		switch a.Kind {
		case reply.EpsilonReply:
			return f(a.Value)(src, a.Pos)

		case reply.OkReply:
			b := f(a.Value)(src, a.Pos)
			switch b.Kind {
			case reply.FailReply, reply.ErrorReply:
				message := b.Message
				if message == "" {
					message = unexpectedMessage(src, b.Pos)
				}
				return reply.Error[B](pos, message)
			case reply.EpsilonReply:
				b.Kind = reply.OkReply
			}
			return b

		default:
			return reply.Cast[B](a)
		}
	}
}

// Then runs p, then q, and returns q's value.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Bind(p, func(A) Parser[B] {
		return q
	})
}

// After runs p, then q, and returns p's value.
func After[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Bind(p, func(a A) Parser[A] {
		return Map(q, func(B) A {
			return a
		})
	})
}

// Map converts p's value with f. Consumption is the same as p's.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(src *source.Source, pos int) reply.Reply[B] {
		a := p(src, pos)
		if a.IsFailure() {
			return reply.Cast[B](a)
		}

		return reply.Reply[B]{Kind: a.Kind, Value: f(a.Value), Pos: a.Pos}
	}
}

// Apply runs pf, then pa, and applies the function to the value.
func Apply[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return Bind(pf, func(f func(A) B) Parser[B] {
		return Map(pa, f)
	})
}

// Void discards p's value.
func Void[T any](p Parser[T]) Parser[struct{}] {
	return Map(p, func(T) struct{} {
		return struct{}{}
	})
}
