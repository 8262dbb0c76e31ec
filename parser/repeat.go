package parser

import (
	"github.com/ava12/parsec/reply"
	"github.com/ava12/parsec/source"
)

// Some runs p one or more times and collects values.
//
// Repetition stops at the first reply.FailReply; reply.ErrorReply is returned as is.
// A success that consumed nothing also stops repetition, its value is kept
// only if it is the first one. So Some always terminates.
// Loop is iterative, long inputs do not grow the stack.
func Some[T any](p Parser[T]) Parser[[]T] {
	return func(src *source.Source, pos int) reply.Reply[[]T] {
		a := p(src, pos)
		if a.IsFailure() {
			return reply.Cast[[]T](a)
		}

		values := []T{a.Value}
		if a.Kind == reply.EpsilonReply {
			return reply.Epsilon(values, a.Pos)
		}

		cur := a.Pos
		for {
			x := p(src, cur)
			switch x.Kind {
			case reply.ErrorReply:
				return reply.Cast[[]T](x)
			case reply.FailReply, reply.EpsilonReply:
				return reply.Ok(values, cur)
			}

			values = append(values, x.Value)
			cur = x.Pos
		}
	}
}

// Many runs p zero or more times and collects values.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Choice(Some(p), Pure([]T{}))
}

// SkipSome is Some that discards values.
func SkipSome[T any](p Parser[T]) Parser[struct{}] {
	return func(src *source.Source, pos int) reply.Reply[struct{}] {
		a := p(src, pos)
		if a.IsFailure() {
			return reply.Cast[struct{}](a)
		}
		if a.Kind == reply.EpsilonReply {
			return reply.Epsilon(struct{}{}, a.Pos)
		}

		cur := a.Pos
		for {
			x := p(src, cur)
			switch x.Kind {
			case reply.ErrorReply:
				return reply.Cast[struct{}](x)
			case reply.FailReply, reply.EpsilonReply:
				return reply.Ok(struct{}{}, cur)
			}

			cur = x.Pos
		}
	}
}

// Skip is Many that discards values.
func Skip[T any](p Parser[T]) Parser[struct{}] {
	return Choice(SkipSome(p), Pure(struct{}{}))
}

// SepBy1 parses one or more p separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Bind(p, func(a T) Parser[[]T] {
		return Map(Many(Then(sep, p)), func(as []T) []T {
			return append([]T{a}, as...)
		})
	})
}

// SepBy parses zero or more p separated by sep.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return Choice(SepBy1(p, sep), Pure([]T{}))
}
