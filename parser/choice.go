package parser

import (
	"github.com/ava12/parsec/reply"
	"github.com/ava12/parsec/source"
)

// Choice tries pa, then pb.
//
// pb is not tried if pa has consumed input (either succeeded or failed).
// If pa failed without consuming, pb runs from the same position.
// If pa succeeded without consuming, pb runs too; pa's reply is kept unless pb consumed input.
func Choice[T any](pa, pb Parser[T]) Parser[T] {
	return func(src *source.Source, pos int) reply.Reply[T] {
		a := pa(src, pos)
		switch a.Kind {
		case reply.OkReply, reply.ErrorReply:
			return a

		case reply.FailReply:
			b := pb(src, pos)
			if b.Kind == reply.FailReply && b.Message == "" {
				b.Message = a.Message
			}
			return b
		}

		b := pb(src, pos)
		if b.IsEmpty() {
			return a
		}
		return b
	}
}

// Choices folds Choice over ps from left to right.
// With no parsers it returns a parser that always fails without consuming.
func Choices[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		return Fail[T]("")
	}

	res := ps[0]
	for _, p := range ps[1:] {
		res = Choice(res, p)
	}
	return res
}

// Fail always fails without consuming input.
func Fail[T any](message string) Parser[T] {
	return func(_ *source.Source, pos int) reply.Reply[T] {
		return reply.Fail[T](pos, message)
	}
}

// Error always fails as if input was consumed, at the current position.
func Error[T any](message string) Parser[T] {
	return func(_ *source.Source, pos int) reply.Reply[T] {
		return reply.Error[T](pos, message)
	}
}

// Attempt turns p's reply.ErrorReply into reply.FailReply at the starting position,
// so alternatives can be tried after p consumed input.
func Attempt[T any](p Parser[T]) Parser[T] {
	return func(src *source.Source, pos int) reply.Reply[T] {
		a := p(src, pos)
		if a.Kind == reply.ErrorReply {
			return reply.Fail[T](pos, a.Message)
		}
		return a
	}
}

// TryCatch runs the parser returned by handler from the starting position
// if p returns reply.ErrorReply. handler gets the error message.
func TryCatch[T any](p Parser[T], handler func(message string) Parser[T]) Parser[T] {
	return func(src *source.Source, pos int) reply.Reply[T] {
		a := p(src, pos)
		if a.Kind == reply.ErrorReply {
			return handler(a.Message)(src, pos)
		}
		return a
	}
}

// Label sets "expected <name>" message on p's failures that consumed nothing.
func Label[T any](p Parser[T], name string) Parser[T] {
	message := expectedMessage(name)
	return func(src *source.Source, pos int) reply.Reply[T] {
		a := p(src, pos)
		if a.Kind == reply.FailReply {
			a.Message = message
		}
		return a
	}
}

// LookAhead runs p and returns its value without consuming input.
// Failures are returned as is.
func LookAhead[T any](p Parser[T]) Parser[T] {
	return func(src *source.Source, pos int) reply.Reply[T] {
		a := p(src, pos)
		if a.IsSuccess() {
			return reply.Epsilon(a.Value, pos)
		}
		return a
	}
}

// NotFollowedBy succeeds without consuming if p fails, and fails without consuming if p succeeds.
// An ErrorReply from p is returned as is; wrap p in Attempt to treat it as a plain failure.
func NotFollowedBy[T any](p Parser[T]) Parser[struct{}] {
	return func(src *source.Source, pos int) reply.Reply[struct{}] {
		a := p(src, pos)
		if a.IsError() {
			return reply.Cast[struct{}](a)
		}
		if a.IsSuccess() {
			return reply.Fail[struct{}](pos, unexpectedMessage(src, pos))
		}
		return reply.Epsilon(struct{}{}, pos)
	}
}
