package parser

import (
	"strconv"

	"github.com/ava12/parsec/internal/runes"
	"github.com/ava12/parsec/reply"
	"github.com/ava12/parsec/source"
)

// Satisfy consumes one rune if pred holds for it.
// This is the only primitive that moves the position forward one rune at a time.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return satisfy(pred, "")
}

func satisfy(pred func(rune) bool, message string) Parser[rune] {
	return func(src *source.Source, pos int) reply.Reply[rune] {
		r, f := src.At(pos)
		if !f || !pred(r) {
			return reply.Fail[rune](pos, message)
		}

		return reply.Ok(r, pos+1)
	}
}

// Char matches exactly c.
func Char(c rune) Parser[rune] {
	return satisfy(func(r rune) bool {
		return r == c
	}, expectedMessage(strconv.QuoteRune(c)))
}

// AnyChar matches any rune.
func AnyChar() Parser[rune] {
	return satisfy(func(rune) bool {
		return true
	}, expectedMessage("any character"))
}

// OneOf matches any rune of chars.
func OneOf(chars string) Parser[rune] {
	set := runes.NewSet(chars)
	return satisfy(set.Contains, expectedMessage("one of "+strconv.Quote(set.String())))
}

// NoneOf matches any rune not in chars.
func NoneOf(chars string) Parser[rune] {
	set := runes.NewSet(chars)
	return satisfy(func(r rune) bool {
		return !set.Contains(r)
	}, expectedMessage("none of "+strconv.Quote(set.String())))
}

// Literal matches text as a whole. It never consumes a partial match.
// Empty text always succeeds without consuming.
func Literal(text string) Parser[string] {
	rs := []rune(text)
	message := expectedMessage(strconv.Quote(text))
	return func(src *source.Source, pos int) reply.Reply[string] {
		if len(rs) == 0 {
			return reply.Epsilon(text, pos)
		}
		if !src.HasPrefix(pos, rs) {
			return reply.Fail[string](pos, message)
		}

		return reply.Ok(text, pos+len(rs))
	}
}

// EndOfInput succeeds at the end of input. Elsewhere it returns reply.ErrorReply:
// trailing input is not something to backtrack from.
func EndOfInput() Parser[struct{}] {
	return func(src *source.Source, pos int) reply.Reply[struct{}] {
		if src.AtEnd(pos) {
			return reply.Epsilon(struct{}{}, pos)
		}

		return reply.Error[struct{}](pos, endOfInputMessage(src, pos))
	}
}
