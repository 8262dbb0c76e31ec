/*
Package lexer contains token-level parsers built from parser combinators.

Grammars in this package's style parse whitespace after each token, not before:
wrap token parsers with Lexeme and skip leading whitespace once at the start of input.
*/
package lexer

import (
	"strconv"
	"unicode"

	"github.com/ava12/parsec/parser"
)

// IsIdentStart reports whether r may start an identifier.
func IsIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// IsIdentRune reports whether r may continue an identifier.
func IsIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Digit matches one decimal digit.
func Digit() parser.Parser[rune] {
	return parser.Label(parser.Satisfy(isDigit), "digit")
}

// Integer matches one or more decimal digits.
// Values that do not fit into int are reported as errors.
func Integer() parser.Parser[int] {
	return parser.Bind(parser.Some(Digit()), func(ds []rune) parser.Parser[int] {
		n, e := strconv.Atoi(string(ds))
		if e != nil {
			return parser.Error[int]("integer out of range: " + string(ds))
		}
		return parser.Pure(n)
	})
}

// Float matches digits with optional fraction, e.g. "12", "12.", "12.5".
func Float() parser.Parser[float64] {
	fraction := parser.Then(parser.Char('.'), parser.Many(Digit()))
	return parser.Bind(parser.Some(Digit()), func(whole []rune) parser.Parser[float64] {
		return parser.Bind(parser.Optional(fraction), func(frac []rune) parser.Parser[float64] {
			text := string(whole)
			if len(frac) > 0 {
				text += "." + string(frac)
			}
			f, e := strconv.ParseFloat(text, 64)
			if e != nil {
				return parser.Error[float64]("float out of range: " + text)
			}
			return parser.Pure(f)
		})
	})
}

// Whitespace skips any number of white space runes.
func Whitespace() parser.Parser[struct{}] {
	return parser.Skip(parser.Satisfy(unicode.IsSpace))
}

// Newline matches a single line feed.
func Newline() parser.Parser[struct{}] {
	return parser.Void(parser.Char('\n'))
}

// Lexeme runs p and skips white space after it.
func Lexeme[T any](p parser.Parser[T]) parser.Parser[T] {
	return parser.After(p, Whitespace())
}

// Symbol matches c followed by optional white space.
func Symbol(c rune) parser.Parser[rune] {
	return Lexeme(parser.Char(c))
}

// Word matches text followed by optional white space.
func Word(text string) parser.Parser[string] {
	return Lexeme(parser.Literal(text))
}

// Identifier matches a letter or underscore followed by letters, digits, and underscores.
// White space after it is not skipped.
func Identifier() parser.Parser[string] {
	first := parser.Label(parser.Satisfy(IsIdentStart), "identifier")
	return parser.Bind(first, func(r rune) parser.Parser[string] {
		return parser.Map(parser.Many(parser.Satisfy(IsIdentRune)), func(rs []rune) string {
			return string(r) + string(rs)
		})
	})
}

// Keyword matches text unless it is a prefix of a longer identifier,
// then skips white space. It never consumes input on failure.
func Keyword(text string) parser.Parser[string] {
	kw := parser.After(parser.Literal(text), parser.NotFollowedBy(parser.Satisfy(IsIdentRune)))
	return Lexeme(parser.Label(parser.Attempt(kw), strconv.Quote(text)))
}

// Boolean matches "true" or "false" keywords.
func Boolean() parser.Parser[bool] {
	return parser.Choice(
		parser.Then(Keyword("true"), parser.Pure(true)),
		parser.Then(Keyword("false"), parser.Pure(false)),
	)
}
