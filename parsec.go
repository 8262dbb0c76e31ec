/*
Package parsec is a parser combinator library.

Consists of subpackages:
  - source: immutable input with line/column resolution;
  - reply: parser results distinguishing consumed and unconsumed outcomes;
  - parser: parser type, primitive matchers, and combinators;
  - parser/expr: expression parsers built from operator precedence tables;
  - lexer: token-level helpers (numbers, identifiers, keywords, whitespace);
  - cmd/parsec: console utility running sample grammars.

Typical usage is:

1. Build a parser from primitive matchers and combinators.
Parsers are plain functions of input and position, so they may be stored in
package variables and shared between goroutines.

2. Use expr.New for operator expressions instead of encoding precedence in grammar rules.

3. Run the parser with Run or Parse. By default the whole input must be consumed.
*/
package parsec

import (
	"fmt"
	"unicode"

	"github.com/tliron/commonlog"

	"github.com/ava12/parsec/parser"
	"github.com/ava12/parsec/source"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	SyntaxErrors  = 201 // used by Run
	ConfigErrors  = 301 // used by configuration loader
	ExampleErrors = 401 // used by sample grammars
)

// Error codes used by Run:
const (
	// UnexpectedInputError indicates that parser failed without consuming input.
	UnexpectedInputError = SyntaxErrors + iota

	// SyntaxError indicates that parser failed after consuming input.
	SyntaxError

	// TrailingInputError indicates that parser succeeded, but some input is left unparsed.
	TrailingInputError
)

// DefaultSourceName is used when no name is set with WithName.
const DefaultSourceName = "input"

// Error is the error type used by parsec subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Pos contains rune offset in source.
	Pos int

	// Line contains line number in source or 0.
	Line int

	// Col contains column number in source or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Location implements this interface.
type SourcePos interface {
	SourceName() string
	Offset() int
	Line() int
	Col() int
}

// NewError creates new Error structure.
// Position will be added to error message if line and col are provided (non-zero).
func NewError(code int, msg, name string, pos, line, col int) *Error {
	if line != 0 && col != 0 {
		if name != "" {
			msg += " in " + name
		}
		msg += fmt.Sprintf(" at line %d col %d (offset %d)", line, col, pos)
	}
	return &Error{code, msg, name, pos, line, col}
}

func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Offset(), pos.Line(), pos.Col())
}

var log = commonlog.GetLogger("parsec")

type options struct {
	name          string
	allowTrailing bool
	trim          bool
	trimSide      source.Side
	trimPred      func(rune) bool
	normalizeNls  bool
	log           commonlog.Logger
}

// Option changes Run behavior.
type Option func(*options)

// AllowTrailingInput disables end of input check: parser may leave input unconsumed.
func AllowTrailingInput() Option {
	return func(o *options) {
		o.allowTrailing = true
	}
}

// Trim removes runes matching pred from one or both sides of input before parsing.
// nil pred trims white space.
func Trim(side source.Side, pred func(rune) bool) Option {
	return func(o *options) {
		o.trim = true
		o.trimSide = side
		o.trimPred = pred
		if pred == nil {
			o.trimPred = unicode.IsSpace
		}
	}
}

// NormalizeNewlines replaces "\r\n" and "\r" with "\n" before parsing.
func NormalizeNewlines() Option {
	return func(o *options) {
		o.normalizeNls = true
	}
}

// WithName sets source name used in error messages.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger replaces the package logger. commonlog.MOCK_LOGGER disables logging.
func WithLogger(l commonlog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Result contains parsed value or error.
type Result[T any] struct {
	// Value contains parsed value, zero value on error.
	Value T

	// Pos contains rune offset where parsing stopped.
	Pos int

	// Err is nil on success.
	Err *Error
}

// Success reports whether parsing succeeded.
func (r Result[T]) Success() bool {
	return r.Err == nil
}

// Run applies p to input.
// Unless AllowTrailingInput option is set the whole input must be consumed.
func Run[T any](p parser.Parser[T], input string, opts ...Option) Result[T] {
	o := options{name: DefaultSourceName, log: log}
	for _, opt := range opts {
		opt(&o)
	}

	if o.normalizeNls {
		input = source.NormalizeNls(input)
	}
	if o.trim {
		input = source.Trim(input, o.trimSide, o.trimPred)
	}
	src := source.New(o.name, input)
	o.log.Debug("parsing", "source", o.name, "length", src.Len())

	r := p.Run(src)
	if r.IsFailure() {
		code := UnexpectedInputError
		if r.IsError() {
			code = SyntaxError
		}
		e := failure(src, code, r.Pos, r.Message)
		o.log.Debug("parsing failed", "source", o.name, "kind", r.Kind.String(), "error", e.Message)
		return Result[T]{Pos: r.Pos, Err: e}
	}

	if !o.allowTrailing {
		end := parser.EndOfInput()(src, r.Pos)
		if end.IsFailure() {
			e := failure(src, TrailingInputError, end.Pos, end.Message)
			o.log.Debug("trailing input", "source", o.name, "pos", end.Pos)
			return Result[T]{Pos: r.Pos, Err: e}
		}
	}

	o.log.Debug("parsed", "source", o.name, "pos", r.Pos)
	return Result[T]{Value: r.Value, Pos: r.Pos}
}

// Parse is Run returning Go error instead of Result.
func Parse[T any](p parser.Parser[T], input string, opts ...Option) (T, error) {
	r := Run(p, input, opts...)
	if r.Err != nil {
		return r.Value, r.Err
	}
	return r.Value, nil
}

func failure(src *source.Source, code, pos int, msg string) *Error {
	if msg == "" {
		if src.AtEnd(pos) {
			msg = "unexpected end of input"
		} else {
			msg = "unexpected input: " + src.Snippet(pos, parser.SnippetSize)
		}
	}
	return FormatErrorPos(src.Location(pos), code, "%s", msg)
}
