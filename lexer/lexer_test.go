package lexer

import (
	"strings"
	"testing"

	"github.com/ava12/parsec/internal/test"
	"github.com/ava12/parsec/parser"
	"github.com/ava12/parsec/reply"
	"github.com/ava12/parsec/source"
)

func run[T any](p parser.Parser[T], input string) reply.Reply[T] {
	return p.Run(source.New("", input))
}

func TestInteger(t *testing.T) {
	samples := []struct {
		input string
		kind  reply.Kind
		value int
		pos   int
	}{
		{"0", reply.OkReply, 0, 1},
		{"123abc", reply.OkReply, 123, 3},
		{"007", reply.OkReply, 7, 3},
		{"", reply.FailReply, 0, 0},
		{"x1", reply.FailReply, 0, 0},
		{"99999999999999999999999", reply.ErrorReply, 0, 0},
	}

	p := Integer()
	for i, s := range samples {
		r := run(p, s.input)
		if r.Kind != s.kind || r.Value != s.value || r.Pos != s.pos {
			t.Errorf("sample #%d (%q): expecting %s(%d) at %d, got %s", i, s.input, s.kind, s.value, s.pos, r)
		}
	}
}

func TestFloat(t *testing.T) {
	samples := []struct {
		input string
		value float64
		pos   int
	}{
		{"12", 12, 2},
		{"12.", 12, 3},
		{"12.5", 12.5, 4},
		{"0.125+", 0.125, 5},
		{"3.14.15", 3.14, 4},
	}

	p := Float()
	for i, s := range samples {
		r := run(p, s.input)
		if r.Kind != reply.OkReply || r.Value != s.value || r.Pos != s.pos {
			t.Errorf("sample #%d (%q): expecting %g at %d, got %s", i, s.input, s.value, s.pos, r)
		}
	}

	test.ExpectKind(t, reply.FailReply, 0, run(p, ".5"))

	huge := "1" + strings.Repeat("0", 400)
	r := run(p, huge)
	test.ExpectKind(t, reply.ErrorReply, 0, r)
	test.ExpectString(t, "float out of range: "+huge, r.Message)
	test.ExpectKind(t, reply.ErrorReply, 0, run(p, huge+".5"))
}

func TestWhitespace(t *testing.T) {
	test.ExpectKind(t, reply.EpsilonReply, 0, run(Whitespace(), "x"))
	test.ExpectKind(t, reply.OkReply, 4, run(Whitespace(), " \t\n x"))
	test.ExpectKind(t, reply.OkReply, 1, run(Newline(), "\n\n"))
	test.ExpectKind(t, reply.FailReply, 0, run(Newline(), "\r\n"))
}

func TestLexeme(t *testing.T) {
	test.ExpectReply(t, reply.OkReply, '(', 3, run(Symbol('('), "(  1"))
	test.ExpectReply(t, reply.OkReply, "let", 4, run(Word("let"), "let x"))
	test.ExpectReply(t, reply.OkReply, 42, 3, run(Lexeme(Integer()), "42 "))
	test.ExpectKind(t, reply.FailReply, 0, run(Word("let"), "le"))
}

func TestIdentifier(t *testing.T) {
	samples := []struct {
		input string
		kind  reply.Kind
		value string
		pos   int
	}{
		{"foo", reply.OkReply, "foo", 3},
		{"_a1 b", reply.OkReply, "_a1", 3},
		{"x", reply.OkReply, "x", 1},
		{"имя2=", reply.OkReply, "имя2", 4},
		{"1x", reply.FailReply, "", 0},
		{"", reply.FailReply, "", 0},
	}

	p := Identifier()
	for i, s := range samples {
		r := run(p, s.input)
		if r.Kind != s.kind || r.Value != s.value || r.Pos != s.pos {
			t.Errorf("sample #%d (%q): expecting %s(%q) at %d, got %s", i, s.input, s.kind, s.value, s.pos, r)
		}
	}
}

func TestKeyword(t *testing.T) {
	p := Keyword("func")
	test.ExpectReply(t, reply.OkReply, "func", 5, run(p, "func f"))
	test.ExpectReply(t, reply.OkReply, "func", 4, run(p, "func("))

	r := run(p, "function")
	test.ExpectKind(t, reply.FailReply, 0, r)
	test.ExpectString(t, `expected "func"`, r.Message)

	test.ExpectKind(t, reply.FailReply, 0, run(p, "fun"))

	id := parser.Choice(parser.Then(p, parser.Pure("keyword")), Identifier())
	test.ExpectReply(t, reply.OkReply, "functor", 7, run(id, "functor"))
	test.ExpectReply(t, reply.OkReply, "keyword", 4, run(id, "func"))
}

func TestBoolean(t *testing.T) {
	test.ExpectReply(t, reply.OkReply, true, 5, run(Boolean(), "true "))
	test.ExpectReply(t, reply.OkReply, false, 5, run(Boolean(), "false"))
	test.ExpectKind(t, reply.FailReply, 0, run(Boolean(), "trueish"))
	test.ExpectKind(t, reply.FailReply, 0, run(Boolean(), "maybe"))
}
