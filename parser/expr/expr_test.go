package expr

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/ava12/parsec/internal/test"
	"github.com/ava12/parsec/parser"
	"github.com/ava12/parsec/reply"
	"github.com/ava12/parsec/source"
)

func run[T any](p parser.Parser[T], input string) reply.Reply[T] {
	return p.Run(source.New("", input))
}

var integer = parser.Map(parser.Some(parser.Satisfy(unicode.IsDigit)), func(ds []rune) int {
	n, _ := strconv.Atoi(string(ds))
	return n
})

func binary(c rune, f func(a, b int) int) parser.Parser[func(int, int) int] {
	return parser.Then(parser.Char(c), parser.Pure(f))
}

func unary(text string, f func(int) int) parser.Parser[func(int) int] {
	return parser.Then(parser.Literal(text), parser.Pure(f))
}

var (
	sub = binary('-', func(a, b int) int { return a - b })
	add = binary('+', func(a, b int) int { return a + b })
	mul = binary('*', func(a, b int) int { return a * b })
	div = binary('/', func(a, b int) int { return a / b })
	pow = binary('^', func(a, b int) int { return int(math.Pow(float64(a), float64(b))) })
	neg = unary("-", func(a int) int { return -a })
	inc = unary("++", func(a int) int { return a + 1 })
)

// treeTerm and treeOp render expressions in full parentheses to show structure.
var treeTerm = parser.Map(parser.Some(parser.Satisfy(unicode.IsDigit)), func(ds []rune) string {
	return string(ds)
})

func treeOp(c rune) parser.Parser[func(string, string) string] {
	return parser.Then(parser.Char(c), parser.Pure(func(a, b string) string {
		return "(" + a + string(c) + b + ")"
	}))
}

func TestAssociativity(t *testing.T) {
	samples := []struct {
		fixity Fixity
		input  string
		value  int
		tree   string
	}{
		{InfixL, "1-2-3", -4, "((1-2)-3)"},
		{InfixR, "1-2-3", 2, "(1-(2-3))"},
		{InfixL, "8-4", 4, "(8-4)"},
		{InfixR, "8-4", 4, "(8-4)"},
		{InfixL, "7", 7, "7"},
		{InfixR, "7", 7, "7"},
		{InfixL, "10-1-2-3", 4, "(((10-1)-2)-3)"},
		{InfixR, "10-1-2-3", 10, "(10-(1-(2-3)))"},
	}

	for i, s := range samples {
		vop := Operator[int]{Fixity: s.fixity, Binary: sub}
		top := Operator[string]{Fixity: s.fixity, Binary: treeOp('-')}
		value := run(New(integer, Table[int]{{vop}}), s.input)
		tree := run(New(treeTerm, Table[string]{{top}}), s.input)
		if value.Kind != reply.OkReply || value.Value != s.value {
			t.Errorf("sample #%d: expecting value %d, got %s", i, s.value, value)
		}
		if tree.Kind != reply.OkReply || tree.Value != s.tree {
			t.Errorf("sample #%d: expecting tree %s, got %s", i, s.tree, tree)
		}
	}
}

var arithmetic = Table[int]{
	{NewPrefix(neg), NewPostfix(inc)},
	{NewInfixR(pow)},
	{NewInfixL(mul), NewInfixL(div)},
	{NewInfixL(add), NewInfixL(sub)},
}

func arithmeticParser() parser.Parser[int] {
	var expr parser.Parser[int]
	term := parser.Choice(
		parser.Between(parser.Char('('), parser.Char(')'), parser.Lazy(func() parser.Parser[int] {
			return expr
		})),
		integer,
	)
	expr = New(term, arithmetic)
	return expr
}

func TestPrecedence(t *testing.T) {
	p := arithmeticParser()
	samples := []struct {
		input string
		value int
		pos   int
	}{
		{"1+2*2", 5, 5},
		{"(1+2)*2", 6, 7},
		{"2^3^2", 512, 5},
		{"2*3^2", 18, 5},
		{"-2^2", 4, 4},
		{"-3++", -2, 4},
		{"3++*2", 8, 5},
		{"10-2*3-1", 3, 8},
		{"100/10/5", 2, 8},
		{"2*(3+4)-(5)", 9, 11},
		{"1+2)", 3, 3},
	}

	for i, s := range samples {
		r := run(p, s.input)
		if r.Kind != reply.OkReply || r.Value != s.value || r.Pos != s.pos {
			t.Errorf("sample #%d (%q): expecting %d at %d, got %s", i, s.input, s.value, s.pos, r)
		}
	}
}

func TestErrors(t *testing.T) {
	p := arithmeticParser()
	samples := []struct {
		input string
		kind  reply.Kind
		pos   int
	}{
		{"", reply.FailReply, 0},
		{"*2", reply.FailReply, 0},
		{"(1+2", reply.ErrorReply, 0},
		{"((1)", reply.ErrorReply, 0},
		{"1+", reply.ErrorReply, 0},
		{"2*(3+)", reply.ErrorReply, 0},
		{"-", reply.ErrorReply, 0},
		{"2^", reply.ErrorReply, 0},
	}

	for i, s := range samples {
		r := run(p, s.input)
		if r.Kind != s.kind || r.Pos != s.pos {
			t.Errorf("sample #%d (%q): expecting %s at %d, got %s", i, s.input, s.kind, s.pos, r)
		}
	}
}

func TestMixedLevel(t *testing.T) {
	table := Table[string]{
		{NewInfixL(treeOp('-')), NewInfixR(treeOp('^'))},
	}
	p := New(treeTerm, table)
	samples := []struct {
		input, tree string
		pos         int
	}{
		{"2^3^2", "(2^(3^2))", 5},
		{"8-2-1", "((8-2)-1)", 5},
		{"1", "1", 1},
		{"1^2-3", "(1^2)", 3},
	}

	for i, s := range samples {
		r := run(p, s.input)
		if r.Kind != reply.OkReply || r.Value != s.tree || r.Pos != s.pos {
			t.Errorf("sample #%d (%q): expecting %s at %d, got %s", i, s.input, s.tree, s.pos, r)
		}
	}
}

func TestEmptyLevels(t *testing.T) {
	p := New(integer, Table[int]{{}, {NewInfixL(add)}, nil})
	test.ExpectReply(t, reply.OkReply, 6, 5, run(p, "1+2+3"))

	p = New(integer, nil)
	test.ExpectReply(t, reply.OkReply, 42, 2, run(p, "42"))
	test.ExpectKind(t, reply.FailReply, 0, run(p, "x"))
}

func TestLongChains(t *testing.T) {
	const size = 20000
	input := strings.TrimSuffix(strings.Repeat("1-", size), "-")

	left := run(New(integer, Table[int]{{NewInfixL(sub)}}), input)
	test.ExpectReply(t, reply.OkReply, 1-(size-1), len(input), left)

	right := run(New(integer, Table[int]{{NewInfixR(sub)}}), input)
	test.ExpectReply(t, reply.OkReply, 0, len(input), right)
}

func TestSplitOperators(t *testing.T) {
	level := []Operator[int]{
		NewInfixL(add), NewPrefix(neg), NewInfixR(pow), NewInfixL(sub), NewPostfix(inc),
	}
	s := SplitOperators(level)
	test.ExpectInt(t, 1, len(s.Prefix))
	test.ExpectInt(t, 1, len(s.Postfix))
	test.ExpectInt(t, 2, len(s.InfixL))
	test.ExpectInt(t, 1, len(s.InfixR))
	test.ExpectBool(t, false, s.IsEmpty())
	test.ExpectBool(t, true, SplitOperators[int](nil).IsEmpty())
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expecting panic", name)
		}
	}()
	f()
}

func TestMalformedTables(t *testing.T) {
	expectPanic(t, "unknown fixity", func() {
		New(integer, Table[int]{{{Fixity: Fixity(7), Binary: add}}})
	})
	expectPanic(t, "prefix without parser", func() {
		New(integer, Table[int]{{{Fixity: Prefix, Binary: add}}})
	})
	expectPanic(t, "infix without parser", func() {
		New(integer, Table[int]{{{Fixity: InfixR, Unary: neg}}})
	})
	expectPanic(t, "nil term", func() {
		New[int](nil, arithmetic)
	})
}

func TestFixityString(t *testing.T) {
	test.ExpectString(t, "infixR", InfixR.String())
	test.ExpectString(t, "postfix", Postfix.String())
	test.ExpectString(t, "Fixity(9)", Fixity(9).String())
}
