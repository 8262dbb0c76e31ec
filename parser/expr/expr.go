/*
Package expr builds expression parsers from operator tables.

Table is a list of precedence levels. Level 0 binds tightest, each next level
binds looser than the previous one. Parser built for a level is the operand of the next level:

	table := expr.Table[int]{
		{expr.NewPrefix(neg)},
		{expr.NewInfixR(pow)},
		{expr.NewInfixL(mul), expr.NewInfixL(div)},
		{expr.NewInfixL(add), expr.NewInfixL(sub)},
	}
	p := expr.New(term, table)

Within a level an operand may have one prefix and one postfix operator, the result
is postfix(prefix(operand)). Infix operators form chains: left-associative chains are
folded as ((a op b) op c), right-associative ones as a op (b op c).
If a level has both kinds, a right-associative chain is tried first.
Mixing both kinds in one chain is not resolved and usually leaves unparsed input.

Malformed tables are programming errors, New panics on them.
*/
package expr

import (
	"fmt"

	"github.com/ava12/parsec/parser"
)

// Fixity tells where an operator stands relative to its operands.
type Fixity int

const (
	Prefix Fixity = iota
	InfixL
	InfixR
	Postfix
)

var fixityNames = [...]string{"prefix", "infixL", "infixR", "postfix"}

func (f Fixity) String() string {
	if f < 0 || int(f) >= len(fixityNames) {
		return fmt.Sprintf("Fixity(%d)", int(f))
	}
	return fixityNames[f]
}

// Operator is a table entry. Prefix and postfix operators use Unary parser,
// infix ones use Binary parser. Parsers return combining functions.
type Operator[T any] struct {
	Fixity Fixity
	Unary  parser.Parser[func(T) T]
	Binary parser.Parser[func(T, T) T]
}

func NewPrefix[T any](p parser.Parser[func(T) T]) Operator[T] {
	return Operator[T]{Fixity: Prefix, Unary: p}
}

func NewPostfix[T any](p parser.Parser[func(T) T]) Operator[T] {
	return Operator[T]{Fixity: Postfix, Unary: p}
}

func NewInfixL[T any](p parser.Parser[func(T, T) T]) Operator[T] {
	return Operator[T]{Fixity: InfixL, Binary: p}
}

func NewInfixR[T any](p parser.Parser[func(T, T) T]) Operator[T] {
	return Operator[T]{Fixity: InfixR, Binary: p}
}

// Table lists precedence levels from the tightest binding to the loosest.
type Table[T any] [][]Operator[T]

// Split holds operators of one level grouped by fixity, in table order.
type Split[T any] struct {
	Prefix  []parser.Parser[func(T) T]
	Postfix []parser.Parser[func(T) T]
	InfixL  []parser.Parser[func(T, T) T]
	InfixR  []parser.Parser[func(T, T) T]
}

// IsEmpty reports whether the level has no operators.
func (s Split[T]) IsEmpty() bool {
	return len(s.Prefix)+len(s.Postfix)+len(s.InfixL)+len(s.InfixR) == 0
}

// SplitOperators groups level operators by fixity.
// Panics on unknown fixity or on a missing parser.
func SplitOperators[T any](level []Operator[T]) Split[T] {
	var res Split[T]
	for i, op := range level {
		switch op.Fixity {
		case Prefix, Postfix:
			if op.Unary == nil {
				panic(fmt.Sprintf("expr: %s operator #%d has no parser", op.Fixity, i))
			}
			if op.Fixity == Prefix {
				res.Prefix = append(res.Prefix, op.Unary)
			} else {
				res.Postfix = append(res.Postfix, op.Unary)
			}

		case InfixL, InfixR:
			if op.Binary == nil {
				panic(fmt.Sprintf("expr: %s operator #%d has no parser", op.Fixity, i))
			}
			if op.Fixity == InfixL {
				res.InfixL = append(res.InfixL, op.Binary)
			} else {
				res.InfixR = append(res.InfixR, op.Binary)
			}

		default:
			panic(fmt.Sprintf("expr: operator #%d has unknown fixity %s", i, op.Fixity))
		}
	}
	return res
}

// New returns parser for expressions built of terms and table operators.
func New[T any](term parser.Parser[T], table Table[T]) parser.Parser[T] {
	if term == nil {
		panic("expr: nil term parser")
	}

	res := term
	for _, level := range table {
		res = Level(res, SplitOperators(level))
	}
	return res
}

// Level returns parser for one precedence level with given operand parser.
func Level[T any](operand parser.Parser[T], ops Split[T]) parser.Parser[T] {
	if ops.IsEmpty() {
		return operand
	}

	term := Term(operand, ops.Prefix, ops.Postfix)
	if len(ops.InfixL) == 0 && len(ops.InfixR) == 0 {
		return term
	}

	var rightChain, leftChain parser.Parser[[]link[T]]
	if len(ops.InfixR) > 0 {
		rightChain = chain(term, parser.Choices(ops.InfixR...))
	}
	if len(ops.InfixL) > 0 {
		leftChain = chain(term, parser.Choices(ops.InfixL...))
	}

	return parser.Bind(term, func(first T) parser.Parser[T] {
		tails := make([]parser.Parser[T], 0, 3)
		if rightChain != nil {
			tails = append(tails, parser.Map(rightChain, func(links []link[T]) T {
				return foldRight(first, links)
			}))
		}
		if leftChain != nil {
			tails = append(tails, parser.Map(leftChain, func(links []link[T]) T {
				return foldLeft(first, links)
			}))
		}
		tails = append(tails, parser.Pure(first))
		return parser.Choices(tails...)
	})
}

// Term returns parser for operand with optional prefix and postfix operators.
func Term[T any](operand parser.Parser[T], prefixes, postfixes []parser.Parser[func(T) T]) parser.Parser[T] {
	res := operand
	if len(prefixes) > 0 {
		prefix := parser.Option(parser.Choices(prefixes...), identity[T])
		res = parser.Bind(prefix, func(pre func(T) T) parser.Parser[T] {
			return parser.Map(operand, pre)
		})
	}
	if len(postfixes) > 0 {
		postfix := parser.Option(parser.Choices(postfixes...), identity[T])
		inner := res
		res = parser.Bind(inner, func(a T) parser.Parser[T] {
			return parser.Map(postfix, func(post func(T) T) T {
				return post(a)
			})
		})
	}
	return res
}

func identity[T any](a T) T {
	return a
}

// link is an infix operator followed by its right operand.
type link[T any] struct {
	op      func(T, T) T
	operand T
}

func chain[T any](term parser.Parser[T], op parser.Parser[func(T, T) T]) parser.Parser[[]link[T]] {
	return parser.Some(parser.Bind(op, func(f func(T, T) T) parser.Parser[link[T]] {
		return parser.Map(term, func(b T) link[T] {
			return link[T]{f, b}
		})
	}))
}

func foldLeft[T any](first T, links []link[T]) T {
	acc := first
	for _, l := range links {
		acc = l.op(acc, l.operand)
	}
	return acc
}

func foldRight[T any](first T, links []link[T]) T {
	last := len(links) - 1
	acc := links[last].operand
	for i := last; i > 0; i-- {
		acc = links[i].op(links[i-1].operand, acc)
	}
	return links[0].op(first, acc)
}
