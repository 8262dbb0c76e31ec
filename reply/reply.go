// Package reply defines the outcome of a single parser run.
//
// A reply is either a success or a failure, and either consumed input or not.
// The four combinations are:
//
//	OkReply       success, input consumed
//	EpsilonReply  success, nothing consumed
//	FailReply     failure, nothing consumed; alternatives may be tried
//	ErrorReply    failure after consuming input; no backtracking past it
package reply

import "fmt"

// Kind tells which of the four outcomes a Reply holds.
type Kind int

const (
	OkReply Kind = iota
	EpsilonReply
	FailReply
	ErrorReply
)

var kindNames = [...]string{"ok", "epsilon", "fail", "error"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Reply is the result of running a parser at some position.
//
// Value is meaningful for successes only, failures carry the zero value.
// Pos is the position after a success, the unchanged position after FailReply,
// and the reported position of ErrorReply.
// Message is optional and usually set by failures only.
type Reply[T any] struct {
	Kind    Kind
	Value   T
	Pos     int
	Message string
}

func Ok[T any](value T, pos int) Reply[T] {
	return Reply[T]{Kind: OkReply, Value: value, Pos: pos}
}

func Epsilon[T any](value T, pos int) Reply[T] {
	return Reply[T]{Kind: EpsilonReply, Value: value, Pos: pos}
}

func Fail[T any](pos int, message string) Reply[T] {
	return Reply[T]{Kind: FailReply, Pos: pos, Message: message}
}

func Error[T any](pos int, message string) Reply[T] {
	return Reply[T]{Kind: ErrorReply, Pos: pos, Message: message}
}

// Cast converts a failure reply to another value type.
// Panics if r is a success, since its value cannot be converted.
func Cast[U, T any](r Reply[T]) Reply[U] {
	if r.IsSuccess() {
		panic("reply.Cast: cannot cast successful " + r.Kind.String() + " reply")
	}
	return Reply[U]{Kind: r.Kind, Pos: r.Pos, Message: r.Message}
}

// IsEmpty reports whether no input was consumed.
func (r Reply[T]) IsEmpty() bool {
	return r.Kind == EpsilonReply || r.Kind == FailReply
}

// IsConsumed reports whether some input was consumed.
func (r Reply[T]) IsConsumed() bool {
	return r.Kind == OkReply || r.Kind == ErrorReply
}

func (r Reply[T]) IsSuccess() bool {
	return r.Kind == OkReply || r.Kind == EpsilonReply
}

func (r Reply[T]) IsFailure() bool {
	return r.Kind == FailReply || r.Kind == ErrorReply
}

func (r Reply[T]) IsError() bool {
	return r.Kind == ErrorReply
}

func (r Reply[T]) String() string {
	if r.IsSuccess() {
		return fmt.Sprintf("%s(%v) at %d", r.Kind, r.Value, r.Pos)
	}
	if r.Message == "" {
		return fmt.Sprintf("%s at %d", r.Kind, r.Pos)
	}
	return fmt.Sprintf("%s at %d: %s", r.Kind, r.Pos, r.Message)
}
