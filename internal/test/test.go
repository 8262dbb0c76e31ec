package test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/ava12/parsec/reply"
)

func fatalf(t *testing.T, message string, params ...any) {
	t.Helper()
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	_, thisFile, _, _ := runtime.Caller(0)
	file := thisFile
	line := 0
	for i := 2; file == thisFile; i++ {
		_, file, line, _ = runtime.Caller(i)
	}
	t.Fatalf("%s at %s:%d", message, file, line)
}

func Assert(t *testing.T, cond bool, message string, params ...any) {
	t.Helper()
	if !cond {
		fatalf(t, message, params...)
	}
}

func Expect(t *testing.T, cond bool, expected, got any) {
	t.Helper()
	if !cond {
		fatalf(t, "expecting %v, got %v", expected, got)
	}
}

func ExpectBool(t *testing.T, expected, got bool) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectInt(t *testing.T, expected, got int) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectString(t *testing.T, expected, got string) {
	t.Helper()
	if expected != got {
		fatalf(t, "expecting %q, got %q", expected, got)
	}
}

// ExpectKind checks reply kind and position.
func ExpectKind[T any](t *testing.T, kind reply.Kind, pos int, got reply.Reply[T]) {
	t.Helper()
	if got.Kind != kind || got.Pos != pos {
		fatalf(t, "expecting %s at %d, got %s", kind, pos, got)
	}
}

// ExpectReply checks reply kind, position, and value.
func ExpectReply[T comparable](t *testing.T, kind reply.Kind, value T, pos int, got reply.Reply[T]) {
	t.Helper()
	if got.Kind != kind || got.Pos != pos || got.Value != value {
		fatalf(t, "expecting %s(%v) at %d, got %s", kind, value, pos, got)
	}
}
