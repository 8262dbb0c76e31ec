package parser

import (
	"fmt"

	"github.com/ava12/parsec/source"
)

// SnippetSize is the maximum number of runes of unconsumed input quoted in messages.
const SnippetSize = 30

func unexpectedMessage(src *source.Source, pos int) string {
	r, f := src.At(pos)
	if !f {
		return "unexpected end of input"
	}
	return fmt.Sprintf("unexpected %q", r)
}

func expectedMessage(what string) string {
	return "expected " + what
}

func endOfInputMessage(src *source.Source, pos int) string {
	return "expected end of input, got: " + src.Snippet(pos, SnippetSize)
}
