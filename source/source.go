// Package source defines immutable parser input.
//
// Positions are rune offsets; lines and columns are 1-based.
// A Source never changes after construction, so it may be shared between goroutines.
package source

import (
	"sort"
	"strings"
	"unicode"
)

// Source holds named input text split into runes.
type Source struct {
	name       string
	text       []rune
	lineStarts []int
}

// New creates a source with the given name and content.
func New(name, content string) *Source {
	text := []rune(content)
	s := &Source{name: name, text: text, lineStarts: []int{0}}
	for i, r := range text {
		if r == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

// Name returns source name, may be empty.
func (s *Source) Name() string {
	return s.name
}

// Len returns the number of runes in the source.
func (s *Source) Len() int {
	return len(s.text)
}

// Text returns the whole content.
func (s *Source) Text() string {
	return string(s.text)
}

// At returns the rune at pos and true, or zero rune and false if pos is out of range.
func (s *Source) At(pos int) (rune, bool) {
	if pos < 0 || pos >= len(s.text) {
		return 0, false
	}

	return s.text[pos], true
}

// AtEnd reports whether pos is at (or beyond) the end of the source.
func (s *Source) AtEnd(pos int) bool {
	return pos >= len(s.text)
}

// HasPrefix reports whether the content starting at pos begins with prefix.
func (s *Source) HasPrefix(pos int, prefix []rune) bool {
	if pos < 0 || len(s.text)-pos < len(prefix) {
		return false
	}

	for i, r := range prefix {
		if s.text[pos+i] != r {
			return false
		}
	}
	return true
}

// Slice returns content between from and to, both clamped to source bounds.
func (s *Source) Slice(from, to int) string {
	from = s.clamp(from)
	to = s.clamp(to)
	if from >= to {
		return ""
	}

	return string(s.text[from:to])
}

// Snippet returns up to max runes starting at pos.
// Truncated snippets are followed by elision mark " (...)".
func (s *Source) Snippet(pos, max int) string {
	pos = s.clamp(pos)
	rest := len(s.text) - pos
	if rest <= max {
		return string(s.text[pos:])
	}

	return string(s.text[pos:pos+max]) + ElisionMark
}

// ElisionMark is appended to truncated snippets.
const ElisionMark = " (...)"

func (s *Source) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(s.text) {
		return len(s.text)
	}
	return pos
}

// LineCol converts rune offset to line and column numbers.
// Offsets out of range are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	pos = s.clamp(pos)
	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1

	return lineIndex + 1, pos - s.lineStarts[lineIndex] + 1
}

// Location is a rune offset resolved to line and column in a named source.
type Location struct {
	name              string
	offset, line, col int
}

// Location resolves pos, which is clamped to source bounds.
func (s *Source) Location(pos int) Location {
	pos = s.clamp(pos)
	line, col := s.LineCol(pos)
	return Location{s.name, pos, line, col}
}

func (l Location) SourceName() string {
	return l.name
}

func (l Location) Offset() int {
	return l.offset
}

func (l Location) Line() int {
	return l.line
}

func (l Location) Col() int {
	return l.col
}

// Pos converts line and column numbers to rune offset.
// Returns 0 for non-positive line or column, the source length for positions past the end.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.text)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1] + col - 1
	if res > l {
		return l
	}
	return res
}

// Side tells which end(s) of the text Trim works on.
type Side int

const (
	TrimBoth Side = iota
	TrimStart
	TrimEnd
)

var sideNames = map[Side]string{
	TrimBoth:  "both",
	TrimStart: "start",
	TrimEnd:   "end",
}

func (s Side) String() string {
	name, f := sideNames[s]
	if !f {
		return "unknown"
	}
	return name
}

// ParseSide converts "start", "end", or "both" to Side.
func ParseSide(name string) (Side, bool) {
	for side, n := range sideNames {
		if n == name {
			return side, true
		}
	}
	return TrimBoth, false
}

// Trim removes runes matching pred from the given side(s) of text.
// nil pred means unicode.IsSpace.
func Trim(text string, side Side, pred func(rune) bool) string {
	if pred == nil {
		pred = unicode.IsSpace
	}

	switch side {
	case TrimStart:
		return strings.TrimLeftFunc(text, pred)
	case TrimEnd:
		return strings.TrimRightFunc(text, pred)
	default:
		return strings.TrimFunc(text, pred)
	}
}

// NormalizeNls converts "\r\n" and "\r" line breaks to "\n".
func NormalizeNls(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
