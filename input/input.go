// Package input implements the character-input abstraction layer the
// scanner is built on: a pull-based source of Unicode scalars with bounded
// lookahead.
//
// Two implementations are provided, following saphyr-parser's
// src/input/str.rs and src/input/buffered.rs (_examples/original_source):
// Slice, backed by a contiguous string with zero-copy reads, and Ring,
// backed by an arbitrary rune iterator through a fixed-size ring buffer.
package input

import (
	"strings"

	"github.com/saphyr-rs/saphyr-parser/chars"
)

// Input is a pull-based source of Unicode scalars. Implementations never
// fail: past the end of the stream, every read returns NUL ('\0').
//
// Callers must call Lookahead(n) before Peek/PeekNth(n-1) may be used; this
// mirrors saphyr-parser's Input trait precondition.
type Input interface {
	// Lookahead guarantees positions 0..count of the buffer are fetchable.
	// Implementations must not load more than count characters.
	Lookahead(count int)

	// Buflen returns the number of characters currently buffered.
	Buflen() int

	// Bufmaxlen returns the maximum count Lookahead may be called with.
	Bufmaxlen() int

	// Peek returns the next character without consuming it.
	Peek() rune

	// PeekNth returns the n-th buffered character without consuming it.
	PeekNth(n int) rune

	// Skip consumes the next character.
	Skip()

	// SkipN consumes the next count characters.
	SkipN(count int)

	// SkipUntil skips characters until f returns true or the stream ends.
	// The character that satisfied f is left unread. Returns the count of
	// skipped characters.
	SkipUntil(f func(rune) bool) int

	// SkipASCIIUntil is like SkipUntil, but f must return true for any
	// non-ASCII character; implementations may use a byte-level fast path.
	SkipASCIIUntil(f func(rune) bool) int

	// ReadUntil reads characters into out until f returns true or the
	// stream ends. The character that satisfied f is left unread. Returns
	// the count of characters read.
	ReadUntil(out *strings.Builder, f func(rune) bool) int

	// SkipWhileNonBreakz skips characters until a break or NUL is found,
	// leaving it unread. Returns the count of skipped characters.
	SkipWhileNonBreakz() int

	// SkipWhileBlank skips blank (space/tab) characters. Returns the count
	// of skipped characters.
	SkipWhileBlank() int

	// FetchWhileIsAlpha reads URI-safe characters (chars.IsAlpha) into out.
	// Returns the count of characters read.
	FetchWhileIsAlpha(out *strings.Builder) int
}

// BufIsEmpty reports whether in's buffer (not the whole stream) is empty.
func BufIsEmpty(in Input) bool {
	return in.Buflen() == 0
}

// LookCh is equivalent to calling Lookahead(1) followed by Peek.
func LookCh(in Input) rune {
	in.Lookahead(1)
	return in.Peek()
}

// NextCharIs reports whether the next character equals c.
func NextCharIs(in Input, c rune) bool {
	return in.Peek() == c
}

// NthCharIs reports whether the n-th character equals c.
func NthCharIs(in Input, n int, c rune) bool {
	return in.PeekNth(n) == c
}

// Next2Are reports whether the next two characters match c1, c2.
func Next2Are(in Input, c1, c2 rune) bool {
	return in.Peek() == c1 && in.PeekNth(1) == c2
}

// Next3Are reports whether the next three characters match c1, c2, c3.
func Next3Are(in Input, c1, c2, c3 rune) bool {
	return in.Peek() == c1 && in.PeekNth(1) == c2 && in.PeekNth(2) == c3
}

// NextIsDocumentIndicator reports whether the upcoming characters form a
// document-start ("---") or document-end ("...") indicator. Requires a
// prior Lookahead(4).
func NextIsDocumentIndicator(in Input) bool {
	return chars.IsBlankOrBreakz(in.PeekNth(3)) &&
		(Next3Are(in, '.', '.', '.') || Next3Are(in, '-', '-', '-'))
}

// NextIsDocumentStart reports whether the upcoming characters are "---"
// followed by blank/breakz. Requires a prior Lookahead(4).
func NextIsDocumentStart(in Input) bool {
	return Next3Are(in, '-', '-', '-') && chars.IsBlankOrBreakz(in.PeekNth(3))
}

// NextIsDocumentEnd reports whether the upcoming characters are "..."
// followed by blank/breakz. Requires a prior Lookahead(4).
func NextIsDocumentEnd(in Input) bool {
	return Next3Are(in, '.', '.', '.') && chars.IsBlankOrBreakz(in.PeekNth(3))
}

// NextCanBePlainScalar reports whether the upcoming characters may
// continue a plain scalar. Assumes the current character is not blank/breakz.
func NextCanBePlainScalar(in Input, inFlow bool) bool {
	nc := in.PeekNth(1)
	switch c := in.Peek(); {
	case c == ':' && (chars.IsBlankOrBreakz(nc) || (inFlow && chars.IsFlow(nc))):
		return false
	case inFlow && chars.IsFlow(c):
		return false
	default:
		return true
	}
}

// NextIsBlankOrBreak reports whether the next character is blank or a break.
func NextIsBlankOrBreak(in Input) bool {
	c := in.Peek()
	return chars.IsBlank(c) || chars.IsBreak(c)
}

// NextIsBlankOrBreakz reports whether the next character is blank, a break,
// or NUL.
func NextIsBlankOrBreakz(in Input) bool {
	return chars.IsBlankOrBreakz(in.Peek())
}

// NextIsBlank reports whether the next character is blank.
func NextIsBlank(in Input) bool {
	return chars.IsBlank(in.Peek())
}

// NextIsBreak reports whether the next character is a line break.
func NextIsBreak(in Input) bool {
	return chars.IsBreak(in.Peek())
}

// NextIsBreakz reports whether the next character is a line break or NUL.
func NextIsBreakz(in Input) bool {
	return chars.IsBreakz(in.Peek())
}

// NextIsZ reports whether the next character signals end of stream.
func NextIsZ(in Input) bool {
	return chars.IsZ(in.Peek())
}

// NextIsFlow reports whether the next character is a flow indicator.
func NextIsFlow(in Input) bool {
	return chars.IsFlow(in.Peek())
}

// NextIsDigit reports whether the next character is an ASCII digit.
func NextIsDigit(in Input) bool {
	return chars.IsDigit(in.Peek())
}

// NextIsAlpha reports whether the next character is URI-safe.
func NextIsAlpha(in Input) bool {
	return chars.IsAlpha(in.Peek())
}
