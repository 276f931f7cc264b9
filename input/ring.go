package input

import (
	"iter"
	"strings"

	"github.com/saphyr-rs/saphyr-parser/chars"
)

// ringBufferLen is the capacity of Ring's internal buffer.
//
// The buffer is statically sized to avoid reallocation on every
// consume/push. Almost all lookaheads are 4 characters at most, except
// escape-sequence parsing (up to 8) and block-scalar indent detection
// (which grows linearly and falls back to a lookahead loop beyond this
// size). This must stay at least 8; see saphyr-parser's BufferedInput
// (_examples/original_source/src/input/buffered.rs).
const ringBufferLen = 16

// Ring is an Input backed by an arbitrary rune source, buffered through a
// fixed-size ring. Use it to scan from a reader, channel, or any other
// source that does not already hold its characters in one contiguous
// string (use Slice for that case instead).
type Ring struct {
	next      func() (rune, bool)
	stop      func()
	buf       [ringBufferLen]rune
	head, len int
	exhausted bool
}

// NewRing creates a Ring pulling runes from seq.
func NewRing(seq iter.Seq[rune]) *Ring {
	next, stop := iter.Pull(seq)
	return &Ring{next: next, stop: stop}
}

// Close releases the underlying iterator. Safe to call multiple times.
func (r *Ring) Close() {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
}

func (r *Ring) at(i int) rune {
	return r.buf[(r.head+i)%ringBufferLen]
}

func (r *Ring) pull() rune {
	if r.exhausted {
		return 0
	}
	c, ok := r.next()
	if !ok {
		r.exhausted = true
		return 0
	}
	return c
}

func (r *Ring) Lookahead(count int) {
	if count > ringBufferLen {
		count = ringBufferLen
	}
	for r.len < count {
		r.buf[(r.head+r.len)%ringBufferLen] = r.pull()
		r.len++
	}
}

func (r *Ring) Buflen() int { return r.len }

func (r *Ring) Bufmaxlen() int { return ringBufferLen }

func (r *Ring) Peek() rune {
	if r.len == 0 {
		return 0
	}
	return r.at(0)
}

func (r *Ring) PeekNth(n int) rune {
	if n >= r.len {
		return 0
	}
	return r.at(n)
}

func (r *Ring) Skip() {
	if r.len == 0 {
		return
	}
	r.head = (r.head + 1) % ringBufferLen
	r.len--
}

func (r *Ring) SkipN(count int) {
	for i := 0; i < count; i++ {
		r.Skip()
	}
}

func (r *Ring) SkipUntil(f func(rune) bool) int {
	count := 0
	for {
		if r.len == 0 {
			r.Lookahead(1)
			if r.len == 0 {
				return count
			}
		}
		if f(r.at(0)) {
			return count
		}
		r.Skip()
		count++
	}
}

func (r *Ring) SkipASCIIUntil(f func(rune) bool) int {
	return r.SkipUntil(f)
}

func (r *Ring) ReadUntil(out *strings.Builder, f func(rune) bool) int {
	count := 0
	for {
		if r.len == 0 {
			r.Lookahead(1)
			if r.len == 0 {
				return count
			}
		}
		c := r.at(0)
		if f(c) {
			return count
		}
		out.WriteRune(c)
		r.Skip()
		count++
	}
}

func (r *Ring) SkipWhileNonBreakz() int {
	return r.SkipUntil(chars.IsBreakz)
}

func (r *Ring) SkipWhileBlank() int {
	return r.SkipUntil(func(c rune) bool { return !chars.IsBlank(c) })
}

func (r *Ring) FetchWhileIsAlpha(out *strings.Builder) int {
	return r.ReadUntil(out, func(c rune) bool { return !chars.IsAlpha(c) })
}
