package input_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saphyr-rs/saphyr-parser/input"
)

func seqOf(s string) func(yield func(rune) bool) {
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

func newInputs(s string) map[string]input.Input {
	return map[string]input.Input{
		"Slice": input.NewSlice(s),
		"Ring":  input.NewRing(seqOf(s)),
	}
}

func TestPeekAndSkip(t *testing.T) {
	for name, in := range newInputs("abc") {
		t.Run(name, func(t *testing.T) {
			in.Lookahead(3)
			require.Equal(t, 3, in.Buflen())
			assert.Equal(t, 'a', in.Peek())
			assert.Equal(t, 'b', in.PeekNth(1))
			assert.Equal(t, 'c', in.PeekNth(2))
			in.Skip()
			assert.Equal(t, 'b', in.Peek())
			in.SkipN(2)
			assert.Equal(t, rune(0), in.Peek())
		})
	}
}

func TestLookaheadPastEOFReadsNul(t *testing.T) {
	for name, in := range newInputs("a") {
		t.Run(name, func(t *testing.T) {
			in.Lookahead(4)
			assert.Equal(t, 'a', in.Peek())
			assert.Equal(t, rune(0), in.PeekNth(1))
			assert.Equal(t, rune(0), in.PeekNth(3))
		})
	}
}

func TestSkipUntil(t *testing.T) {
	for name, in := range newInputs("foo: bar") {
		t.Run(name, func(t *testing.T) {
			n := in.SkipUntil(func(c rune) bool { return c == ':' })
			assert.Equal(t, 3, n)
			in.Lookahead(1)
			assert.Equal(t, ':', in.Peek())
		})
	}
}

func TestReadUntil(t *testing.T) {
	for name, in := range newInputs("hello\nworld") {
		t.Run(name, func(t *testing.T) {
			var b strings.Builder
			n := in.ReadUntil(&b, func(c rune) bool { return c == '\n' })
			assert.Equal(t, 5, n)
			assert.Equal(t, "hello", b.String())
		})
	}
}

func TestUnicodeScalars(t *testing.T) {
	for name, in := range newInputs("héllo") {
		t.Run(name, func(t *testing.T) {
			in.Lookahead(2)
			assert.Equal(t, 'h', in.Peek())
			assert.Equal(t, 'é', in.PeekNth(1))
		})
	}
}

func TestNextIsDocumentIndicators(t *testing.T) {
	for name, in := range newInputs("---\nrest") {
		t.Run(name, func(t *testing.T) {
			in.Lookahead(4)
			assert.True(t, input.NextIsDocumentStart(in))
			assert.False(t, input.NextIsDocumentEnd(in))
			assert.True(t, input.NextIsDocumentIndicator(in))
		})
	}
	for name, in := range newInputs("...\n") {
		t.Run(name+"/end", func(t *testing.T) {
			in.Lookahead(4)
			assert.True(t, input.NextIsDocumentEnd(in))
			assert.False(t, input.NextIsDocumentStart(in))
		})
	}
}

func TestNextCanBePlainScalar(t *testing.T) {
	for name, in := range newInputs("a: b") {
		t.Run(name, func(t *testing.T) {
			in.Lookahead(2)
			assert.True(t, input.NextCanBePlainScalar(in, false))
		})
	}
	for name, in := range newInputs(": ") {
		t.Run(name+"/colon-space", func(t *testing.T) {
			in.Lookahead(2)
			assert.False(t, input.NextCanBePlainScalar(in, false))
		})
	}
	for name, in := range newInputs(",x") {
		t.Run(name+"/flow-comma", func(t *testing.T) {
			in.Lookahead(2)
			assert.False(t, input.NextCanBePlainScalar(in, true))
			assert.True(t, input.NextCanBePlainScalar(in, false))
		})
	}
}

func TestSkipWhileBlankAndFetchAlpha(t *testing.T) {
	for name, in := range newInputs("   key-1!rest") {
		t.Run(name, func(t *testing.T) {
			n := in.SkipWhileBlank()
			assert.Equal(t, 3, n)
			var b strings.Builder
			m := in.FetchWhileIsAlpha(&b)
			assert.Equal(t, 5, m)
			assert.Equal(t, "key-1", b.String())
			in.Lookahead(1)
			assert.Equal(t, '!', in.Peek())
		})
	}
}

func TestRingClose(t *testing.T) {
	r := input.NewRing(seqOf("abc"))
	r.Lookahead(2)
	assert.Equal(t, 'a', r.Peek())
	r.Close()
	r.Close() // idempotent
}
