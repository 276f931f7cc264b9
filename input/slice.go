package input

import (
	"strings"
	"unicode/utf8"

	"github.com/saphyr-rs/saphyr-parser/chars"
)

// sliceBufmaxlen is the declared lookahead cap returned by Slice.Bufmaxlen.
// It does not correspond to any allocated buffer size: Slice serves
// characters directly out of its remaining string. The value exists so the
// scanner can batch single-line work without special-casing this
// implementation, following saphyr-parser's StrInput::BUFFER_LEN.
const sliceBufmaxlen = 128

// Slice is an Input backed by a contiguous, already-decoded string.
// Characters are served straight from the backing string with no
// intermediate buffer; ReadUntil and FetchWhileIsAlpha write the matched
// substring into the caller's builder in one call (which copies it).
type Slice struct {
	buf       string
	lookahead int
}

// NewSlice creates a Slice reading from s.
func NewSlice(s string) *Slice {
	return &Slice{buf: s}
}

func (s *Slice) Lookahead(count int) {
	if count > s.lookahead {
		s.lookahead = count
	}
}

func (s *Slice) Buflen() int { return s.lookahead }

func (s *Slice) Bufmaxlen() int { return sliceBufmaxlen }

func (s *Slice) Peek() rune {
	if s.buf == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.buf)
	return r
}

func (s *Slice) PeekNth(n int) rune {
	rest := s.buf
	for i := 0; i < n; i++ {
		if rest == "" {
			return 0
		}
		_, w := utf8.DecodeRuneInString(rest)
		rest = rest[w:]
	}
	if rest == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return r
}

func (s *Slice) Skip() {
	if s.buf == "" {
		return
	}
	_, w := utf8.DecodeRuneInString(s.buf)
	s.buf = s.buf[w:]
}

func (s *Slice) SkipN(count int) {
	for i := 0; i < count && s.buf != ""; i++ {
		_, w := utf8.DecodeRuneInString(s.buf)
		s.buf = s.buf[w:]
	}
}

func (s *Slice) SkipUntil(f func(rune) bool) int {
	count := 0
	rest := s.buf
	for rest != "" {
		r, w := utf8.DecodeRuneInString(rest)
		if f(r) {
			break
		}
		rest = rest[w:]
		count++
	}
	s.buf = rest
	return count
}

func (s *Slice) SkipASCIIUntil(f func(rune) bool) int {
	b := s.buf
	i := 0
	for i < len(b) {
		c := b[i]
		if f(rune(c)) {
			break
		}
		i++
	}
	s.buf = b[i:]
	return i
}

func (s *Slice) ReadUntil(out *strings.Builder, f func(rune) bool) int {
	count := 0
	rest := s.buf
	for rest != "" {
		r, w := utf8.DecodeRuneInString(rest)
		if f(r) {
			break
		}
		rest = rest[w:]
		count++
	}
	out.WriteString(s.buf[:len(s.buf)-len(rest)])
	s.buf = rest
	return count
}

func (s *Slice) SkipWhileNonBreakz() int {
	count := 0
	rest := s.buf
	for rest != "" {
		r, w := utf8.DecodeRuneInString(rest)
		if chars.IsBreakz(r) {
			break
		}
		rest = rest[w:]
		count++
	}
	s.buf = rest
	return count
}

func (s *Slice) SkipWhileBlank() int {
	b := s.buf
	i := 0
	for i < len(b) && chars.IsBlank(rune(b[i])) {
		i++
	}
	s.buf = b[i:]
	return i
}

func (s *Slice) FetchWhileIsAlpha(out *strings.Builder) int {
	rest := s.buf
	for rest != "" {
		r, w := utf8.DecodeRuneInString(rest)
		if !chars.IsAlpha(r) {
			break
		}
		rest = rest[w:]
	}
	n := len(s.buf) - len(rest)
	out.WriteString(s.buf[:n])
	s.buf = rest
	return n
}
