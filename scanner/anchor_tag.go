package scanner

import (
	"strings"

	"github.com/saphyr-rs/saphyr-parser/chars"
	"github.com/saphyr-rs/saphyr-parser/token"
)

func (s *Scanner) fetchAnchor(kind token.Kind) error {
	if err := s.stageSimpleKey(); err != nil {
		return err
	}
	tok, err := s.scanAnchor(kind)
	if err != nil {
		return err
	}
	s.tokens = append(s.tokens, tok)
	return nil
}

func (s *Scanner) scanAnchor(kind token.Kind) (token.Token, error) {
	start := s.mark
	s.skip() // '*' or '&'

	var b strings.Builder
	s.in.FetchWhileIsAlpha(&b)

	s.in.Lookahead(1)
	c := s.in.Peek()
	valid := chars.IsBlankOrBreakz(c) || c == '?' || c == ':' || c == ',' ||
		c == ']' || c == '}' || c == '%' || c == '@' || c == '`'
	if b.Len() == 0 || !valid {
		return token.Token{}, s.newError(start, "did not find expected alphabetic or numeric character")
	}
	return token.Token{Kind: kind, Value: []byte(b.String()), StartMark: start, EndMark: s.mark}, nil
}

func (s *Scanner) fetchTag() error {
	if err := s.stageSimpleKey(); err != nil {
		return err
	}
	tok, err := s.scanTag()
	if err != nil {
		return err
	}
	s.tokens = append(s.tokens, tok)
	return nil
}

func (s *Scanner) scanTag() (token.Token, error) {
	start := s.mark
	var handle, suffix string

	s.in.Lookahead(2)
	if s.in.PeekNth(1) == '<' {
		s.skip()
		s.skip()
		var err error
		suffix, err = s.scanTagURI(false, "", start)
		if err != nil {
			return token.Token{}, err
		}
		s.in.Lookahead(1)
		if s.in.Peek() != '>' {
			return token.Token{}, s.newError(start, "did not find the expected '>'")
		}
		s.skip()
	} else {
		var err error
		handle, err = s.scanTagHandle(false, start)
		if err != nil {
			return token.Token{}, err
		}
		if len(handle) > 1 && handle[0] == '!' && handle[len(handle)-1] == '!' {
			suffix, err = s.scanTagURI(false, "", start)
			if err != nil {
				return token.Token{}, err
			}
		} else {
			suffix, err = s.scanTagURI(false, handle, start)
			if err != nil {
				return token.Token{}, err
			}
			handle = "!"
			if suffix == "" {
				handle, suffix = suffix, handle
			}
		}
	}

	s.in.Lookahead(1)
	if !chars.IsBlankOrBreakz(s.in.Peek()) {
		return token.Token{}, s.newError(start, "did not find expected whitespace or line break")
	}
	return token.Token{Kind: token.Tag, Value: []byte(handle), Suffix: []byte(suffix), StartMark: start, EndMark: s.mark}, nil
}

func (s *Scanner) scanTagHandle(directive bool, start chars.Position) (string, error) {
	s.in.Lookahead(1)
	if s.in.Peek() != '!' {
		return "", s.newError(start, "did not find expected '!'")
	}
	var b strings.Builder
	b.WriteRune('!')
	s.skip()

	var alpha strings.Builder
	s.in.FetchWhileIsAlpha(&alpha)
	b.WriteString(alpha.String())

	s.in.Lookahead(1)
	if s.in.Peek() == '!' {
		b.WriteRune('!')
		s.skip()
	} else if directive && b.String() != "!" {
		return "", s.newError(start, "did not find expected '!'")
	}
	return b.String(), nil
}

// isTagURIChar reports whether c may appear in a tag URI, per the
// character class the teacher scanner enumerates
// (_examples/WillAbides-yaml/internal/parserc/scannerc.go,
// yaml_parser_scan_tag_uri). URI '%' escapes are accepted verbatim
// rather than decoded: the spec's Scalar event carries the tag text
// uninterpreted.
func isTagURIChar(c rune) bool {
	if chars.IsAlpha(c) {
		return true
	}
	switch c {
	case ';', '/', '?', ':', '@', '&', '=', '+', '$', ',', '.', '!', '~',
		'*', '\'', '(', ')', '[', ']', '%':
		return true
	}
	return false
}

func (s *Scanner) scanTagURI(directive bool, head string, start chars.Position) (string, error) {
	var b strings.Builder
	hasTag := head != ""
	if len(head) > 1 {
		b.WriteString(head[1:])
	}

	for {
		s.in.Lookahead(1)
		c := s.in.Peek()
		if !isTagURIChar(c) {
			break
		}
		b.WriteRune(c)
		s.skip()
		hasTag = true
	}

	if !hasTag {
		return "", s.newError(start, "did not find expected tag URI")
	}
	return b.String(), nil
}
