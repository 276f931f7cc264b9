package scanner

import (
	"strings"

	"github.com/saphyr-rs/saphyr-parser/chars"
	"github.com/saphyr-rs/saphyr-parser/token"
)

// maxNumberLength bounds a VERSION-DIRECTIVE component, matching the
// teacher's max_number_length guard against "%YAML 99999999999.0".
const maxNumberLength = 2

func (s *Scanner) fetchDirective() error {
	s.unrollIndent(-1)
	if err := s.removeSimpleKeyCandidate(); err != nil {
		return err
	}
	tok, err := s.scanDirective()
	if err != nil {
		return err
	}
	s.tokens = append(s.tokens, tok)
	return nil
}

func (s *Scanner) scanDirective() (token.Token, error) {
	start := s.mark
	s.skip() // '%'

	name, err := s.scanDirectiveName(start)
	if err != nil {
		return token.Token{}, err
	}

	var tok token.Token
	switch name {
	case "YAML":
		major, minor, err := s.scanVersionDirectiveValue(start)
		if err != nil {
			return token.Token{}, err
		}
		tok = token.Token{Kind: token.VersionDirective, Major: major, Minor: minor, StartMark: start}
	case "TAG":
		handle, prefix, err := s.scanTagDirectiveValue(start)
		if err != nil {
			return token.Token{}, err
		}
		tok = token.Token{Kind: token.TagDirective, Value: []byte(handle), Prefix: []byte(prefix), StartMark: start}
	default:
		return token.Token{}, s.newError(start, "found unknown directive name")
	}

	s.in.Lookahead(1)
	s.in.SkipWhileBlank()
	if s.in.Peek() == '#' {
		s.in.SkipWhileNonBreakz()
	}
	s.in.Lookahead(2)
	if !chars.IsBreakz(s.in.Peek()) {
		return token.Token{}, s.newError(start, "did not find expected comment or line break")
	}
	if chars.IsBreak(s.in.Peek()) {
		s.skipLine()
	}

	tok.EndMark = s.mark
	return tok, nil
}

func (s *Scanner) scanDirectiveName(start chars.Position) (string, error) {
	var b strings.Builder
	s.in.FetchWhileIsAlpha(&b)
	if b.Len() == 0 {
		return "", s.newError(start, "could not find expected directive name")
	}
	s.in.Lookahead(1)
	if !chars.IsBlankOrBreakz(s.in.Peek()) {
		return "", s.newError(start, "found unexpected non-alphabetical character")
	}
	return b.String(), nil
}

func (s *Scanner) scanVersionDirectiveValue(start chars.Position) (int8, int8, error) {
	s.in.Lookahead(1)
	s.in.SkipWhileBlank()
	major, err := s.scanVersionDirectiveNumber(start)
	if err != nil {
		return 0, 0, err
	}
	s.in.Lookahead(1)
	if s.in.Peek() != '.' {
		return 0, 0, s.newError(start, "did not find expected digit or '.' character")
	}
	s.skip()
	minor, err := s.scanVersionDirectiveNumber(start)
	if err != nil {
		return 0, 0, err
	}
	return major, minor, nil
}

func (s *Scanner) scanVersionDirectiveNumber(start chars.Position) (int8, error) {
	var value, length int8
	for {
		s.in.Lookahead(1)
		if !chars.IsDigit(s.in.Peek()) {
			break
		}
		length++
		if length > maxNumberLength {
			return 0, s.newError(start, "found extremely long version number")
		}
		value = value*10 + int8(chars.AsDigit(s.in.Peek()))
		s.skip()
	}
	if length == 0 {
		return 0, s.newError(start, "did not find expected version number")
	}
	return value, nil
}

func (s *Scanner) scanTagDirectiveValue(start chars.Position) (handle, prefix string, _ error) {
	s.in.Lookahead(1)
	s.in.SkipWhileBlank()

	handle, err := s.scanTagHandle(true, start)
	if err != nil {
		return "", "", err
	}

	s.in.Lookahead(1)
	if !chars.IsBlank(s.in.Peek()) {
		return "", "", s.newError(start, "did not find expected whitespace")
	}
	s.in.SkipWhileBlank()

	prefix, err = s.scanTagURI(true, "", start)
	if err != nil {
		return "", "", err
	}

	s.in.Lookahead(1)
	if !chars.IsBlankOrBreakz(s.in.Peek()) {
		return "", "", s.newError(start, "did not find expected whitespace or line break")
	}
	return handle, prefix, nil
}
