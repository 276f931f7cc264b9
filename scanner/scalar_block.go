package scanner

import (
	"strings"

	"github.com/saphyr-rs/saphyr-parser/chars"
	"github.com/saphyr-rs/saphyr-parser/token"
)

func (s *Scanner) fetchBlockScalar(style token.ScalarStyle) error {
	if err := s.removeSimpleKeyCandidate(); err != nil {
		return err
	}
	tok, err := s.scanBlockScalar(style == token.Literal)
	if err != nil {
		return err
	}
	s.tokens = append(s.tokens, tok)
	return nil
}

// scanBlockScalar ports yaml_parser_scan_block_scalar: it reads the
// chomping ('+'/'-') and explicit indentation indicators, then the
// indented body, folding line breaks for folded scalars.
func (s *Scanner) scanBlockScalar(literal bool) (token.Token, error) {
	start := s.mark
	s.skip() // '|' or '>'

	var chomping, increment int
	s.in.Lookahead(1)
	switch {
	case s.in.Peek() == '+' || s.in.Peek() == '-':
		if s.in.Peek() == '+' {
			chomping = +1
		} else {
			chomping = -1
		}
		s.skip()
		s.in.Lookahead(1)
		if chars.IsDigit(s.in.Peek()) {
			if s.in.Peek() == '0' {
				return token.Token{}, s.newError(start, "found an indentation indicator equal to 0")
			}
			increment = chars.AsDigit(s.in.Peek())
			s.skip()
		}
	case chars.IsDigit(s.in.Peek()):
		if s.in.Peek() == '0' {
			return token.Token{}, s.newError(start, "found an indentation indicator equal to 0")
		}
		increment = chars.AsDigit(s.in.Peek())
		s.skip()
		s.in.Lookahead(1)
		if s.in.Peek() == '+' || s.in.Peek() == '-' {
			if s.in.Peek() == '+' {
				chomping = +1
			} else {
				chomping = -1
			}
			s.skip()
		}
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

	end := s.mark

	indent := 0
	if increment > 0 {
		if s.indent >= 0 {
			indent = s.indent + increment
		} else {
			indent = increment
		}
	}

	var value, leadingBreak, trailingBreaks strings.Builder
	if err := s.scanBlockScalarBreaks(&indent, &trailingBreaks, &end); err != nil {
		return token.Token{}, err
	}

	s.in.Lookahead(1)
	var leadingBlank, trailingBlank bool
	for s.mark.Column == indent && !chars.IsZ(s.in.Peek()) {
		trailingBlank = chars.IsBlank(s.in.Peek())

		if !literal && !leadingBlank && !trailingBlank && strings.HasPrefix(leadingBreak.String(), "\n") {
			if trailingBreaks.Len() == 0 {
				value.WriteByte(' ')
			}
		} else {
			value.WriteString(leadingBreak.String())
		}
		leadingBreak.Reset()

		value.WriteString(trailingBreaks.String())
		trailingBreaks.Reset()

		leadingBlank = chars.IsBlank(s.in.Peek())

		for !chars.IsBreakz(s.in.Peek()) {
			value.WriteRune(s.in.Peek())
			s.skip()
			s.in.Lookahead(1)
		}

		s.in.Lookahead(2)
		leadingBreak.WriteByte('\n')
		s.skipLine()

		if err := s.scanBlockScalarBreaks(&indent, &trailingBreaks, &end); err != nil {
			return token.Token{}, err
		}
		s.in.Lookahead(1)
	}

	if chomping != -1 {
		value.WriteString(leadingBreak.String())
	}
	if chomping == 1 {
		value.WriteString(trailingBreaks.String())
	}

	style := token.Literal
	if !literal {
		style = token.Folded
	}
	return token.Token{Kind: token.Scalar, Value: []byte(value.String()), Style: style, StartMark: start, EndMark: end}, nil
}

// scanBlockScalarBreaks consumes indentation spaces and line breaks
// between block-scalar content lines, discovering the indentation level
// from the widest leading whitespace run when indent is not yet fixed
// (*indent == 0).
func (s *Scanner) scanBlockScalarBreaks(indent *int, breaks *strings.Builder, end *chars.Position) error {
	maxIndent := 0
	s.in.Lookahead(1)
	for {
		for (*indent == 0 || s.mark.Column < *indent) && s.in.Peek() == ' ' {
			s.skip()
			s.in.Lookahead(1)
		}
		if s.mark.Column > maxIndent {
			maxIndent = s.mark.Column
		}
		if (*indent == 0 || s.mark.Column < *indent) && s.in.Peek() == '\t' {
			return s.newError(*end, "found a tab character that violates indentation")
		}
		if !chars.IsBreak(s.in.Peek()) {
			break
		}
		s.in.Lookahead(2)
		breaks.WriteByte('\n')
		s.skipLine()
		s.in.Lookahead(1)
	}

	if *indent == 0 {
		*indent = maxIndent
		if *indent < s.indent+1 {
			*indent = s.indent + 1
		}
		if *indent < 1 {
			*indent = 1
		}
	}
	*end = s.mark
	return nil
}
