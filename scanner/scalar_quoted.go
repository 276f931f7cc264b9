package scanner

import (
	"strings"

	"github.com/saphyr-rs/saphyr-parser/chars"
	"github.com/saphyr-rs/saphyr-parser/input"
	"github.com/saphyr-rs/saphyr-parser/token"
)

func (s *Scanner) fetchFlowScalar(style token.ScalarStyle) error {
	if err := s.stageSimpleKey(); err != nil {
		return err
	}
	tok, err := s.scanFlowScalar(style == token.SingleQuoted)
	if err != nil {
		return err
	}
	s.tokens = append(s.tokens, tok)
	return nil
}

// scanFlowScalar ports yaml_parser_scan_flow_scalar, including its escape
// table for double-quoted scalars (\0 \a \b \t \n \v \f \r \e \" \' \\ \/,
// \N \_ \L \P, and the \x \u \U hex forms).
func (s *Scanner) scanFlowScalar(single bool) (token.Token, error) {
	start := s.mark
	s.skip() // opening quote

	var value strings.Builder
	var leadingBreak, trailingBreaks, whitespace strings.Builder

	for {
		s.in.Lookahead(4)
		if s.mark.Column == 0 && input.NextIsDocumentIndicator(s.in) {
			return token.Token{}, s.newError(start, "found unexpected document indicator")
		}
		if input.NextIsZ(s.in) {
			return token.Token{}, s.newError(start, "found unexpected end of stream")
		}

		leadingBlanks := false
		for {
			s.in.Lookahead(2)
			if chars.IsBlankOrBreakz(s.in.Peek()) {
				break
			}
			switch {
			case single && s.in.Peek() == '\'' && s.in.PeekNth(1) == '\'':
				value.WriteByte('\'')
				s.skip()
				s.skip()
			case single && s.in.Peek() == '\'':
				goto endNonBlank
			case !single && s.in.Peek() == '"':
				goto endNonBlank
			case !single && s.in.Peek() == '\\' && chars.IsBreak(s.in.PeekNth(1)):
				s.skip()
				s.skipLine()
				leadingBlanks = true
				goto endNonBlank
			case !single && s.in.Peek() == '\\':
				if err := s.scanEscape(&value, start); err != nil {
					return token.Token{}, err
				}
			default:
				value.WriteRune(s.in.Peek())
				s.skip()
			}
		}
	endNonBlank:

		s.in.Lookahead(1)
		if single && s.in.Peek() == '\'' {
			break
		}
		if !single && s.in.Peek() == '"' {
			break
		}

		for chars.IsBlank(s.in.Peek()) || chars.IsBreak(s.in.Peek()) {
			if chars.IsBlank(s.in.Peek()) {
				if !leadingBlanks {
					whitespace.WriteRune(s.in.Peek())
					s.skip()
				} else {
					s.skip()
				}
			} else {
				s.in.Lookahead(2)
				if !leadingBlanks {
					whitespace.Reset()
					leadingBreak.Reset()
					leadingBreak.WriteByte('\n')
					s.skipLine()
					leadingBlanks = true
				} else {
					trailingBreaks.WriteByte('\n')
					s.skipLine()
				}
			}
			s.in.Lookahead(1)
		}

		if leadingBlanks {
			if strings.HasPrefix(leadingBreak.String(), "\n") {
				if trailingBreaks.Len() == 0 {
					value.WriteByte(' ')
				} else {
					value.WriteString(trailingBreaks.String())
				}
			} else {
				value.WriteString(leadingBreak.String())
				value.WriteString(trailingBreaks.String())
			}
			trailingBreaks.Reset()
			leadingBreak.Reset()
		} else {
			value.WriteString(whitespace.String())
			whitespace.Reset()
		}
	}

	s.skip() // closing quote
	end := s.mark

	style := token.SingleQuoted
	if !single {
		style = token.DoubleQuoted
	}
	return token.Token{Kind: token.Scalar, Value: []byte(value.String()), Style: style, StartMark: start, EndMark: end}, nil
}

func (s *Scanner) scanEscape(out *strings.Builder, start chars.Position) error {
	s.in.Lookahead(2)
	codeLength := 0
	switch s.in.PeekNth(1) {
	case '0':
		out.WriteByte(0)
	case 'a':
		out.WriteByte('\a')
	case 'b':
		out.WriteByte('\b')
	case 't', '\t':
		out.WriteByte('\t')
	case 'n':
		out.WriteByte('\n')
	case 'v':
		out.WriteByte('\v')
	case 'f':
		out.WriteByte('\f')
	case 'r':
		out.WriteByte('\r')
	case 'e':
		out.WriteByte(0x1B)
	case ' ':
		out.WriteByte(' ')
	case '"':
		out.WriteByte('"')
	case '\'':
		out.WriteByte('\'')
	case '\\':
		out.WriteByte('\\')
	case '/':
		out.WriteByte('/')
	case 'N':
		out.WriteRune(0x85)
	case '_':
		out.WriteRune(0xA0)
	case 'L':
		out.WriteRune(0x2028)
	case 'P':
		out.WriteRune(0x2029)
	case 'x':
		codeLength = 2
	case 'u':
		codeLength = 4
	case 'U':
		codeLength = 8
	default:
		return s.newError(start, "found unknown escape character")
	}

	s.skip()
	s.skip()

	if codeLength > 0 {
		s.in.Lookahead(codeLength)
		value := 0
		for k := 0; k < codeLength; k++ {
			c := s.in.PeekNth(k)
			if !chars.IsHex(c) {
				return s.newError(start, "did not find expected hexadecimal number")
			}
			value = (value << 4) + chars.AsHex(c)
		}
		if (value >= 0xD800 && value <= 0xDFFF) || value > 0x10FFFF {
			return s.newError(start, "found invalid Unicode character escape code")
		}
		out.WriteRune(rune(value))
		s.in.SkipN(codeLength)
	}
	return nil
}
