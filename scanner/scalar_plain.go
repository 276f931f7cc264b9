package scanner

import (
	"strings"

	"github.com/saphyr-rs/saphyr-parser/chars"
	"github.com/saphyr-rs/saphyr-parser/input"
	"github.com/saphyr-rs/saphyr-parser/token"
)

func (s *Scanner) fetchPlainScalar() error {
	if err := s.stageSimpleKey(); err != nil {
		return err
	}
	tok, err := s.scanPlainScalar()
	if err != nil {
		return err
	}
	s.tokens = append(s.tokens, tok)
	return nil
}

// scanPlainScalar ports yaml_parser_scan_plain_scalar, folding run lengths
// of blanks and breaks the same way: a single line break between content
// folds to a space, more than one preserves n-1 breaks verbatim.
func (s *Scanner) scanPlainScalar() (token.Token, error) {
	indent := s.indent + 1
	start := s.mark
	end := s.mark

	var value strings.Builder
	var leadingBreak, trailingBreaks, whitespace strings.Builder
	leadingBlanks := false

	for {
		s.in.Lookahead(4)
		if s.mark.Column == 0 && input.NextIsDocumentIndicator(s.in) {
			break
		}
		if s.in.Peek() == '#' {
			break
		}

		for {
			s.in.Lookahead(2)
			if chars.IsBlankOrBreakz(s.in.Peek()) {
				break
			}
			if (s.in.Peek() == ':' && chars.IsBlankOrBreakz(s.in.PeekNth(1))) ||
				(s.flowLevel > 0 && strings.ContainsRune(",?[]{}", s.in.Peek())) {
				break
			}

			if leadingBlanks || whitespace.Len() > 0 {
				if leadingBlanks {
					lb := leadingBreak.String()
					if lb == "\n" {
						if trailingBreaks.Len() == 0 {
							value.WriteByte(' ')
						} else {
							value.WriteString(trailingBreaks.String())
						}
					} else {
						value.WriteString(lb)
						value.WriteString(trailingBreaks.String())
					}
					trailingBreaks.Reset()
					leadingBreak.Reset()
					leadingBlanks = false
				} else {
					value.WriteString(whitespace.String())
					whitespace.Reset()
				}
			}

			value.WriteRune(s.in.Peek())
			s.skip()
			end = s.mark
			s.in.Lookahead(2)
		}

		if !(chars.IsBlank(s.in.Peek()) || chars.IsBreak(s.in.Peek())) {
			break
		}

		s.in.Lookahead(1)
		for chars.IsBlank(s.in.Peek()) || chars.IsBreak(s.in.Peek()) {
			if chars.IsBlank(s.in.Peek()) {
				if leadingBlanks && s.mark.Column < indent && s.in.Peek() == '\t' {
					return token.Token{}, s.newError(start, "found a tab character that violates indentation")
				}
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

		if s.flowLevel == 0 && s.mark.Column < indent {
			break
		}
	}

	if leadingBlanks {
		// A following line may still start a simple key; nothing else to
		// do since this scanner does not track simple_key_allowed
		// independently of indent/column.
	}

	return token.Token{Kind: token.Scalar, Value: []byte(value.String()), Style: token.Plain, StartMark: start, EndMark: end}, nil
}
