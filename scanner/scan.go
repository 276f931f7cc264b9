package scanner

import "github.com/saphyr-rs/saphyr-parser/chars"

// scanToNextToken skips whitespace, comments, and line breaks until the
// next token's first character is in view. Comments are discarded
// entirely: unlike the teacher scanner, this one does not attach them to
// surrounding tokens, since the event model the parser produces has no
// comment event to carry them on.
func (s *Scanner) scanToNextToken() error {
	for {
		s.in.Lookahead(1)
		for s.in.Peek() == ' ' || (s.flowLevel > 0 && s.in.Peek() == '\t') {
			s.skip()
			s.in.Lookahead(1)
		}

		if s.in.Peek() == '#' {
			s.in.SkipWhileNonBreakz()
		}

		s.in.Lookahead(2)
		if chars.IsBreak(s.in.Peek()) {
			s.skipLine()
			continue
		}
		return nil
	}
}
