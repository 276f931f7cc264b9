package scanner

import "github.com/saphyr-rs/saphyr-parser/token"

func (s *Scanner) fetchDocumentIndicator(kind token.Kind) error {
	s.unrollIndent(-1)
	if err := s.removeSimpleKeyCandidate(); err != nil {
		return err
	}
	start := s.mark
	s.skip()
	s.skip()
	s.skip()
	s.tokens = append(s.tokens, token.Token{Kind: kind, StartMark: start, EndMark: s.mark})
	return nil
}
