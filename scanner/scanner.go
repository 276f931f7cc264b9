// Package scanner turns a character Input into a stream of Tokens,
// following the libyaml scanning algorithm ported in
// _examples/WillAbides-yaml/internal/parserc/scannerc.go, generalized to
// run over the input.Input abstraction instead of a byte buffer.
package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/saphyr-rs/saphyr-parser/chars"
	"github.com/saphyr-rs/saphyr-parser/input"
	"github.com/saphyr-rs/saphyr-parser/token"
)

// maxFlowLevel and maxIndents bound recursion the way the teacher's
// max_flow_level/max_indents constants do, guarding against pathological
// or adversarial input.
const (
	maxFlowLevel = 10000
	maxIndents   = 10000

	// maxSimpleKeyLength caps how far a simple key candidate may be from
	// the current position before it is no longer a candidate, matching
	// libyaml's 1024-character window.
	maxSimpleKeyLength = 1024
)

// simpleKey is a candidate position for a mapping key that has not yet
// been confirmed by a following ':'.
type simpleKey struct {
	possible    bool
	required    bool
	tokenNumber int
	mark        chars.Position
}

// Scanner produces Tokens lazily from an Input. It owns all position
// tracking; Input itself is a bare character source.
type Scanner struct {
	in input.Input

	mark chars.Position

	indent  int
	indents []int

	flowLevel int

	simpleKeys      []simpleKey
	simpleKeysByTok map[int]int

	tokens     []token.Token
	tokensHead int

	tokensParsed int
	tokenAvailable bool

	streamStartProduced bool
	streamEndProduced   bool

	// err is the first error encountered; once set, Token and Peek keep
	// returning it.
	err error
}

// New creates a Scanner reading from in. The caller chooses the Input
// implementation (input.NewSlice for a string already in memory,
// input.NewRing for an arbitrary rune source).
func New(in input.Input) *Scanner {
	s := &Scanner{
		in:              in,
		indent:          -1,
		simpleKeysByTok: map[int]int{},
	}
	s.simpleKeys = append(s.simpleKeys, simpleKey{})
	return s
}

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error { return s.err }

// Token returns the next token from the stream, consuming it. Once an
// error has occurred, or the StreamEnd token has been returned, Token
// keeps returning (zero Token, err)/(zero Token, nil) respectively.
func (s *Scanner) Token() (token.Token, error) {
	if s.err != nil {
		return token.Token{}, s.err
	}
	if s.streamEndProduced && s.tokensHead == len(s.tokens) {
		return token.Token{}, nil
	}
	if !s.tokenAvailable {
		if err := s.fetchMoreTokens(); err != nil {
			s.err = err
			return token.Token{}, err
		}
	}
	tok := s.tokens[s.tokensHead]
	s.tokensHead++
	s.tokensParsed++
	s.tokenAvailable = false
	return tok, nil
}

// Peek returns the next token without consuming it.
func (s *Scanner) Peek() (token.Token, error) {
	if s.err != nil {
		return token.Token{}, s.err
	}
	if !s.tokenAvailable {
		if err := s.fetchMoreTokens(); err != nil {
			s.err = err
			return token.Token{}, err
		}
	}
	return s.tokens[s.tokensHead], nil
}

func (s *Scanner) newError(mark chars.Position, format string, args ...interface{}) error {
	return &Error{Mark: mark, Msg: fmt.Sprintf(format, args...)}
}

// --- position tracking -----------------------------------------------

// skip consumes one non-break character, advancing the column.
func (s *Scanner) skip() {
	s.in.Lookahead(1)
	w := runeWidth(s.in.Peek())
	s.mark.Advance(w)
	s.in.Skip()
}

// skipLine consumes a full line break (CR, LF, or CRLF), advancing the
// line counter and resetting the column.
func (s *Scanner) skipLine() {
	s.in.Lookahead(2)
	if s.in.Peek() == '\r' && s.in.PeekNth(1) == '\n' {
		s.mark.AdvanceLine(2)
		s.in.SkipN(2)
		return
	}
	w := runeWidth(s.in.Peek())
	s.mark.AdvanceLine(w)
	s.in.Skip()
}

// runeWidth is the UTF-8 width of r, so Position.Index is a byte offset
// while Position.Column still counts Unicode scalars.
func runeWidth(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return 1
}

func (s *Scanner) insertToken(pos int, tok token.Token) {
	if pos < 0 {
		s.tokens = append(s.tokens, tok)
		return
	}
	pos += s.tokensHead
	s.tokens = append(s.tokens, token.Token{})
	copy(s.tokens[pos+1:], s.tokens[pos:])
	s.tokens[pos] = tok
}

// --- simple keys -------------------------------------------------------

func (s *Scanner) stageSimpleKey() error {
	if s.mark.Column > maxSimpleKeyLength {
		return nil
	}
	required := s.flowLevel == 0 && s.indent == s.mark.Column
	if err := s.removeSimpleKeyCandidate(); err != nil {
		return err
	}
	key := simpleKey{
		possible:    true,
		required:    required,
		tokenNumber: s.tokensParsed + (len(s.tokens) - s.tokensHead),
		mark:        s.mark,
	}
	s.simpleKeys[len(s.simpleKeys)-1] = key
	s.simpleKeysByTok[key.tokenNumber] = len(s.simpleKeys) - 1
	return nil
}

func (s *Scanner) removeSimpleKeyCandidate() error {
	i := len(s.simpleKeys) - 1
	if s.simpleKeys[i].possible {
		if s.simpleKeys[i].required {
			return s.newError(s.simpleKeys[i].mark, "could not find expected ':'")
		}
		s.simpleKeys[i].possible = false
		delete(s.simpleKeysByTok, s.simpleKeys[i].tokenNumber)
	}
	return nil
}

func (s *Scanner) increaseFlowLevel() error {
	s.simpleKeys = append(s.simpleKeys, simpleKey{
		tokenNumber: s.tokensParsed + (len(s.tokens) - s.tokensHead),
		mark:        s.mark,
	})
	s.flowLevel++
	if s.flowLevel > maxFlowLevel {
		return s.newError(s.mark, "exceeded max depth of %d", maxFlowLevel)
	}
	return nil
}

func (s *Scanner) decreaseFlowLevel() {
	if s.flowLevel > 0 {
		s.flowLevel--
		last := len(s.simpleKeys) - 1
		delete(s.simpleKeysByTok, s.simpleKeys[last].tokenNumber)
		s.simpleKeys = s.simpleKeys[:last]
	}
}

// --- indentation --------------------------------------------------------

func (s *Scanner) rollIndent(column, number int, kind token.Kind, mark chars.Position) error {
	if s.flowLevel > 0 {
		return nil
	}
	if s.indent < column {
		s.indents = append(s.indents, s.indent)
		s.indent = column
		if len(s.indents) > maxIndents {
			return s.newError(mark, "exceeded max depth of %d", maxIndents)
		}
		tok := token.Token{Kind: kind, StartMark: mark, EndMark: mark}
		if number > -1 {
			number -= s.tokensParsed
		}
		s.insertToken(number, tok)
	}
	return nil
}

func (s *Scanner) unrollIndent(column int) {
	if s.flowLevel > 0 {
		return
	}
	for s.indent > column {
		mark := s.mark
		s.tokens = append(s.tokens, token.Token{Kind: token.BlockEnd, StartMark: mark, EndMark: mark})
		s.indent = s.indents[len(s.indents)-1]
		s.indents = s.indents[:len(s.indents)-1]
	}
}

// --- the fetch loop ------------------------------------------------------

func (s *Scanner) fetchMoreTokens() error {
	for {
		if s.streamEndProduced {
			s.tokenAvailable = true
			return nil
		}
		if len(s.tokens) > s.tokensHead {
			if err := s.staleSimpleKeys(); err != nil {
				return err
			}
			// The head token is safe to hand out only once no simple key
			// candidate still points at it (a Key may yet be inserted there).
			blocked := false
			for _, key := range s.simpleKeys {
				blocked = blocked || (key.possible && key.tokenNumber == s.tokensParsed)
			}
			if !blocked {
				s.tokenAvailable = true
				return nil
			}
		}
		if err := s.unstageObsoleteSimpleKeys(); err != nil {
			return err
		}
		s.in.Lookahead(4)
		if err := s.fetchNextToken(); err != nil {
			return err
		}
	}
}

// staleSimpleKeys reports an error for any required candidate that
// expired before its ':' was seen. (libyaml's
// yaml_parser_stale_simple_keys, invoked from fetch_more_tokens.)
func (s *Scanner) staleSimpleKeys() error {
	for i := range s.simpleKeys {
		key := &s.simpleKeys[i]
		if key.possible && (key.mark.Line < s.mark.Line || s.mark.Column-key.mark.Column > maxSimpleKeyLength) {
			if key.required {
				return s.newError(s.mark, "could not find expected ':'")
			}
			key.possible = false
		}
	}
	return nil
}

// unstageObsoleteSimpleKeys is a hook for callers that want eager
// cleanup; staleSimpleKeys already does the work, so this currently
// only exists to mirror the teacher's two-phase call shape and is kept
// small on purpose.
func (s *Scanner) unstageObsoleteSimpleKeys() error { return nil }

func (s *Scanner) fetchNextToken() error {
	if !s.streamStartProduced {
		return s.fetchStreamStart()
	}

	if err := s.scanToNextToken(); err != nil {
		return err
	}
	s.in.Lookahead(4)
	s.unrollIndent(s.mark.Column)

	if input.NextIsZ(s.in) {
		return s.fetchStreamEnd()
	}
	switch {
	case s.mark.Column == 0 && s.in.Peek() == '%':
		return s.fetchDirective()
	case s.mark.Column == 0 && input.NextIsDocumentStart(s.in):
		return s.fetchDocumentIndicator(token.DocumentStart)
	case s.mark.Column == 0 && input.NextIsDocumentEnd(s.in):
		return s.fetchDocumentIndicator(token.DocumentEnd)
	case s.in.Peek() == '[':
		return s.fetchFlowCollectionStart(token.FlowSequenceStart)
	case s.in.Peek() == '{':
		return s.fetchFlowCollectionStart(token.FlowMappingStart)
	case s.in.Peek() == ']':
		return s.fetchFlowCollectionEnd(token.FlowSequenceEnd)
	case s.in.Peek() == '}':
		return s.fetchFlowCollectionEnd(token.FlowMappingEnd)
	case s.in.Peek() == ',':
		return s.fetchFlowEntry()
	case s.in.Peek() == '-' && chars.IsBlankOrBreakz(s.in.PeekNth(1)):
		return s.fetchBlockEntry()
	case s.in.Peek() == '?' && (s.flowLevel > 0 || chars.IsBlankOrBreakz(s.in.PeekNth(1))):
		return s.fetchKey()
	case s.in.Peek() == ':' && (s.flowLevel > 0 || chars.IsBlankOrBreakz(s.in.PeekNth(1))):
		return s.fetchValue()
	case s.in.Peek() == '*':
		return s.fetchAnchor(token.Alias)
	case s.in.Peek() == '&':
		return s.fetchAnchor(token.Anchor)
	case s.in.Peek() == '!':
		return s.fetchTag()
	case s.in.Peek() == '|' && s.flowLevel == 0:
		return s.fetchBlockScalar(token.Literal)
	case s.in.Peek() == '>' && s.flowLevel == 0:
		return s.fetchBlockScalar(token.Folded)
	case s.in.Peek() == '\'':
		return s.fetchFlowScalar(token.SingleQuoted)
	case s.in.Peek() == '"':
		return s.fetchFlowScalar(token.DoubleQuoted)
	case input.NextCanBePlainScalar(s.in, s.flowLevel > 0):
		return s.fetchPlainScalar()
	default:
		return s.newError(s.mark, "found character %q that cannot start any token", s.in.Peek())
	}
}

func (s *Scanner) fetchStreamStart() error {
	s.mark = chars.Position{Line: 1, Column: 0}
	s.simpleKeys[0] = simpleKey{possible: false}
	s.tokens = append(s.tokens, token.Token{Kind: token.StreamStart, StartMark: s.mark, EndMark: s.mark})
	s.streamStartProduced = true
	return nil
}

func (s *Scanner) fetchStreamEnd() error {
	s.unrollIndent(-1)
	if err := s.removeSimpleKeyCandidate(); err != nil {
		return err
	}
	s.tokens = append(s.tokens, token.Token{Kind: token.StreamEnd, StartMark: s.mark, EndMark: s.mark})
	s.streamEndProduced = true
	return nil
}

func (s *Scanner) fetchFlowEntry() error {
	if err := s.removeSimpleKeyCandidate(); err != nil {
		return err
	}
	start := s.mark
	s.skip()
	s.tokens = append(s.tokens, token.Token{Kind: token.FlowEntry, StartMark: start, EndMark: s.mark})
	return nil
}

func (s *Scanner) fetchBlockEntry() error {
	if s.flowLevel == 0 {
		if err := s.rollIndent(s.mark.Column, -1, token.BlockSequenceStart, s.mark); err != nil {
			return err
		}
	}
	if err := s.removeSimpleKeyCandidate(); err != nil {
		return err
	}
	start := s.mark
	s.skip()
	s.tokens = append(s.tokens, token.Token{Kind: token.BlockEntry, StartMark: start, EndMark: s.mark})
	return nil
}

func (s *Scanner) fetchKey() error {
	if s.flowLevel == 0 {
		if err := s.rollIndent(s.mark.Column, -1, token.BlockMappingStart, s.mark); err != nil {
			return err
		}
	}
	if err := s.removeSimpleKeyCandidate(); err != nil {
		return err
	}
	start := s.mark
	s.skip()
	s.tokens = append(s.tokens, token.Token{Kind: token.Key, StartMark: start, EndMark: s.mark})
	return nil
}

func (s *Scanner) fetchValue() error {
	i := len(s.simpleKeys) - 1
	if s.simpleKeys[i].possible {
		key := s.simpleKeys[i]
		s.insertToken(key.tokenNumber-s.tokensParsed, token.Token{Kind: token.Key, StartMark: key.mark, EndMark: key.mark})
		if err := s.rollIndent(key.mark.Column, key.tokenNumber, token.BlockMappingStart, key.mark); err != nil {
			return err
		}
		s.simpleKeys[i].possible = false
		delete(s.simpleKeysByTok, key.tokenNumber)
	} else {
		if s.flowLevel == 0 {
			if err := s.rollIndent(s.mark.Column, -1, token.BlockMappingStart, s.mark); err != nil {
				return err
			}
		}
	}
	start := s.mark
	s.skip()
	s.tokens = append(s.tokens, token.Token{Kind: token.Value, StartMark: start, EndMark: s.mark})
	return nil
}

func (s *Scanner) fetchFlowCollectionStart(kind token.Kind) error {
	if err := s.stageSimpleKey(); err != nil {
		return err
	}
	if err := s.increaseFlowLevel(); err != nil {
		return err
	}
	start := s.mark
	s.skip()
	s.tokens = append(s.tokens, token.Token{Kind: kind, StartMark: start, EndMark: s.mark})
	return nil
}

func (s *Scanner) fetchFlowCollectionEnd(kind token.Kind) error {
	if err := s.removeSimpleKeyCandidate(); err != nil {
		return err
	}
	s.decreaseFlowLevel()
	start := s.mark
	s.skip()
	s.tokens = append(s.tokens, token.Token{Kind: kind, StartMark: start, EndMark: s.mark})
	return nil
}
