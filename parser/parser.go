package parser

import (
	"fmt"

	"github.com/saphyr-rs/saphyr-parser/chars"
	"github.com/saphyr-rs/saphyr-parser/token"
)

// TokenSource is the token stream a Parser consumes. scanner.Scanner
// satisfies it; tests and alternative producers may supply their own.
type TokenSource interface {
	Peek() (token.Token, error)
	Token() (token.Token, error)
}

// Error is returned for any structurally invalid token sequence.
type Error struct {
	Mark chars.Position
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Mark.String())
}

type state int8

const (
	stateStreamStart state = iota
	stateImplicitDocumentStart
	stateDocumentStart
	stateDocumentContent
	stateDocumentEnd
	stateBlockNode
	stateBlockNodeOrIndentlessSequence
	stateFlowNode
	stateBlockSequenceFirstEntry
	stateBlockSequenceEntry
	stateIndentlessSequenceEntry
	stateBlockMappingFirstKey
	stateBlockMappingKey
	stateBlockMappingValue
	stateFlowSequenceFirstEntry
	stateFlowSequenceEntry
	stateFlowSequenceEntryMappingKey
	stateFlowSequenceEntryMappingValue
	stateFlowSequenceEntryMappingEnd
	stateFlowMappingFirstKey
	stateFlowMappingKey
	stateFlowMappingValue
	stateFlowMappingEmptyValue
	stateEnd
)

type tagDirective struct{ handle, prefix string }

// Parser drives the state-stack machine that turns a Token stream into
// Events, resolving tag handles and minting per-document anchor ids.
type Parser struct {
	src TokenSource

	state  state
	states []state
	marks  []chars.Position

	tagDirectives []tagDirective

	anchors    map[string]AnchorID
	nextAnchor AnchorID

	err error
}

// New creates a Parser consuming tokens from src.
func New(src TokenSource) *Parser {
	return &Parser{anchors: map[string]AnchorID{}, src: src}
}

func (p *Parser) newError(mark chars.Position, format string, args ...interface{}) error {
	return &Error{Mark: mark, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) peek() (token.Token, error) { return p.src.Peek() }

func (p *Parser) skip() error {
	_, err := p.src.Token()
	return err
}

func (p *Parser) pushState(s state) { p.states = append(p.states, s) }

func (p *Parser) popState() {
	p.state = p.states[len(p.states)-1]
	p.states = p.states[:len(p.states)-1]
}

func (p *Parser) anchorID(name string) AnchorID {
	if name == "" {
		return 0
	}
	if id, ok := p.anchors[name]; ok {
		return id
	}
	p.nextAnchor++
	p.anchors[name] = p.nextAnchor
	return p.nextAnchor
}

// Event returns the next structural event.
func (p *Parser) Event() (Event, error) {
	if p.err != nil {
		return Event{}, p.err
	}
	ev, err := p.stateMachine()
	if err != nil {
		p.err = err
		return Event{}, err
	}
	return ev, nil
}

func (p *Parser) stateMachine() (Event, error) {
	switch p.state {
	case stateStreamStart:
		return p.parseStreamStart()
	case stateImplicitDocumentStart:
		return p.parseDocumentStart(true)
	case stateDocumentStart:
		return p.parseDocumentStart(false)
	case stateDocumentContent:
		return p.parseDocumentContent()
	case stateDocumentEnd:
		return p.parseDocumentEnd()
	case stateBlockNode:
		return p.parseNode(true, false)
	case stateBlockNodeOrIndentlessSequence:
		return p.parseNode(true, true)
	case stateFlowNode:
		return p.parseNode(false, false)
	case stateBlockSequenceFirstEntry:
		return p.parseBlockSequenceEntry(true)
	case stateBlockSequenceEntry:
		return p.parseBlockSequenceEntry(false)
	case stateIndentlessSequenceEntry:
		return p.parseIndentlessSequenceEntry()
	case stateBlockMappingFirstKey:
		return p.parseBlockMappingKey(true)
	case stateBlockMappingKey:
		return p.parseBlockMappingKey(false)
	case stateBlockMappingValue:
		return p.parseBlockMappingValue()
	case stateFlowSequenceFirstEntry:
		return p.parseFlowSequenceEntry(true)
	case stateFlowSequenceEntry:
		return p.parseFlowSequenceEntry(false)
	case stateFlowSequenceEntryMappingKey:
		return p.parseFlowSequenceEntryMappingKey()
	case stateFlowSequenceEntryMappingValue:
		return p.parseFlowSequenceEntryMappingValue()
	case stateFlowSequenceEntryMappingEnd:
		return p.parseFlowSequenceEntryMappingEnd()
	case stateFlowMappingFirstKey:
		return p.parseFlowMappingKey(true)
	case stateFlowMappingKey:
		return p.parseFlowMappingKey(false)
	case stateFlowMappingValue:
		return p.parseFlowMappingValue(false)
	case stateFlowMappingEmptyValue:
		return p.parseFlowMappingValue(true)
	default:
		return Event{}, p.newError(chars.Position{}, "parser reached state %d after stream end", p.state)
	}
}

func (p *Parser) parseStreamStart() (Event, error) {
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}
	if tok.Kind != token.StreamStart {
		return Event{}, p.newError(tok.StartMark, "did not find expected <stream-start>")
	}
	p.state = stateImplicitDocumentStart
	ev := Event{Kind: StreamStart, StartMark: tok.StartMark, EndMark: tok.EndMark, Encoding: tok.Encoding}
	return ev, p.skip()
}

func (p *Parser) parseDocumentStart(implicit bool) (Event, error) {
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}

	if !implicit {
		for tok.Kind == token.DocumentEnd {
			if err := p.skip(); err != nil {
				return Event{}, err
			}
			tok, err = p.peek()
			if err != nil {
				return Event{}, err
			}
		}
	}

	if implicit && tok.Kind != token.VersionDirective && tok.Kind != token.TagDirective &&
		tok.Kind != token.DocumentStart && tok.Kind != token.StreamEnd {
		if err := p.processDirectives(); err != nil {
			return Event{}, err
		}
		p.pushState(stateDocumentEnd)
		p.state = stateBlockNode
		return Event{Kind: DocumentStart, StartMark: tok.StartMark, EndMark: tok.EndMark, Implicit: true}, nil
	}

	if tok.Kind != token.StreamEnd {
		start := tok.StartMark
		if err := p.processDirectives(); err != nil {
			return Event{}, err
		}
		tok, err = p.peek()
		if err != nil {
			return Event{}, err
		}
		if tok.Kind != token.DocumentStart {
			return Event{}, p.newError(tok.StartMark, "did not find expected <document start>")
		}
		p.pushState(stateDocumentEnd)
		p.state = stateDocumentContent
		end := tok.EndMark
		ev := Event{Kind: DocumentStart, StartMark: start, EndMark: end, Implicit: false}
		return ev, p.skip()
	}

	p.state = stateEnd
	ev := Event{Kind: StreamEnd, StartMark: tok.StartMark, EndMark: tok.EndMark}
	return ev, p.skip()
}

func (p *Parser) parseDocumentContent() (Event, error) {
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}
	switch tok.Kind {
	case token.VersionDirective, token.TagDirective, token.DocumentStart, token.DocumentEnd, token.StreamEnd:
		p.popState()
		return emptyScalar(tok.StartMark), nil
	}
	return p.parseNode(true, false)
}

func (p *Parser) parseDocumentEnd() (Event, error) {
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}
	start, end := tok.StartMark, tok.StartMark
	implicit := true
	if tok.Kind == token.DocumentEnd {
		end = tok.EndMark
		implicit = false
		if err := p.skip(); err != nil {
			return Event{}, err
		}
	}
	p.tagDirectives = p.tagDirectives[:0]
	p.anchors = map[string]AnchorID{}
	p.nextAnchor = 0
	p.state = stateDocumentStart
	return Event{Kind: DocumentEnd, StartMark: start, EndMark: end, Implicit: implicit}, nil
}

func emptyScalar(mark chars.Position) Event {
	return Event{Kind: Scalar, StartMark: mark, EndMark: mark, Implicit: true, Style: token.Plain}
}

func (p *Parser) resolveTag(handle, suffix string, mark chars.Position) (Tag, error) {
	if handle == "" {
		return Tag{Suffix: suffix}, nil
	}
	for _, d := range p.tagDirectives {
		if d.handle == handle {
			return Tag{Prefix: d.prefix, Suffix: suffix}, nil
		}
	}
	return Tag{}, p.newError(mark, "found undefined tag handle")
}

func (p *Parser) parseNode(block, indentlessSequence bool) (Event, error) {
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}

	if tok.Kind == token.Alias {
		p.popState()
		ev := Event{Kind: Alias, StartMark: tok.StartMark, EndMark: tok.EndMark, AliasOf: p.anchorID(tok.Text())}
		return ev, p.skip()
	}

	start, end := tok.StartMark, tok.StartMark
	var anchorName string
	var tagToken bool
	var tagHandle, tagSuffix string
	var tagMark chars.Position

	if tok.Kind == token.Anchor {
		anchorName = tok.Text()
		start, end = tok.StartMark, tok.EndMark
		if err := p.skip(); err != nil {
			return Event{}, err
		}
		tok, err = p.peek()
		if err != nil {
			return Event{}, err
		}
		if tok.Kind == token.Tag {
			tagToken = true
			tagHandle, tagSuffix = tok.Text(), string(tok.Suffix)
			tagMark = tok.StartMark
			end = tok.EndMark
			if err := p.skip(); err != nil {
				return Event{}, err
			}
			tok, err = p.peek()
			if err != nil {
				return Event{}, err
			}
		}
	} else if tok.Kind == token.Tag {
		tagToken = true
		tagHandle, tagSuffix = tok.Text(), string(tok.Suffix)
		start, tagMark = tok.StartMark, tok.StartMark
		end = tok.EndMark
		if err := p.skip(); err != nil {
			return Event{}, err
		}
		tok, err = p.peek()
		if err != nil {
			return Event{}, err
		}
		if tok.Kind == token.Anchor {
			anchorName = tok.Text()
			end = tok.EndMark
			if err := p.skip(); err != nil {
				return Event{}, err
			}
			tok, err = p.peek()
			if err != nil {
				return Event{}, err
			}
		}
	}

	var tag Tag
	if tagToken {
		tag, err = p.resolveTag(tagHandle, tagSuffix, tagMark)
		if err != nil {
			return Event{}, err
		}
	}
	anchor := p.anchorID(anchorName)
	implicit := tag.IsZero()

	if indentlessSequence && tok.Kind == token.BlockEntry {
		p.state = stateIndentlessSequenceEntry
		return Event{Kind: SequenceStart, StartMark: start, EndMark: tok.EndMark, Anchor: anchor, Tag: tag, Implicit: implicit, CollectionStyle: BlockStyle}, nil
	}

	if tok.Kind == token.Scalar {
		plainImplicit := (tag.IsZero() && tok.Style == token.Plain) || (tag.Prefix == "" && tag.Suffix == "!")
		quotedImplicit := tag.IsZero() && !plainImplicit
		p.popState()
		ev := Event{
			Kind: Scalar, StartMark: start, EndMark: tok.EndMark,
			Anchor: anchor, Tag: tag, Value: tok.Text(), Style: tok.Style,
			Implicit: plainImplicit || quotedImplicit,
		}
		return ev, p.skip()
	}

	switch tok.Kind {
	case token.FlowSequenceStart:
		p.state = stateFlowSequenceFirstEntry
		return Event{Kind: SequenceStart, StartMark: start, EndMark: tok.EndMark, Anchor: anchor, Tag: tag, Implicit: implicit, CollectionStyle: FlowStyle}, nil
	case token.FlowMappingStart:
		p.state = stateFlowMappingFirstKey
		return Event{Kind: MappingStart, StartMark: start, EndMark: tok.EndMark, Anchor: anchor, Tag: tag, Implicit: implicit, CollectionStyle: FlowStyle}, nil
	case token.BlockSequenceStart:
		if block {
			p.state = stateBlockSequenceFirstEntry
			return Event{Kind: SequenceStart, StartMark: start, EndMark: tok.EndMark, Anchor: anchor, Tag: tag, Implicit: implicit, CollectionStyle: BlockStyle}, nil
		}
	case token.BlockMappingStart:
		if block {
			p.state = stateBlockMappingFirstKey
			return Event{Kind: MappingStart, StartMark: start, EndMark: tok.EndMark, Anchor: anchor, Tag: tag, Implicit: implicit, CollectionStyle: BlockStyle}, nil
		}
	}

	if anchorName != "" || !tag.IsZero() {
		p.popState()
		return Event{Kind: Scalar, StartMark: start, EndMark: end, Anchor: anchor, Tag: tag, Implicit: implicit, Style: token.Plain}, nil
	}

	if block {
		return Event{}, p.newError(tok.StartMark, "while parsing a block node, did not find expected node content")
	}
	return Event{}, p.newError(tok.StartMark, "while parsing a flow node, did not find expected node content")
}

func (p *Parser) parseBlockSequenceEntry(first bool) (Event, error) {
	if first {
		tok, err := p.peek()
		if err != nil {
			return Event{}, err
		}
		p.marks = append(p.marks, tok.StartMark)
		if err := p.skip(); err != nil {
			return Event{}, err
		}
	}

	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}

	if tok.Kind == token.BlockEntry {
		mark := tok.EndMark
		if err := p.skip(); err != nil {
			return Event{}, err
		}
		tok, err = p.peek()
		if err != nil {
			return Event{}, err
		}
		if tok.Kind != token.BlockEntry && tok.Kind != token.BlockEnd {
			p.pushState(stateBlockSequenceEntry)
			return p.parseNode(true, false)
		}
		p.state = stateBlockSequenceEntry
		return emptyScalar(mark), nil
	}
	if tok.Kind == token.BlockEnd {
		p.popState()
		p.marks = p.marks[:len(p.marks)-1]
		ev := Event{Kind: SequenceEnd, StartMark: tok.StartMark, EndMark: tok.EndMark}
		return ev, p.skip()
	}

	contextMark := p.marks[len(p.marks)-1]
	p.marks = p.marks[:len(p.marks)-1]
	_ = contextMark
	return Event{}, p.newError(tok.StartMark, "while parsing a block collection, did not find expected '-' indicator")
}

func (p *Parser) parseIndentlessSequenceEntry() (Event, error) {
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}
	if tok.Kind == token.BlockEntry {
		mark := tok.EndMark
		if err := p.skip(); err != nil {
			return Event{}, err
		}
		tok, err = p.peek()
		if err != nil {
			return Event{}, err
		}
		if tok.Kind != token.BlockEntry && tok.Kind != token.Key && tok.Kind != token.Value && tok.Kind != token.BlockEnd {
			p.pushState(stateIndentlessSequenceEntry)
			return p.parseNode(true, false)
		}
		p.state = stateIndentlessSequenceEntry
		return emptyScalar(mark), nil
	}
	p.popState()
	return Event{Kind: SequenceEnd, StartMark: tok.StartMark, EndMark: tok.StartMark}, nil
}

func (p *Parser) parseBlockMappingKey(first bool) (Event, error) {
	if first {
		tok, err := p.peek()
		if err != nil {
			return Event{}, err
		}
		p.marks = append(p.marks, tok.StartMark)
		if err := p.skip(); err != nil {
			return Event{}, err
		}
	}

	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}

	if tok.Kind == token.Key {
		mark := tok.EndMark
		if err := p.skip(); err != nil {
			return Event{}, err
		}
		tok, err = p.peek()
		if err != nil {
			return Event{}, err
		}
		if tok.Kind != token.Key && tok.Kind != token.Value && tok.Kind != token.BlockEnd {
			p.pushState(stateBlockMappingValue)
			return p.parseNode(true, true)
		}
		p.state = stateBlockMappingValue
		return emptyScalar(mark), nil
	}
	if tok.Kind == token.BlockEnd {
		p.popState()
		p.marks = p.marks[:len(p.marks)-1]
		ev := Event{Kind: MappingEnd, StartMark: tok.StartMark, EndMark: tok.EndMark}
		return ev, p.skip()
	}

	p.marks = p.marks[:len(p.marks)-1]
	return Event{}, p.newError(tok.StartMark, "while parsing a block mapping, did not find expected key")
}

func (p *Parser) parseBlockMappingValue() (Event, error) {
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}
	if tok.Kind == token.Value {
		mark := tok.EndMark
		if err := p.skip(); err != nil {
			return Event{}, err
		}
		tok, err = p.peek()
		if err != nil {
			return Event{}, err
		}
		if tok.Kind != token.Key && tok.Kind != token.Value && tok.Kind != token.BlockEnd {
			p.pushState(stateBlockMappingKey)
			return p.parseNode(true, true)
		}
		p.state = stateBlockMappingKey
		return emptyScalar(mark), nil
	}
	p.state = stateBlockMappingKey
	return emptyScalar(tok.StartMark), nil
}

func (p *Parser) parseFlowSequenceEntry(first bool) (Event, error) {
	if first {
		tok, err := p.peek()
		if err != nil {
			return Event{}, err
		}
		p.marks = append(p.marks, tok.EndMark)
		if err := p.skip(); err != nil {
			return Event{}, err
		}
	}
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}
	if tok.Kind != token.FlowSequenceEnd {
		if !first {
			if tok.Kind == token.FlowEntry {
				if err := p.skip(); err != nil {
					return Event{}, err
				}
				tok, err = p.peek()
				if err != nil {
					return Event{}, err
				}
			} else {
				contextMark := p.marks[len(p.marks)-1]
				p.marks = p.marks[:len(p.marks)-1]
				return Event{}, p.newError(contextMark, "while parsing a flow sequence, did not find expected ',' or ']'")
			}
		}
		if tok.Kind == token.Key {
			p.state = stateFlowSequenceEntryMappingKey
			ev := Event{Kind: MappingStart, StartMark: tok.StartMark, EndMark: tok.EndMark, Implicit: true, CollectionStyle: FlowStyle}
			return ev, p.skip()
		}
		if tok.Kind == token.Value {
			// A flow sequence entry introduced by a bare ':' with no preceding
			// scalar key (e.g. "[:]") synthesizes an implicit mapping with an
			// empty key; the Value token itself is left unconsumed so
			// parseFlowSequenceEntryMappingKey can use it as the key/value
			// boundary.
			p.state = stateFlowSequenceEntryMappingKey
			ev := Event{Kind: MappingStart, StartMark: tok.StartMark, EndMark: tok.EndMark, Implicit: true, CollectionStyle: FlowStyle}
			return ev, nil
		}
		if tok.Kind != token.FlowSequenceEnd {
			p.pushState(stateFlowSequenceEntry)
			return p.parseNode(false, false)
		}
	}
	p.popState()
	p.marks = p.marks[:len(p.marks)-1]
	ev := Event{Kind: SequenceEnd, StartMark: tok.StartMark, EndMark: tok.EndMark}
	return ev, p.skip()
}

func (p *Parser) parseFlowSequenceEntryMappingKey() (Event, error) {
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}
	if tok.Kind != token.Value && tok.Kind != token.FlowEntry && tok.Kind != token.FlowSequenceEnd {
		p.pushState(stateFlowSequenceEntryMappingValue)
		return p.parseNode(false, false)
	}
	mark := tok.EndMark
	if err := p.skip(); err != nil {
		return Event{}, err
	}
	p.state = stateFlowSequenceEntryMappingValue
	return emptyScalar(mark), nil
}

func (p *Parser) parseFlowSequenceEntryMappingValue() (Event, error) {
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}
	if tok.Kind == token.Value {
		if err := p.skip(); err != nil {
			return Event{}, err
		}
		tok, err = p.peek()
		if err != nil {
			return Event{}, err
		}
		if tok.Kind != token.FlowEntry && tok.Kind != token.FlowSequenceEnd {
			p.pushState(stateFlowSequenceEntryMappingEnd)
			return p.parseNode(false, false)
		}
	}
	p.state = stateFlowSequenceEntryMappingEnd
	return emptyScalar(tok.StartMark), nil
}

func (p *Parser) parseFlowSequenceEntryMappingEnd() (Event, error) {
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}
	p.state = stateFlowSequenceEntry
	return Event{Kind: MappingEnd, StartMark: tok.StartMark, EndMark: tok.StartMark}, nil
}

func (p *Parser) parseFlowMappingKey(first bool) (Event, error) {
	if first {
		tok, err := p.peek()
		if err != nil {
			return Event{}, err
		}
		p.marks = append(p.marks, tok.EndMark)
		if err := p.skip(); err != nil {
			return Event{}, err
		}
	}
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}
	if tok.Kind != token.FlowMappingEnd {
		if !first {
			if tok.Kind == token.FlowEntry {
				if err := p.skip(); err != nil {
					return Event{}, err
				}
				tok, err = p.peek()
				if err != nil {
					return Event{}, err
				}
			} else {
				contextMark := p.marks[len(p.marks)-1]
				p.marks = p.marks[:len(p.marks)-1]
				return Event{}, p.newError(contextMark, "while parsing a flow mapping, did not find expected ',' or '}'")
			}
		}
		if tok.Kind == token.Key {
			if err := p.skip(); err != nil {
				return Event{}, err
			}
			tok, err = p.peek()
			if err != nil {
				return Event{}, err
			}
			if tok.Kind != token.Value && tok.Kind != token.FlowEntry && tok.Kind != token.FlowMappingEnd {
				p.pushState(stateFlowMappingValue)
				return p.parseNode(false, false)
			}
			p.state = stateFlowMappingValue
			return emptyScalar(tok.StartMark), nil
		}
		if tok.Kind != token.FlowMappingEnd {
			p.pushState(stateFlowMappingEmptyValue)
			return p.parseNode(false, false)
		}
	}
	p.popState()
	p.marks = p.marks[:len(p.marks)-1]
	ev := Event{Kind: MappingEnd, StartMark: tok.StartMark, EndMark: tok.EndMark}
	return ev, p.skip()
}

func (p *Parser) parseFlowMappingValue(empty bool) (Event, error) {
	tok, err := p.peek()
	if err != nil {
		return Event{}, err
	}
	if empty {
		p.state = stateFlowMappingKey
		return emptyScalar(tok.StartMark), nil
	}
	if tok.Kind == token.Value {
		if err := p.skip(); err != nil {
			return Event{}, err
		}
		tok, err = p.peek()
		if err != nil {
			return Event{}, err
		}
		if tok.Kind != token.FlowEntry && tok.Kind != token.FlowMappingEnd {
			p.pushState(stateFlowMappingKey)
			return p.parseNode(false, false)
		}
	}
	p.state = stateFlowMappingKey
	return emptyScalar(tok.StartMark), nil
}

func (p *Parser) processDirectives() error {
	var gotVersion bool
	tok, err := p.peek()
	if err != nil {
		return err
	}
	for tok.Kind == token.VersionDirective || tok.Kind == token.TagDirective {
		if tok.Kind == token.VersionDirective {
			if gotVersion {
				return p.newError(tok.StartMark, "found duplicate %YAML directive")
			}
			if tok.Major != 1 || (tok.Minor != 1 && tok.Minor != 2) {
				return p.newError(tok.StartMark, "found incompatible YAML document")
			}
			gotVersion = true
		} else {
			d := tagDirective{handle: tok.Text(), prefix: string(tok.Prefix)}
			for _, existing := range p.tagDirectives {
				if existing.handle == d.handle {
					return p.newError(tok.StartMark, "found duplicate %TAG directive")
				}
			}
			p.tagDirectives = append(p.tagDirectives, d)
		}
		if err := p.skip(); err != nil {
			return err
		}
		tok, err = p.peek()
		if err != nil {
			return err
		}
	}

	if _, ok := lookupDefaultTagDirective(p.tagDirectives, "!"); !ok {
		p.tagDirectives = append(p.tagDirectives, tagDirective{handle: "!", prefix: "!"})
	}
	if _, ok := lookupDefaultTagDirective(p.tagDirectives, "!!"); !ok {
		p.tagDirectives = append(p.tagDirectives, tagDirective{handle: "!!", prefix: "tag:yaml.org,2002:"})
	}
	return nil
}

func lookupDefaultTagDirective(ds []tagDirective, handle string) (tagDirective, bool) {
	for _, d := range ds {
		if d.handle == handle {
			return d, true
		}
	}
	return tagDirective{}, false
}
