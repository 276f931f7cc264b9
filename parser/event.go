// Package parser turns a Token stream into the small set of structural
// Events a YAML consumer needs: stream/document bracketing, collection
// start/end, scalars, and alias references. It ports the state-stack
// machine in
// _examples/WillAbides-yaml/internal/parserc/parserc.go onto the
// scanner.Scanner/token.Token types instead of yamlh's C-style structs.
package parser

import (
	"github.com/saphyr-rs/saphyr-parser/chars"
	"github.com/saphyr-rs/saphyr-parser/token"
)

// Kind identifies which variant of Event is populated.
type Kind int8

const (
	NoEvent Kind = iota
	StreamStart
	StreamEnd
	DocumentStart
	DocumentEnd
	SequenceStart
	SequenceEnd
	MappingStart
	MappingEnd
	Scalar
	Alias
)

func (k Kind) String() string {
	switch k {
	case StreamStart:
		return "StreamStart"
	case StreamEnd:
		return "StreamEnd"
	case DocumentStart:
		return "DocumentStart"
	case DocumentEnd:
		return "DocumentEnd"
	case SequenceStart:
		return "SequenceStart"
	case SequenceEnd:
		return "SequenceEnd"
	case MappingStart:
		return "MappingStart"
	case MappingEnd:
		return "MappingEnd"
	case Scalar:
		return "Scalar"
	case Alias:
		return "Alias"
	default:
		return "NoEvent"
	}
}

// CollectionStyle distinguishes block from flow form for SequenceStart
// and MappingStart events.
type CollectionStyle int8

const (
	BlockStyle CollectionStyle = iota
	FlowStyle
)

// Tag is a resolved node tag. A tag with a handle (!handle!suffix, or a
// bare !suffix under the primary "!" handle) carries the prefix of the
// %TAG directive, or default, for that handle; a verbatim !<...> tag or a
// lone "!" has an empty Prefix.
type Tag struct {
	Prefix string
	Suffix string
}

// IsZero reports whether no explicit tag was present.
func (t Tag) IsZero() bool { return t.Prefix == "" && t.Suffix == "" }

// AnchorID is a per-document, non-zero, stable identifier minted the
// first time an anchor name is seen; 0 means "no anchor".
type AnchorID int

// Event is a single structural event the parser produces. As with
// token.Token, only the fields relevant to Kind are populated.
type Event struct {
	Kind Kind

	StartMark, EndMark chars.Position

	// Encoding, for StreamStart.
	Encoding token.Encoding

	// Implicit documents/nodes lack an explicit indicator (--- or a tag).
	Implicit bool

	// Anchor names this node for later Alias reference (SequenceStart,
	// MappingStart, Scalar). AliasOf is the target anchor (Alias).
	Anchor  AnchorID
	AliasOf AnchorID

	Tag Tag

	// Value and Style, for Scalar.
	Value string
	Style token.ScalarStyle

	// CollectionStyle, for SequenceStart/MappingStart.
	CollectionStyle CollectionStyle
}
