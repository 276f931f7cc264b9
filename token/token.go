//
// Copyright (c) 2011-2019 Canonical Ltd
// Copyright (c) 2006-2010 Kirill Simonov
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package token defines the tagged-union Token value the scanner produces
// and the parser consumes.
package token

import "github.com/saphyr-rs/saphyr-parser/chars"

// Encoding is the stream encoding carried by a StreamStart token.
type Encoding int8

const (
	AnyEncoding Encoding = iota
	UTF8
	UTF16LE
	UTF16BE
)

// Kind identifies which variant of Token is populated.
type Kind int8

const (
	NoToken Kind = iota
	StreamStart
	StreamEnd
	VersionDirective
	TagDirective
	DocumentStart
	DocumentEnd
	BlockSequenceStart
	BlockMappingStart
	BlockEnd
	FlowSequenceStart
	FlowSequenceEnd
	FlowMappingStart
	FlowMappingEnd
	BlockEntry
	FlowEntry
	Key
	Value
	Alias
	Anchor
	Tag
	Scalar
)

func (k Kind) String() string {
	switch k {
	case NoToken:
		return "NoToken"
	case StreamStart:
		return "StreamStart"
	case StreamEnd:
		return "StreamEnd"
	case VersionDirective:
		return "VersionDirective"
	case TagDirective:
		return "TagDirective"
	case DocumentStart:
		return "DocumentStart"
	case DocumentEnd:
		return "DocumentEnd"
	case BlockSequenceStart:
		return "BlockSequenceStart"
	case BlockMappingStart:
		return "BlockMappingStart"
	case BlockEnd:
		return "BlockEnd"
	case FlowSequenceStart:
		return "FlowSequenceStart"
	case FlowSequenceEnd:
		return "FlowSequenceEnd"
	case FlowMappingStart:
		return "FlowMappingStart"
	case FlowMappingEnd:
		return "FlowMappingEnd"
	case BlockEntry:
		return "BlockEntry"
	case FlowEntry:
		return "FlowEntry"
	case Key:
		return "Key"
	case Value:
		return "Value"
	case Alias:
		return "Alias"
	case Anchor:
		return "Anchor"
	case Tag:
		return "Tag"
	case Scalar:
		return "Scalar"
	default:
		return "unknown token"
	}
}

// ScalarStyle is the lexical form a Scalar token was written in.
type ScalarStyle int8

const (
	AnyScalarStyle ScalarStyle = iota
	Plain
	SingleQuoted
	DoubleQuoted
	Literal
	Folded
)

func (s ScalarStyle) String() string {
	switch s {
	case Plain:
		return "Plain"
	case SingleQuoted:
		return "SingleQuoted"
	case DoubleQuoted:
		return "DoubleQuoted"
	case Literal:
		return "Literal"
	case Folded:
		return "Folded"
	default:
		return "AnyScalarStyle"
	}
}

// Token is a single lexical unit produced by the scanner. Only the fields
// relevant to Kind are populated; it plays the role of a tagged union the
// way yamlh.YamlToken does in the teacher scanner, since Go has no sum
// types.
type Token struct {
	Kind Kind

	StartMark, EndMark chars.Position

	// Encoding, for StreamStart.
	Encoding Encoding

	// Value holds the alias/anchor/scalar text, or the tag handle
	// (Alias, Anchor, Scalar, Tag, TagDirective).
	Value []byte

	// Suffix holds the tag suffix (Tag).
	Suffix []byte

	// Prefix holds the tag directive prefix (TagDirective).
	Prefix []byte

	// Style holds the scalar lexical style (Scalar).
	Style ScalarStyle

	// Major, Minor hold the %YAML directive version (VersionDirective).
	Major, Minor int8
}

// Text returns the decoded scalar/alias/anchor value as a string.
func (t Token) Text() string { return string(t.Value) }
