package parser_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saphyr-rs/saphyr-parser/input"
	"github.com/saphyr-rs/saphyr-parser/parser"
	"github.com/saphyr-rs/saphyr-parser/scanner"
)

func parseAll(t *testing.T, src string) []parser.Event {
	t.Helper()
	p := parser.New(scanner.New(input.NewSlice(src)))
	var evs []parser.Event
	for {
		ev, err := p.Event()
		require.NoError(t, err)
		evs = append(evs, ev)
		if ev.Kind == parser.StreamEnd {
			return evs
		}
	}
}

func eventKinds(evs []parser.Event) []parser.Kind {
	out := make([]parser.Kind, len(evs))
	for i, e := range evs {
		out[i] = e.Kind
	}
	return out
}

func TestParseScalarDocument(t *testing.T) {
	evs := parseAll(t, "hello\n")
	require.Equal(t, []parser.Kind{
		parser.StreamStart, parser.DocumentStart, parser.Scalar, parser.DocumentEnd, parser.StreamEnd,
	}, eventKinds(evs))
	require.Equal(t, "hello", evs[2].Value)
	require.True(t, evs[1].Implicit)
}

func TestParseBlockMapping(t *testing.T) {
	evs := parseAll(t, "a: 1\nb: 2\n")
	require.Equal(t, []parser.Kind{
		parser.StreamStart, parser.DocumentStart,
		parser.MappingStart,
		parser.Scalar, parser.Scalar,
		parser.Scalar, parser.Scalar,
		parser.MappingEnd,
		parser.DocumentEnd, parser.StreamEnd,
	}, eventKinds(evs))
	require.Equal(t, "a", evs[3].Value)
	require.Equal(t, "1", evs[4].Value)
	require.Equal(t, "b", evs[5].Value)
	require.Equal(t, "2", evs[6].Value)
}

func TestParseBlockSequence(t *testing.T) {
	evs := parseAll(t, "- a\n- b\n")
	require.Equal(t, []parser.Kind{
		parser.StreamStart, parser.DocumentStart,
		parser.SequenceStart,
		parser.Scalar, parser.Scalar,
		parser.SequenceEnd,
		parser.DocumentEnd, parser.StreamEnd,
	}, eventKinds(evs))
}

func TestParseFlowCollections(t *testing.T) {
	evs := parseAll(t, "{a: [1, 2], b: 3}\n")
	kinds := eventKinds(evs)
	require.Equal(t, parser.StreamStart, kinds[0])
	require.Equal(t, parser.MappingStart, kinds[2])
	require.Contains(t, kinds, parser.SequenceStart)
	require.Contains(t, kinds, parser.SequenceEnd)
	require.Equal(t, parser.MappingEnd, kinds[len(kinds)-3])
}

func TestParseAnchorAndAlias(t *testing.T) {
	evs := parseAll(t, "- &a foo\n- *a\n")
	require.Equal(t, []parser.Kind{
		parser.StreamStart, parser.DocumentStart,
		parser.SequenceStart,
		parser.Scalar, parser.Alias,
		parser.SequenceEnd,
		parser.DocumentEnd, parser.StreamEnd,
	}, eventKinds(evs))
	anchorScalar := evs[3]
	alias := evs[4]
	require.NotZero(t, anchorScalar.Anchor)
	require.Equal(t, anchorScalar.Anchor, alias.AliasOf)
}

func TestParseUndefinedAliasIsNotValidatedByParser(t *testing.T) {
	evs := parseAll(t, "*missing\n")
	require.Equal(t, parser.Alias, evs[2].Kind)
	require.NotZero(t, evs[2].AliasOf)
}

func TestParseMultiDocumentStream(t *testing.T) {
	evs := parseAll(t, "---\na\n...\n---\nb\n...\n")
	require.Equal(t, []parser.Kind{
		parser.StreamStart,
		parser.DocumentStart, parser.Scalar, parser.DocumentEnd,
		parser.DocumentStart, parser.Scalar, parser.DocumentEnd,
		parser.StreamEnd,
	}, eventKinds(evs))
	require.False(t, evs[1].Implicit)
	require.False(t, evs[3].Implicit)
}

func TestParseAnchorResetsBetweenDocuments(t *testing.T) {
	evs := parseAll(t, "---\n&a x\n---\n&a y\n")
	first := evs[2]
	second := evs[5]
	require.Equal(t, first.Anchor, second.Anchor)
}

func TestParseTagResolutionWithCustomHandle(t *testing.T) {
	evs := parseAll(t, "%TAG !e! tag:example.com,2000:\n---\n!e!foo bar\n")
	var scalar parser.Event
	for _, ev := range evs {
		if ev.Kind == parser.Scalar {
			scalar = ev
		}
	}
	require.Equal(t, "tag:example.com,2000:", scalar.Tag.Prefix)
	require.Equal(t, "foo", scalar.Tag.Suffix)
}

func TestParseDefaultSecondaryTagHandle(t *testing.T) {
	evs := parseAll(t, "!!str 42\n")
	var scalar parser.Event
	for _, ev := range evs {
		if ev.Kind == parser.Scalar {
			scalar = ev
		}
	}
	require.Equal(t, "tag:yaml.org,2002:", scalar.Tag.Prefix)
	require.Equal(t, "str", scalar.Tag.Suffix)
}

func TestParseUndefinedTagHandleErrors(t *testing.T) {
	p := parser.New(scanner.New(input.NewSlice("!e!foo bar\n")))
	var err error
	for {
		var ev parser.Event
		ev, err = p.Event()
		if err != nil || ev.Kind == parser.StreamEnd {
			break
		}
	}
	require.Error(t, err)
}

func TestParseEmptyBlockMappingValue(t *testing.T) {
	evs := parseAll(t, "key:\n")
	require.Equal(t, []parser.Kind{
		parser.StreamStart, parser.DocumentStart,
		parser.MappingStart,
		parser.Scalar, parser.Scalar,
		parser.MappingEnd,
		parser.DocumentEnd, parser.StreamEnd,
	}, eventKinds(evs))
	require.Equal(t, "key", evs[3].Value)
	require.Equal(t, "", evs[4].Value)
}

func TestParseFlowSequenceOfMappings(t *testing.T) {
	evs := parseAll(t, "[{a: 1}, {b: 2}]\n")
	kinds := eventKinds(evs)
	require.Equal(t, parser.SequenceStart, kinds[2])
	require.Equal(t, parser.MappingStart, kinds[3])
}

func TestNextDocumentAssignsDistinctIDs(t *testing.T) {
	p := parser.New(scanner.New(input.NewSlice("---\na\n...\n---\nb\n...\n")))

	first, err := p.NextDocument()
	require.NoError(t, err)
	require.Equal(t, parser.DocumentStart, first.Events[0].Kind)
	require.Equal(t, parser.DocumentEnd, first.Events[len(first.Events)-1].Kind)

	second, err := p.NextDocument()
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	_, err = p.NextDocument()
	require.ErrorIs(t, err, io.EOF)
}

func TestAnchorsSnapshot(t *testing.T) {
	p := parser.New(scanner.New(input.NewSlice("- &a foo\n- *a\n")))
	var anchors map[string]parser.AnchorID
	for {
		ev, err := p.Event()
		require.NoError(t, err)
		if ev.Kind == parser.Alias {
			anchors = p.Anchors()
		}
		if ev.Kind == parser.StreamEnd {
			break
		}
	}
	require.Contains(t, anchors, "a")
}

func TestParseIncompatibleVersionDirectiveErrors(t *testing.T) {
	p := parser.New(scanner.New(input.NewSlice("%YAML 2.0\n---\nfoo\n")))
	var err error
	for {
		var ev parser.Event
		ev, err = p.Event()
		if err != nil || ev.Kind == parser.StreamEnd {
			break
		}
	}
	require.Error(t, err)
}
