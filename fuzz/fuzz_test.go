// Package fuzz exercises the scanner and parser against a corpus of real
// YAML documents, the way the teacher's fuzz/fuzz_test.go exercises
// decode/encode round-tripping against gopkg.in/yaml.v3. There is no
// second implementation to diverge against here, so the property under
// test is narrower: the scanner and parser must never panic, and must
// either produce a well-bracketed event stream ending in StreamEnd or
// return an error — never hang or leave dangling Start events.
package fuzz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saphyr-rs/saphyr-parser/input"
	"github.com/saphyr-rs/saphyr-parser/parser"
	"github.com/saphyr-rs/saphyr-parser/scanner"
	"github.com/saphyr-rs/saphyr-parser/token"
)

// seedCorpus carries over the plain-YAML members of the teacher's
// testData table (decode_test.go / fuzz/fuzz_test.go history): the
// entries that depend on byte-stream BOM sniffing or !!binary/timestamp
// resolution are dropped since those concerns live in the out-of-scope
// document loader (see DESIGN.md), not the scanner/parser this repo
// builds. The last handful come from spec.md §8's concrete scenarios.
var seedCorpus = []string{
	"{}",
	"v: hi",
	"v: true",
	"v: 10",
	"v: .inf",
	"v: -.inf",
	"123",
	"canonical: 6.8523e+5",
	"empty:",
	"canonical: ~",
	"~: null key",
	"seq: [A,B]",
	"seq: [A,B,C,]",
	"seq:\n - A\n - B",
	"scalar: | # Comment\n\n literal\n\n \ttext\n\n",
	"scalar: > # Comment\n\n folded\n line\n \n next\n line\n  * one\n  * two\n\n last\n line\n\n",
	"a: {b: c}",
	"a: {b: c, 1: d}",
	"a: [b,c,d]",
	"'1': '\"2\"'",
	"v:\n- A\n- 'B\n\n  C'\n",
	"v: !!float '1.1'",
	"%TAG !y! tag:yaml.org,2002:\n---\nv: !y!int '1'",
	"v: ! test",
	"a: &x 1\nb: &y 2\nc: *x\nd: *y\n",
	"a: &a {c: 1}\nb: *a",
	"a: &a [1, 2]\nb: *a",
	"foo: ''",
	"foo: null",
	"a: {b: https://example.com/go-yaml/yaml}",
	"a: <foo>",
	"a: 1:1\n",
	"a: 2015-01-01\n",
	"a: 2015-02-24T18:19:39.12Z\n",
	"First occurrence: &anchor Foo\nSecond occurrence: *anchor\nOverride anchor: &anchor Bar\nReuse anchor: *anchor\n",
	"---\nhello\n...\n",
	"[a: [42]]",
	"[{a: [42]}]",
	"- a:\n  - 42\n",
	"[:]",
	"[a:[42]]",
	`["a":[]]`,
	"{---",
	"- a\n- b\n",
}

// malformedSeeds are seeds expected to fail scanning or parsing; used by
// TestSeedCorpusParses to assert the error path is actually taken rather
// than silently swallowed.
var malformedSeeds = map[string]bool{
	"{---":     true,
	"[a:[42]]": true,
}

func FuzzScanAndParse(f *testing.F) {
	for _, s := range seedCorpus {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		scanNeverPanics(t, src)
		parseIsWellBracketed(t, src)
	})
}

// scanNeverPanics drains the scanner token-by-token; an Error return is
// fine (malformed input is expected from a fuzzer), a panic is not.
func scanNeverPanics(t *testing.T, src string) {
	t.Helper()
	sc := scanner.New(input.NewSlice(src))
	for i := 0; i < 100000; i++ {
		tok, err := sc.Token()
		if err != nil {
			return
		}
		if tok.Kind == token.StreamEnd {
			return
		}
	}
	t.Fatal("scanner did not terminate within token budget")
}

// parseIsWellBracketed drains events and checks the bracketing and flow
// balance invariants spec.md §8 names: the way the teacher's fuzz test
// checks round-trip equality against a second implementation, this test
// checks internal consistency, since there is no second implementation
// of this scanner/parser pair to diverge from.
func parseIsWellBracketed(t *testing.T, src string) {
	t.Helper()
	p := parser.New(scanner.New(input.NewSlice(src)))

	var stack []parser.Event
	flowBalance := 0
	for i := 0; i < 100000; i++ {
		ev, err := p.Event()
		if err != nil {
			return
		}
		switch ev.Kind {
		case parser.SequenceStart, parser.MappingStart:
			stack = append(stack, ev)
			if ev.CollectionStyle == parser.FlowStyle {
				flowBalance++
			}
		case parser.SequenceEnd:
			require.NotEmpty(t, stack, "SequenceEnd with no matching Start")
			require.Equal(t, parser.SequenceStart, stack[len(stack)-1].Kind)
			if stack[len(stack)-1].CollectionStyle == parser.FlowStyle {
				flowBalance--
			}
			stack = stack[:len(stack)-1]
			require.GreaterOrEqual(t, flowBalance, 0, "flow balance went negative")
		case parser.MappingEnd:
			require.NotEmpty(t, stack, "MappingEnd with no matching Start")
			require.Equal(t, parser.MappingStart, stack[len(stack)-1].Kind)
			if stack[len(stack)-1].CollectionStyle == parser.FlowStyle {
				flowBalance--
			}
			stack = stack[:len(stack)-1]
			require.GreaterOrEqual(t, flowBalance, 0, "flow balance went negative")
		case parser.StreamEnd:
			require.Empty(t, stack, "unterminated container at StreamEnd")
			require.Zero(t, flowBalance, "flow balance not zero at StreamEnd")
			return
		}
	}
	t.Fatal("parser did not terminate within event budget")
}

// TestSeedCorpusParses is a plain (non-fuzz) sanity check that every
// well-formed seed above actually parses to completion without error, so
// a seed typo fails a normal `go test` run instead of only surfacing
// under `go test -fuzz`.
func TestSeedCorpusParses(t *testing.T) {
	for _, s := range seedCorpus {
		s := s
		name := strings.TrimSpace(s)
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			p := parser.New(scanner.New(input.NewSlice(s)))
			var lastErr error
			for i := 0; i < 10000; i++ {
				ev, err := p.Event()
				if err != nil {
					lastErr = err
					break
				}
				if ev.Kind == parser.StreamEnd {
					break
				}
			}
			if malformedSeeds[s] {
				require.Error(t, lastErr)
			} else {
				require.NoError(t, lastErr)
			}
		})
	}
}
