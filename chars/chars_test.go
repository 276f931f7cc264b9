package chars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saphyr-rs/saphyr-parser/chars"
)

func TestPredicates(t *testing.T) {
	cases := []struct {
		name string
		c    rune
		fn   func(rune) bool
		want bool
	}{
		{"blank space", ' ', chars.IsBlank, true},
		{"blank tab", '\t', chars.IsBlank, true},
		{"blank letter", 'a', chars.IsBlank, false},
		{"break lf", '\n', chars.IsBreak, true},
		{"break cr", '\r', chars.IsBreak, true},
		{"break nul", 0, chars.IsBreak, false},
		{"breakz nul", 0, chars.IsBreakz, true},
		{"z nul", 0, chars.IsZ, true},
		{"z non-nul", 'x', chars.IsZ, false},
		{"flow comma", ',', chars.IsFlow, true},
		{"flow bracket", '[', chars.IsFlow, true},
		{"flow other", 'x', chars.IsFlow, false},
		{"digit", '5', chars.IsDigit, true},
		{"digit non", 'x', chars.IsDigit, false},
		{"alpha letter", 'Q', chars.IsAlpha, true},
		{"alpha dash", '-', chars.IsAlpha, true},
		{"alpha underscore", '_', chars.IsAlpha, true},
		{"alpha colon", ':', chars.IsAlpha, false},
		{"hex digit", 'F', chars.IsHex, true},
		{"hex non", 'G', chars.IsHex, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.fn(c.c))
		})
	}
}

func TestAsDigitAndHex(t *testing.T) {
	assert.Equal(t, 7, chars.AsDigit('7'))
	assert.Equal(t, 10, chars.AsHex('a'))
	assert.Equal(t, 10, chars.AsHex('A'))
	assert.Equal(t, 15, chars.AsHex('f'))
}

func TestPositionAdvance(t *testing.T) {
	p := chars.Position{Line: 1}
	p.Advance(1)
	p.Advance(1)
	assert.Equal(t, chars.Position{Index: 2, Line: 1, Column: 2}, p)

	p.AdvanceLine(1)
	assert.Equal(t, chars.Position{Index: 3, Line: 2, Column: 0}, p)
}

func TestPositionString(t *testing.T) {
	p := chars.Position{Index: 9, Line: 3, Column: 4}
	assert.Equal(t, "byte 9 line 3 column 5", p.String())
}
