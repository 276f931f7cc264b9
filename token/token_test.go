package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saphyr-rs/saphyr-parser/token"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "Scalar", token.Scalar.String())
	assert.Equal(t, "BlockEnd", token.BlockEnd.String())
	assert.Equal(t, "unknown token", token.Kind(127).String())
}

func TestScalarStyleString(t *testing.T) {
	assert.Equal(t, "Plain", token.Plain.String())
	assert.Equal(t, "Folded", token.Folded.String())
	assert.Equal(t, "AnyScalarStyle", token.AnyScalarStyle.String())
}

func TestTokenText(t *testing.T) {
	tok := token.Token{Kind: token.Scalar, Value: []byte("hello"), Style: token.Plain}
	assert.Equal(t, "hello", tok.Text())
}
