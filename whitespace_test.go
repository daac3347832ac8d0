package gomme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpaces(t *testing.T) {
	t.Parallel()

	result := Spaces[string]()("   x")
	assert.Nil(t, result.Err)
	assert.Equal(t, "   ", result.Output)
	assert.Equal(t, "x", result.Remaining)

	result = Spaces[string]()("x")
	assert.Nil(t, result.Err)
	assert.Equal(t, "", result.Output)
	assert.Equal(t, "x", result.Remaining)
}

func TestTrimSpaces(t *testing.T) {
	t.Parallel()

	p := TrimSpaces[string](Digits[string]())

	result := p("  123  rest")
	assert.Nil(t, result.Err)
	assert.Equal(t, "123", result.Output)
	assert.Equal(t, "rest", result.Remaining)
}
