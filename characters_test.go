package gomme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChar(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		input         string
		wantErr       bool
		wantOutput    rune
		wantRemaining string
	}{
		{name: "matching single char succeeds", input: "a", wantOutput: 'a', wantRemaining: ""},
		{name: "matching char in longer input succeeds", input: "abc", wantOutput: 'a', wantRemaining: "bc"},
		{name: "non-matching char fails", input: "123", wantErr: true, wantRemaining: "123"},
		{name: "empty input fails", input: "", wantErr: true, wantRemaining: ""},
	}

	p := Char[string]('a')

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result := p(tc.input)
			assert.Equal(t, tc.wantErr, result.Err != nil)
			assert.Equal(t, tc.wantOutput, result.Output)
			assert.Equal(t, tc.wantRemaining, result.Remaining)
		})
	}
}

func TestAnyChar(t *testing.T) {
	t.Parallel()

	p := AnyChar[string]()

	result := p("abc")
	assert.Nil(t, result.Err)
	assert.Equal(t, 'a', result.Output)
	assert.Equal(t, "bc", result.Remaining)

	result = p("")
	assert.NotNil(t, result.Err)
}

func TestDigit0(t *testing.T) {
	t.Parallel()

	p := Digit0[string]()

	result := p("9abc")
	assert.Nil(t, result.Err)
	assert.Equal(t, 9, result.Output)
	assert.Equal(t, "abc", result.Remaining)

	result = p("abc")
	assert.NotNil(t, result.Err)
	assert.Equal(t, "abc", result.Remaining)
}

func TestAlpha1(t *testing.T) {
	t.Parallel()

	p := Alpha1[string]()

	result := p("a1")
	assert.Nil(t, result.Err)
	assert.Equal(t, 'a', result.Output)
	assert.Equal(t, "1", result.Remaining)

	result = p("1a")
	assert.NotNil(t, result.Err)
}

func TestLF(t *testing.T) {
	t.Parallel()

	result := LF[string]()("\nrest")
	assert.Nil(t, result.Err)
	assert.Equal(t, "\n", result.Output)
	assert.Equal(t, "rest", result.Remaining)
}

func TestCR(t *testing.T) {
	t.Parallel()

	result := CR[string]()("\rrest")
	assert.Nil(t, result.Err)
	assert.Equal(t, "\r", result.Output)
	assert.Equal(t, "rest", result.Remaining)
}

func TestCRLF(t *testing.T) {
	t.Parallel()

	result := CRLF[string]()("\r\nrest")
	assert.Nil(t, result.Err)
	assert.Equal(t, "\r\n", result.Output)
	assert.Equal(t, "rest", result.Remaining)

	result = CRLF[string]()("\rrest")
	assert.NotNil(t, result.Err)
}

func TestNewline(t *testing.T) {
	t.Parallel()

	p := Newline[string]()

	result := p("\n")
	assert.Nil(t, result.Err)
	assert.Equal(t, "\n", result.Output)

	result = p("\r\n")
	assert.Nil(t, result.Err)
	assert.Equal(t, "\r\n", result.Output)

	result = p("x")
	assert.NotNil(t, result.Err)
	assert.Equal(t, "new line", result.Err.Error())
}

func TestSpace(t *testing.T) {
	t.Parallel()

	result := Space[string]()(" x")
	assert.Nil(t, result.Err)
	assert.Equal(t, ' ', result.Output)
	assert.Equal(t, "x", result.Remaining)
}

func TestTab(t *testing.T) {
	t.Parallel()

	result := Tab[string]()("\tx")
	assert.Nil(t, result.Err)
	assert.Equal(t, '\t', result.Output)
	assert.Equal(t, "x", result.Remaining)
}
