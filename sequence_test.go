package gomme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAndCommitsOnLeftConsumption(t *testing.T) {
	t.Parallel()

	p := And(Token[string]("+"), Digits[string]())

	result := p("+x")
	assert.NotNil(t, result.Err)
	assert.True(t, result.Err.IsFatal())
	assert.Equal(t, "+x", result.Remaining, "failure rewinds Remaining to the combinator's own entry input")
}

func TestAndSucceeds(t *testing.T) {
	t.Parallel()

	p := And(Token[string]("+"), Digits[string]())

	result := p("+123,")
	assert.Nil(t, result.Err)
	assert.Equal(t, "+", result.Output.Left)
	assert.Equal(t, "123", result.Output.Right)
	assert.Equal(t, ",", result.Remaining)
}

func TestDiscardLeft(t *testing.T) {
	t.Parallel()

	p := DiscardLeft(Token[string]("("), Digits[string]())

	result := p("(42)")
	assert.Nil(t, result.Err)
	assert.Equal(t, "42", result.Output)
	assert.Equal(t, ")", result.Remaining)
}

func TestDiscardRight(t *testing.T) {
	t.Parallel()

	p := DiscardRight(Digits[string](), Token[string](")"))

	result := p("42)")
	assert.Nil(t, result.Err)
	assert.Equal(t, "42", result.Output)
	assert.Equal(t, "", result.Remaining)
}

func TestDelimited(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		input         string
		wantErr       bool
		wantFatal     bool
		wantOutput    string
		wantRemaining string
	}{
		{
			name:          "matching parser should succeed",
			input:         "+1\r\n",
			wantErr:       false,
			wantOutput:    "1",
			wantRemaining: "",
		},
		{
			name:          "no prefix match should fail uncommitted",
			input:         "1\r\n",
			wantErr:       true,
			wantFatal:     false,
			wantRemaining: "1\r\n",
		},
		{
			name:          "no body match should fail committed",
			input:         "+\r\n",
			wantErr:       true,
			wantFatal:     true,
			wantRemaining: "+\r\n",
		},
		{
			name:          "no suffix match should fail committed",
			input:         "+1",
			wantErr:       true,
			wantFatal:     true,
			wantRemaining: "+1",
		},
	}

	p := Delimited(Token[string]("+"), Digits[string](), CRLF[string]())

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gotResult := p(tc.input)
			assert.Equal(t, tc.wantErr, gotResult.Err != nil)
			if tc.wantErr {
				assert.Equal(t, tc.wantFatal, gotResult.Err.IsFatal())
			} else {
				assert.Equal(t, tc.wantOutput, gotResult.Output)
			}
			assert.Equal(t, tc.wantRemaining, gotResult.Remaining)
		})
	}
}

func TestEnclose(t *testing.T) {
	t.Parallel()

	p := Enclose(Token[string]("["), Digits[string](), Token[string]("]"))

	result := p("[7]rest")
	assert.Nil(t, result.Err)
	assert.Equal(t, "7", result.Output)
	assert.Equal(t, "rest", result.Remaining)
}

func TestPair(t *testing.T) {
	t.Parallel()

	p := Pair(Digits[string](), Token[string](","))

	result := p("1,2")
	assert.Nil(t, result.Err)
	assert.Equal(t, "1", result.Output.Left)
	assert.Equal(t, ",", result.Output.Right)
	assert.Equal(t, "2", result.Remaining)
}

func TestPreceded(t *testing.T) {
	t.Parallel()

	p := Preceded(Token[string](":"), Digits[string]())

	result := p(":99")
	assert.Nil(t, result.Err)
	assert.Equal(t, "99", result.Output)
	assert.Equal(t, "", result.Remaining)
}

func TestTerminated(t *testing.T) {
	t.Parallel()

	p := Terminated(Digits[string](), Token[string](";"))

	result := p("99;")
	assert.Nil(t, result.Err)
	assert.Equal(t, "99", result.Output)
	assert.Equal(t, "", result.Remaining)
}

func TestSeparatedPair(t *testing.T) {
	t.Parallel()

	p := SeparatedPair(Digits[string](), Token[string](":"), Digits[string]())

	result := p("12:34")
	assert.Nil(t, result.Err)
	assert.Equal(t, "12", result.Output.Left)
	assert.Equal(t, "34", result.Output.Right)
	assert.Equal(t, "", result.Remaining)
}

func TestSequence(t *testing.T) {
	t.Parallel()

	p := Sequence(Token[string]("a"), Token[string]("b"), Token[string]("c"))

	result := p("abcd")
	assert.Nil(t, result.Err)
	assert.Equal(t, []string{"a", "b", "c"}, result.Output)
	assert.Equal(t, "d", result.Remaining)
}

func TestSequenceCommitsAfterFirstMatch(t *testing.T) {
	t.Parallel()

	p := Sequence(Token[string]("a"), Token[string]("b"), Token[string]("c"))

	result := p("axc")
	assert.NotNil(t, result.Err)
	assert.True(t, result.Err.IsFatal())
}
