package json

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/arrenn/parsec"
)

// stringBodyPattern matches the raw, still-escaped contents of a JSON
// string literal between its quotes.
var stringBodyPattern = regexp.MustCompile(`(?:[^"\\]|\\[\\"/bfnrtu])*`)

func stringLiteral() gomme.Parser[string, string] {
	raw := gomme.Delimited(
		gomme.Char[string]('"'),
		gomme.Regexp[string](stringBodyPattern),
		gomme.Char[string]('"'),
	)
	return gomme.Map(raw, decodeEscapes)
}

// decodeEscapes replaces every recognized escape sequence in a raw JSON
// string body with its literal character, decoding \uXXXX escapes to
// their code point and joining UTF-16 surrogate pairs into a single
// rune where one is present.
func decodeEscapes(raw string) (string, error) {
	runes := []rune(raw)
	out := make([]rune, 0, len(runes))

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			out = append(out, r)
			continue
		}

		i++
		if i >= len(runes) {
			return "", fmt.Errorf("dangling escape at end of string")
		}

		switch runes[i] {
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		case '/':
			out = append(out, '/')
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'u':
			cp, consumed, err := decodeUnicodeEscape(runes, i+1)
			if err != nil {
				return "", err
			}
			i += consumed
			out = append(out, cp)
		default:
			return "", fmt.Errorf("unknown escape sequence \\%c", runes[i])
		}
	}

	return string(out), nil
}

// decodeUnicodeEscape reads the four hex digits starting at pos and, if
// they form a high surrogate immediately followed by a low-surrogate
// \uXXXX escape, consumes that second escape too and combines both
// halves into the single code point they represent.
func decodeUnicodeEscape(runes []rune, pos int) (rune, int, error) {
	if pos+4 > len(runes) {
		return 0, 0, fmt.Errorf("incomplete unicode escape")
	}

	hi, err := strconv.ParseUint(string(runes[pos:pos+4]), 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid unicode escape: %w", err)
	}
	consumed := 4

	cp := rune(hi)
	if cp >= 0xD800 && cp <= 0xDBFF {
		pairStart := pos + 4
		if pairStart+6 <= len(runes) && runes[pairStart] == '\\' && runes[pairStart+1] == 'u' {
			lo, err := strconv.ParseUint(string(runes[pairStart+2:pairStart+6]), 16, 32)
			if err == nil && lo >= 0xDC00 && lo <= 0xDFFF {
				cp = ((cp - 0xD800) << 10) + (rune(lo) - 0xDC00) + 0x10000
				consumed += 6
			}
		}
	}

	return cp, consumed, nil
}

func nullParser() gomme.Parser[string, Value] {
	return gomme.Assign(Null(), gomme.Token[string]("null"))
}

func boolParser() gomme.Parser[string, Value] {
	return gomme.Alternative(
		gomme.Assign(Bool(true), gomme.Token[string]("true")),
		gomme.Assign(Bool(false), gomme.Token[string]("false")),
	)
}

func numberParser() gomme.Parser[string, Value] {
	return gomme.Map(gomme.Number[string](), func(n float64) (Value, error) {
		return Number(n), nil
	})
}

func stringValueParser() gomme.Parser[string, Value] {
	return gomme.Map(stringLiteral(), func(s string) (Value, error) {
		return String(s), nil
	})
}

// valueParser is the value ::= null | bool | number | string | array |
// object production. It is a thunk rather than a package-level var so
// that array/object can recurse into it without a Go initialization
// cycle.
func valueParser() gomme.Parser[string, Value] {
	return func(input string) gomme.Result[Value, string] {
		alternatives := gomme.MapFailure("illegal start of JSON value", gomme.Alternative(
			nullParser(),
			boolParser(),
			numberParser(),
			stringValueParser(),
			arrayParser(),
			objectParser(),
		))
		return gomme.TrimSpaces[string](alternatives)(input)
	}
}

func arrayParser() gomme.Parser[string, Value] {
	return func(input string) gomme.Result[Value, string] {
		p := gomme.Delimited(
			gomme.Token[string]("["),
			gomme.List[string, Value, string](valueParser(), gomme.Token[string](",")),
			gomme.MapFailure("expected ']'", gomme.TrimSpaces[string](gomme.Token[string]("]"))),
		)
		return gomme.Map(p, func(items []Value) (Value, error) {
			if items == nil {
				items = []Value{}
			}
			return Array(items), nil
		})(input)
	}
}

func pairParser() gomme.Parser[string, Member] {
	p := gomme.SeparatedPair[string, string, Value, string](
		gomme.TrimSpaces[string](stringLiteral()),
		gomme.TrimSpaces[string](gomme.Token[string](":")),
		valueParser(),
	)
	return gomme.Map(p, func(kv gomme.PairContainer[string, Value]) (Member, error) {
		return Member{Key: kv.Left, Value: kv.Right}, nil
	})
}

func objectParser() gomme.Parser[string, Value] {
	return func(input string) gomme.Result[Value, string] {
		p := gomme.Delimited(
			gomme.Token[string]("{"),
			gomme.List[string, Member, string](pairParser(), gomme.Token[string](",")),
			gomme.MapFailure("expected '}'", gomme.TrimSpaces[string](gomme.Token[string]("}"))),
		)
		return gomme.Map(p, func(members []Member) (Value, error) {
			obj := NewObject()
			for _, m := range members {
				obj.Set(m.Key, m.Value)
			}
			return Obj(obj), nil
		})(input)
	}
}

// Parse parses a JSON value from input, requiring the entire input to
// be consumed. On success it returns the parsed Value and an empty
// diagnostic string; on failure it returns the zero Value and the
// rendered diagnostic string.
func Parse(input string) (Value, string) {
	result := gomme.Parse[string, Value](valueParser())(input)
	if result.Err != nil {
		return Value{}, result.Err.Error()
	}
	return result.Output, ""
}
