package gomme

import "unicode/utf8"

// firstRune decodes the first rune of v and its width in input units. A
// width of 0 signals an empty input.
func firstRune[I Bytes](v I) (rune, int) {
	switch x := any(v).(type) {
	case string:
		if x == "" {
			return 0, 0
		}
		r, w := utf8.DecodeRuneInString(x)
		return r, w
	case []byte:
		if len(x) == 0 {
			return 0, 0
		}
		r, w := utf8.DecodeRune(x)
		return r, w
	default:
		return 0, 0
	}
}

// advance returns v with the first n input units dropped.
func advance[I Bytes](v I, n int) I {
	switch x := any(v).(type) {
	case string:
		return any(x[n:]).(I)
	case []byte:
		return any(x[n:]).(I)
	default:
		return v
	}
}

// sliceTo returns the first n input units of v.
func sliceTo[I Bytes](v I, n int) I {
	switch x := any(v).(type) {
	case string:
		return any(x[:n]).(I)
	case []byte:
		return any(x[:n]).(I)
	default:
		return v
	}
}

// asString returns v's content as a string, regardless of whether I is
// instantiated as string or []byte.
func asString[I Bytes](v I) string {
	switch x := any(v).(type) {
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return ""
	}
}

// Token parses a provided literal string. It succeeds with tag itself
// and consumed = len(tag) iff the input at the current position begins
// with tag; otherwise it fails uncommitted with an empty message —
// human-readable phrasing is the job of higher-level combinators
// (Label, Tag, MapFailure) so that errors cluster at the grammar rule
// that "owns" the expectation rather than at the primitive that happened
// to notice the mismatch.
func Token[I Bytes](tag string) Parser[I, string] {
	return func(input I) Result[string, I] {
		s := asString(input)
		if len(s) < len(tag) || s[:len(tag)] != tag {
			return Failure[I, string](NewError(input, ""), input)
		}
		return Success[string, I](tag, advance(input, len(tag)))
	}
}

// TakeWhileOneOf parses the longest run of runes present in collection.
func TakeWhileOneOf[I Bytes](collection ...rune) Parser[I, string] {
	index := make(map[rune]struct{}, len(collection))
	for _, r := range collection {
		index[r] = struct{}{}
	}

	return func(input I) Result[string, I] {
		s := asString(input)
		pos := 0
		for pos < len(s) {
			r, w := utf8.DecodeRuneInString(s[pos:])
			if _, ok := index[r]; !ok {
				break
			}
			pos += w
		}
		if pos == 0 {
			return Failure[I, string](NewError(input, ""), input)
		}
		return Success[string, I](s[:pos], advance(input, pos))
	}
}

// TakeWhileMN parses a run of between m and n runes (inclusive) that
// satisfy match, failing if fewer than m are found.
func TakeWhileMN[I Bytes](m, n int, match func(rune) bool) Parser[I, string] {
	return func(input I) Result[string, I] {
		s := asString(input)
		pos, count := 0, 0
		for pos < len(s) && count < n {
			r, w := utf8.DecodeRuneInString(s[pos:])
			if !match(r) {
				break
			}
			pos += w
			count++
		}
		if count < m {
			return Failure[I, string](NewError(input, ""), input)
		}
		return Success[string, I](s[:pos], advance(input, pos))
	}
}

// IsHexDigit reports whether r is a valid hexadecimal digit.
func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Alphanumeric0 parses zero or more ASCII letters or digits, never
// failing (it succeeds with the empty string on no match).
func Alphanumeric0[I Bytes]() Parser[I, string] {
	return func(input I) Result[string, I] {
		res := Alphanumeric1[I]()(input)
		if res.Err != nil {
			return Success[string, I]("", input)
		}
		return res
	}
}

// Alphanumeric1 parses one or more ASCII letters or digits.
func Alphanumeric1[I Bytes]() Parser[I, string] {
	return TakeWhile1[I](func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
	})
}

// TakeWhile1 parses the longest non-empty run of runes satisfying match.
func TakeWhile1[I Bytes](match func(rune) bool) Parser[I, string] {
	return func(input I) Result[string, I] {
		s := asString(input)
		pos := 0
		for pos < len(s) {
			r, w := utf8.DecodeRuneInString(s[pos:])
			if !match(r) {
				break
			}
			pos += w
		}
		if pos == 0 {
			return Failure[I, string](NewError(input, ""), input)
		}
		return Success[string, I](s[:pos], advance(input, pos))
	}
}

// EOF succeeds with an empty string and consumes nothing iff the input
// is exhausted; otherwise it fails uncommitted.
func EOF[I Bytes]() Parser[I, string] {
	return func(input I) Result[string, I] {
		if length(input) != 0 {
			return Failure[I, string](NewError(input, ""), input)
		}
		return Success[string, I]("", input)
	}
}
