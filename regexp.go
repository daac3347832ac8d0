package gomme

import "regexp"

// Regexp parses the input against a compiled regular expression anchored
// at the current position: on success it yields the matched substring
// and consumes its length; on mismatch it fails uncommitted with an
// empty message. re need not itself contain a leading "^" — Regexp
// always requires the match to start at index 0 of the remaining input.
func Regexp[I Bytes](re *regexp.Regexp) Parser[I, string] {
	return func(input I) Result[string, I] {
		s := asString(input)
		loc := re.FindStringIndex(s)
		if loc == nil || loc[0] != 0 {
			return Failure[I, string](NewError(input, ""), input)
		}
		return Success[string, I](s[:loc[1]], advance(input, loc[1]))
	}
}
