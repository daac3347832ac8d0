package gomme

import (
	"regexp"
	"strconv"
)

// digitsPattern matches one or more decimal digits.
var digitsPattern = regexp.MustCompile(`[0-9]+`)

// Digits parses one or more digits, yielding them as the matched
// substring (callers fold it into an integer themselves, since the raw
// digit string is also what JSON-style number grammars need verbatim).
func Digits[I Bytes]() Parser[I, string] {
	return Label("digits", Regexp[I](digitsPattern))
}

// numberPattern is the JSON-compatible signed decimal grammar: an
// optional sign, an integral part with no leading zero (unless the
// integral part is exactly "0"), an optional fractional part, and an
// optional exponent.
var numberPattern = regexp.MustCompile(`(-?)(0|([1-9][0-9]*))(\.[0-9]+)?([Ee]([+-]?)(0|([1-9][0-9]*)))?`)

// Number parses a JSON-compatible signed decimal literal and converts it
// to a float64. The pattern admits no leading zeros and no "0x…" forms:
// on "01" or "0x1F" it matches only the "0" and leaves the rest of the
// input unconsumed.
func Number[I Bytes]() Parser[I, float64] {
	return Map(Regexp[I](numberPattern), func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}
