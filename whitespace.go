package gomme

import "regexp"

// spacesPattern matches a (possibly empty) run of whitespace.
var spacesPattern = regexp.MustCompile(`[ \t\r\n]*`)

// Spaces parses zero or more whitespace characters, always succeeding.
func Spaces[I Bytes]() Parser[I, string] {
	return Regexp[I](spacesPattern)
}

// Trim skips a leading and trailing run of skip around p, yielding only
// p's output. skip is expected to be a parser that never fails (such as
// Spaces), since a failing skip would make Trim fail too.
func Trim[I Bytes, S, O any](skip Parser[I, S], p Parser[I, O]) Parser[I, O] {
	return DiscardRight(DiscardLeft(skip, p), skip)
}

// TrimSpaces skips leading and trailing whitespace around p.
func TrimSpaces[I Bytes, O any](p Parser[I, O]) Parser[I, O] {
	return Trim[I](Spaces[I](), p)
}
