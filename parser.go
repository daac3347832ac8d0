// Package gomme implements a small parser combinator core: a generic
// parser type, the success/failure result it produces, and the
// composition operators used to build grammars out of primitives.
//
// A Parser[I, O] is a pure function from an input suffix to a Result.
// Parsers hold no mutable state and can be freely shared and reused; the
// only state threaded through a parse is the shrinking input value I
// itself, which is always a suffix of whatever buffer the top-level
// caller started with. That invariant is what lets every error carry an
// accurate position: the offset of a failure is simply the number of
// units consumed before it, which is recoverable as
// len(full) - len(failure.Input).
package gomme

// Bytes is the set of input representations a Parser can run over.
// Slicing either representation is O(1) and preserves the "suffix of the
// original buffer" property the package relies on for position tracking.
type Bytes interface {
	~string | ~[]byte
}

// Separator is the constraint used for the second type parameter of
// combinators that consume but discard a delimiter (List, SeparatedPair).
// It is intentionally unconstrained: separators can themselves produce
// any payload, which is simply thrown away.
type Separator interface {
	any
}

// Parser parses a value of type O from an input of type I. On success it
// returns the parsed value together with whatever input remains after
// consumption. On failure it returns a non-nil Err describing why, and by
// convention Remaining is set back to the parser's own entry input so
// that a caller that only looks at Remaining sees no partial consumption
// — the Err.Input field is what pinpoints exactly where inside the
// attempt things went wrong.
type Parser[I Bytes, O any] func(input I) Result[O, I]

// Result is the outcome of running a Parser against an input value.
type Result[O any, I Bytes] struct {
	Output    O
	Err       *Error[I]
	Remaining I
}

// Success builds a Result reporting a parsed value and the input left
// after consuming it.
func Success[O any, I Bytes](output O, remaining I) Result[O, I] {
	return Result[O, I]{Output: output, Remaining: remaining}
}

// Failure builds a Result reporting a parse error. input is the value
// the failing parser was entered with (not the deeper position the error
// itself was raised at); by convention this is what ends up in
// Result.Remaining so that failed parsers never appear to have consumed
// anything to their caller.
func Failure[I Bytes, O any](err *Error[I], input I) Result[O, I] {
	return Result[O, I]{Err: err, Remaining: input}
}

// consumed returns how many input units were consumed going from start
// to remaining. Both must be suffixes of the same buffer.
func consumed[I Bytes](start, remaining I) int {
	return length(start) - length(remaining)
}

// length returns the length, in input units, of an I value. Both members
// of the Bytes type set share string's core type for this purpose, so
// the builtin len is usable directly on the type parameter.
func length[I Bytes](v I) int {
	return len(v)
}
