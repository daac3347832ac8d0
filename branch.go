package gomme

// Or tries p and, if it fails uncommitted, tries q against the original
// input and returns its outcome verbatim. If p fails committed, q is
// never attempted and p's failure is returned unchanged — this is the
// core ordered-choice discipline the rest of the package's alternation
// relies on (Alternative is its n-ary generalization below).
func Or[I Bytes, O any](p, q Parser[I, O]) Parser[I, O] {
	return func(input I) Result[O, I] {
		res := p(input)
		if res.Err == nil || res.Err.Fatal {
			return res
		}
		return q(input)
	}
}

// Alternative tries each parser in order and returns the first success.
//
// If a branch fails uncommitted, the next branch is tried against the
// original input. If a branch fails committed (Fatal), iteration stops
// immediately and that failure is returned as-is — the grammar was
// already invested in that branch, and falling through would turn a
// specific diagnostic into a vague "nothing matched".
func Alternative[I Bytes, O any](parsers ...Parser[I, O]) Parser[I, O] {
	return func(input I) Result[O, I] {
		var res Result[O, I]
		for _, p := range parsers {
			res = p(input)
			if res.Err == nil || res.Err.Fatal {
				return res
			}
		}
		return res
	}
}

// Attempt runs p and, if it fails committed, demotes the failure back to
// uncommitted before returning it. This is the only way to request
// unbounded lookahead across a sub-grammar: wrapping a branch in Attempt
// lets an enclosing Alternative or Or still fall through to the next
// candidate even after the wrapped branch consumed input on its way to
// failing.
func Attempt[I Bytes, O any](p Parser[I, O]) Parser[I, O] {
	return func(input I) Result[O, I] {
		res := p(input)
		if res.Err != nil && res.Err.Fatal {
			res.Err = res.Err.withFatal(false)
		}
		return res
	}
}
