package gomme

// Map runs p and, on success, replaces its output with f(output). f may
// itself fail (for example, a string-to-number conversion that rejects
// malformed input); such a failure is reported as fatal, since p already
// consumed input productively to produce the value f rejected.
func Map[I Bytes, A, B any](p Parser[I, A], f func(A) (B, error)) Parser[I, B] {
	return func(input I) Result[B, I] {
		res := p(input)
		if res.Err != nil {
			return Failure[I, B](res.Err, input)
		}

		out, err := f(res.Output)
		if err != nil {
			return Failure[I, B](NewFatalError(input, err.Error()), input)
		}

		return Success[B, I](out, res.Remaining)
	}
}

// Assign runs p, discards its output, and substitutes value in its
// place. Useful for keyword-like parsers whose only job is to recognize
// a fixed token ("null", "true") and report a fixed result.
func Assign[I Bytes, A, B any](value B, p Parser[I, A]) Parser[I, B] {
	return Map(p, func(A) (B, error) { return value, nil })
}

// Bind runs p and passes its output to f, which produces the next parser
// to run. Unlike Map, f has access to the full parser machinery rather
// than just a pure transformation — it can branch the grammar based on
// what was just parsed.
//
// Commit propagation: if p consumed any input, the combined outcome is
// marked fatal regardless of what the continuation parser itself
// reports. Entering the continuation at all is the commitment; an
// uncommitted p (zero consumption) leaves the door open for Attempt to
// still back out of everything that follows.
func Bind[I Bytes, A, B any](p Parser[I, A], f func(A) Parser[I, B]) Parser[I, B] {
	return func(input I) Result[B, I] {
		res := p(input)
		if res.Err != nil {
			return Failure[I, B](res.Err, input)
		}

		next := f(res.Output)
		out := next(res.Remaining)
		if out.Err != nil {
			fatal := out.Err.Fatal || consumed(input, res.Remaining) != 0
			return Failure[I, B](out.Err.withFatal(fatal), input)
		}

		return out
	}
}

// Optional applies p and, if it fails uncommitted, succeeds with the
// zero value of O instead of propagating the failure. A committed
// failure still propagates: Optional only absorbs "this alternative
// branch" misses, not "the input is malformed" ones.
func Optional[I Bytes, O any](p Parser[I, O]) Parser[I, O] {
	return func(input I) Result[O, I] {
		res := p(input)
		if res.Err != nil && !res.Err.Fatal {
			var zero O
			return Success[O, I](zero, input)
		}
		return res
	}
}
