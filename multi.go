package gomme

// Count runs parse exactly count times in a row. It fails on the k-th
// failure (0 <= k < count); when count <= 0 it succeeds immediately with
// an empty slice and consumes nothing.
func Count[I Bytes, O any](parse Parser[I, O], count int) Parser[I, []O] {
	return func(input I) Result[[]O, I] {
		if count <= 0 {
			return Success[[]O, I](nil, input)
		}

		outputs := make([]O, 0, count)
		remaining := input
		for i := 0; i < count; i++ {
			result := parse(remaining)
			if result.Err != nil {
				return Failure[I, []O](result.Err, input)
			}

			outputs = append(outputs, result.Output)
			remaining = result.Remaining
		}

		return Success[[]O, I](outputs, remaining)
	}
}

// Many0 applies parse repeatedly until it fails, returning every
// successful output in input order. A failure of parse never makes
// Many0 fail: on the first failure of parse it returns everything
// accumulated so far. The loop is explicit rather than recursive so that
// arbitrarily long input does not grow the call stack.
//
// If parse ever succeeds while consuming zero input, the loop would spin
// forever; callers are responsible for not passing such a parser (such
// as Spaces or Alphanumeric0), but Many0 still guards against it
// defensively and reports a fatal error rather than hanging.
func Many0[I Bytes, O any](parse Parser[I, O]) Parser[I, []O] {
	return func(input I) Result[[]O, I] {
		results := []O{}

		remaining := input
		for {
			res := parse(remaining)
			if res.Err != nil {
				return Success[[]O, I](results, remaining)
			}

			if consumed(remaining, res.Remaining) == 0 {
				return Failure[I, []O](NewFatalError(input, "Many0: parser succeeded without consuming input"), input)
			}

			results = append(results, res.Output)
			remaining = res.Remaining
		}
	}
}

// Many1 behaves like Many0 but requires at least one success.
func Many1[I Bytes, O any](parse Parser[I, O]) Parser[I, []O] {
	return func(input I) Result[[]O, I] {
		first := parse(input)
		if first.Err != nil {
			return Failure[I, []O](first.Err, input)
		}

		if consumed(input, first.Remaining) == 0 {
			return Failure[I, []O](NewFatalError(input, "Many1: parser succeeded without consuming input"), input)
		}

		results := []O{first.Output}
		remaining := first.Remaining

		for {
			res := parse(remaining)
			if res.Err != nil {
				return Success[[]O, I](results, remaining)
			}

			if consumed(remaining, res.Remaining) == 0 {
				return Failure[I, []O](NewFatalError(input, "Many1: parser succeeded without consuming input"), input)
			}

			results = append(results, res.Output)
			remaining = res.Remaining
		}
	}
}

// List parses zero or more occurrences of parse separated by separator.
// It tries parse once; an uncommitted failure of that first attempt is
// treated as "no elements" and yields an empty slice without consuming
// anything, exactly as an uncommitted branch of Alternative would be
// skipped. A committed failure of the first (or any later) element
// propagates normally — List only ever offers the empty-sequence
// fallback for a clean, zero-consumption mismatch, never for a
// partially-matched element that went on to fail, so that a malformed
// element inside brackets is reported in place rather than silently
// discarded in favor of a duller "missing closing bracket" diagnostic.
//
// Once at least one element has matched, a later failing separator ends
// the list successfully; a failing element after a separator backs off
// to the position before that separator, which is what makes a trailing
// separator illegal.
func List[I Bytes, O any, S Separator](parse Parser[I, O], separator Parser[I, S]) Parser[I, []O] {
	return func(input I) Result[[]O, I] {
		first := parse(input)
		if first.Err != nil {
			if first.Err.Fatal {
				return Failure[I, []O](first.Err, input)
			}
			return Success[[]O, I](nil, input)
		}

		results := []O{first.Output}
		remaining := first.Remaining

		for {
			sepRes := separator(remaining)
			if sepRes.Err != nil {
				return Success[[]O, I](results, remaining)
			}

			elemRes := parse(sepRes.Remaining)
			if elemRes.Err != nil {
				if elemRes.Err.Fatal {
					return Failure[I, []O](elemRes.Err, input)
				}
				return Success[[]O, I](results, remaining)
			}

			results = append(results, elemRes.Output)
			remaining = elemRes.Remaining
		}
	}
}
