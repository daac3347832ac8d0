package gomme

// And is the fundamental sequencing combinator (the "and-then"
// operator, conventionally spelled ~): it runs p, and on success runs q
// against whatever p left behind, combining both outputs into a
// PairContainer.
//
// Every other sequencing combinator in this file (DiscardLeft,
// DiscardRight, Pair, Preceded, Terminated, SeparatedPair, Enclose) is
// defined in terms of And so that the commit rule lives in exactly one
// place: if p consumes any input and q then fails, the failure is
// irrevocably committed — sequencing past non-zero consumption is an
// irrevocable commitment, regardless of whether q's own failure was
// already fatal.
func And[I Bytes, A, B any](p Parser[I, A], q Parser[I, B]) Parser[I, PairContainer[A, B]] {
	return func(input I) Result[PairContainer[A, B], I] {
		left := p(input)
		if left.Err != nil {
			return Failure[I, PairContainer[A, B]](left.Err, input)
		}

		right := q(left.Remaining)
		if right.Err != nil {
			fatal := right.Err.Fatal || consumed(input, left.Remaining) != 0
			return Failure[I, PairContainer[A, B]](right.Err.withFatal(fatal), input)
		}

		return Success[PairContainer[A, B], I](PairContainer[A, B]{left.Output, right.Output}, right.Remaining)
	}
}

// DiscardLeft (~>) runs p then q, keeping only q's output.
func DiscardLeft[I Bytes, A, B any](p Parser[I, A], q Parser[I, B]) Parser[I, B] {
	return Map(And(p, q), func(pair PairContainer[A, B]) (B, error) {
		return pair.Right, nil
	})
}

// DiscardRight (<~) runs p then q, keeping only p's output.
func DiscardRight[I Bytes, A, B any](p Parser[I, A], q Parser[I, B]) Parser[I, A] {
	return Map(And(p, q), func(pair PairContainer[A, B]) (A, error) {
		return pair.Left, nil
	})
}

// Pair runs leftParser then rightParser and returns both outputs.
func Pair[I Bytes, LO, RO any](leftParser Parser[I, LO], rightParser Parser[I, RO]) Parser[I, PairContainer[LO, RO]] {
	return And(leftParser, rightParser)
}

// Preceded parses and discards a result from the prefix parser, then
// parses and returns a result from the main parser.
func Preceded[I Bytes, OP, O any](prefix Parser[I, OP], parser Parser[I, O]) Parser[I, O] {
	return DiscardLeft(prefix, parser)
}

// Terminated parses a result from the main parser, then parses and
// discards a result from the suffix parser, returning only the main
// parser's output.
func Terminated[I Bytes, O, OS any](parser Parser[I, O], suffix Parser[I, OS]) Parser[I, O] {
	return DiscardRight(parser, suffix)
}

// SeparatedPair runs leftParser, then separator (discarded), then
// rightParser, returning the left and right outputs.
func SeparatedPair[I Bytes, LO, RO any, S Separator](leftParser Parser[I, LO], separator Parser[I, S], rightParser Parser[I, RO]) Parser[I, PairContainer[LO, RO]] {
	return And(leftParser, Preceded(separator, rightParser))
}

// Delimited parses and discards the result from the prefix parser, then
// parses the result of the main parser, and finally parses and discards
// the result of the suffix parser.
func Delimited[I Bytes, OP, O, OS any](prefix Parser[I, OP], parser Parser[I, O], suffix Parser[I, OS]) Parser[I, O] {
	return Terminated(Preceded(prefix, parser), suffix)
}

// Enclose parses left, then p, then right, yielding p's output. If right
// fails once left and p have both matched, the failure is committed by
// the ordinary And rule: mismatched brackets are reported in context
// rather than silently abandoned by an outer alternative.
func Enclose[I Bytes, OL any, O any, OR any](left Parser[I, OL], p Parser[I, O], right Parser[I, OR]) Parser[I, O] {
	return Delimited(left, p, right)
}

// Sequence runs parsers in order and collects their outputs. A failure
// partway through commits exactly as And would: once any prior parser
// in the chain consumed input, a later failure is fatal.
func Sequence[I Bytes, O any](parsers ...Parser[I, O]) Parser[I, []O] {
	return func(input I) Result[[]O, I] {
		remaining := input
		outputs := make([]O, 0, len(parsers))
		committed := false

		for _, parser := range parsers {
			res := parser(remaining)
			if res.Err != nil {
				fatal := res.Err.Fatal || committed
				return Failure[I, []O](res.Err.withFatal(fatal), input)
			}

			if consumed(remaining, res.Remaining) != 0 {
				committed = true
			}

			outputs = append(outputs, res.Output)
			remaining = res.Remaining
		}

		return Success[[]O, I](outputs, remaining)
	}
}
