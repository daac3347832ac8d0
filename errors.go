package gomme

import (
	"fmt"
	"unicode/utf8"
)

// Error describes why a Parser failed. Input anchors the failure's
// position: it is always a suffix of the buffer the top-level parse
// began with, so the absolute offset of a failure is
// len(fullBuffer) - len(Input).
//
// Fatal is the commit flag. A fatal Error disables the fallback branch
// of Alternative: once a parser has irrevocably consumed input on the
// way to failing, backtracking past that point would hide the real
// cause of the error behind an unrelated sibling branch. Attempt is the
// only combinator that clears Fatal once set. And (and everything built
// on it), Sequence and Bind set it when a failure follows consumed
// input; Map, Many0 and Many1 raise fatal errors directly through
// NewFatalError.
type Error[I Bytes] struct {
	Input   I
	Message string
	Fatal   bool
}

// NewError creates a non-fatal (uncommitted) parser error. This is the
// shape every primitive parser fails with: a plain mismatch that leaves
// an enclosing Alternative free to try the next branch.
func NewError[I Bytes](input I, message string) *Error[I] {
	return &Error[I]{Input: input, Message: message}
}

// NewFatalError creates a fatal (committed) parser error directly,
// bypassing the usual route of commitment through And/Sequence. Used by
// combinators such as Map when the transformation function itself fails
// after a successful parse: input was already consumed productively, so
// there is no sensible fallback to try.
func NewFatalError[I Bytes](input I, message string) *Error[I] {
	return &Error[I]{Input: input, Message: message, Fatal: true}
}

// Error implements the error interface.
func (e *Error[I]) Error() string {
	return e.Message
}

// IsFatal reports whether this error is committed.
func (e *Error[I]) IsFatal() bool {
	return e.Fatal
}

// withMessage returns a shallow copy of e with Message replaced.
func (e *Error[I]) withMessage(msg string) *Error[I] {
	clone := *e
	clone.Message = msg
	return &clone
}

// withFatal returns a shallow copy of e with Fatal forced to the given
// value.
func (e *Error[I]) withFatal(fatal bool) *Error[I] {
	if e.Fatal == fatal {
		return e
	}
	clone := *e
	clone.Fatal = fatal
	return &clone
}

// Label replaces a failing parser's message unconditionally, regardless
// of whether the underlying failure is already committed. Use it at a
// grammar rule's boundary to give the user a rule-level phrase instead of
// whatever a primitive deep inside produced.
func Label[I Bytes, O any](msg string, p Parser[I, O]) Parser[I, O] {
	return func(input I) Result[O, I] {
		res := p(input)
		if res.Err != nil {
			res.Err = res.Err.withMessage(msg)
		}
		return res
	}
}

// Tag appends msg to a failing parser's existing message. Where Label
// replaces, Tag accumulates context as a failure bubbles up through
// nested grammar rules.
func Tag[I Bytes, O any](msg string, p Parser[I, O]) Parser[I, O] {
	return func(input I) Result[O, I] {
		res := p(input)
		if res.Err != nil {
			res.Err = res.Err.withMessage(res.Err.Message + msg)
		}
		return res
	}
}

// MapFailure installs msg as a failing parser's message only if it
// doesn't already have one. This promotes a primitive's bare mismatch
// (an empty message) to grammar-level phrasing without overwriting a
// more specific diagnostic raised further down the call stack.
func MapFailure[I Bytes, O any](msg string, p Parser[I, O]) Parser[I, O] {
	return func(input I) Result[O, I] {
		res := p(input)
		if res.Err != nil && res.Err.Message == "" {
			res.Err = res.Err.withMessage(msg)
		}
		return res
	}
}

// RenderDiagnostic wraps a failing parser's message into the final
// user-facing form: "Error (<offset>): Found '<c>' but <message>". It is
// meant to be applied exactly once, at the top of a grammar, which is
// why Parse (driver.go) applies it for callers rather than asking
// grammar authors to remember to.
func RenderDiagnostic[I Bytes, O any](p Parser[I, O]) Parser[I, O] {
	return func(input I) Result[O, I] {
		res := p(input)
		if res.Err == nil {
			return res
		}

		offset := consumed(input, res.Err.Input)
		ch := firstChar(res.Err.Input)
		res.Err = res.Err.withMessage(fmt.Sprintf("Error (%d): Found '%s' but %s", offset, ch, res.Err.Message))
		return res
	}
}

// firstChar returns the character at the start of v as a string, or the
// empty string if v is empty (end-of-input position).
func firstChar[I Bytes](v I) string {
	switch x := any(v).(type) {
	case string:
		if x == "" {
			return ""
		}
		r, _ := utf8.DecodeRuneInString(x)
		return string(r)
	case []byte:
		if len(x) == 0 {
			return ""
		}
		r, _ := utf8.DecodeRune(x)
		return string(r)
	default:
		return ""
	}
}
