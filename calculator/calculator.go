package calculator

import (
	"strings"
	"unicode"

	"github.com/arrenn/parsec"
)

// expr   ::= term   ( ('+' | '-') term )*
// term   ::= factor ( ('*' | '/') factor )*
// factor ::= number
//          | '(' expr ')'
//          | '-' number
//          | '-' '(' expr ')'
//          | '-' expr
//
// The two sub-expression-lowering rules in factor (number, paren) come
// before the general "-" expr catch-all because each is an Attempt: if
// the "-" commits and the specific shape that follows doesn't match, the
// failure is demoted back to uncommitted so the next alternative still
// gets a turn. The general "-" expr rule is last and left un-attempted,
// since nothing follows it for a demoted failure to fall through to.

func addSubOp() gomme.Parser[string, Op] {
	return gomme.Alternative(
		gomme.Assign(Plus, gomme.Token[string]("+")),
		gomme.Assign(Minus, gomme.Token[string]("-")),
	)
}

func mulDivOp() gomme.Parser[string, Op] {
	return gomme.Alternative(
		gomme.Assign(Times, gomme.Token[string]("*")),
		gomme.Assign(Div, gomme.Token[string]("/")),
	)
}

func numberExprParser() gomme.Parser[string, Expr] {
	return gomme.Map(gomme.Number[string](), func(n float64) (Expr, error) {
		return NumberExpr(n), nil
	})
}

func parenExprParser() gomme.Parser[string, Expr] {
	return func(input string) gomme.Result[Expr, string] {
		return gomme.Enclose(gomme.Token[string]("("), exprParser(), gomme.Token[string](")"))(input)
	}
}

func negatedNumberParser() gomme.Parser[string, Expr] {
	return gomme.Map(gomme.DiscardLeft(gomme.Token[string]("-"), gomme.Number[string]()), func(n float64) (Expr, error) {
		return BinOp(Times, NumberExpr(n), NumberExpr(-1)), nil
	})
}

func negatedParenParser() gomme.Parser[string, Expr] {
	return gomme.Map(gomme.DiscardLeft(gomme.Token[string]("-"), parenExprParser()), func(e Expr) (Expr, error) {
		return BinOp(Times, e, NumberExpr(-1)), nil
	})
}

func negatedExprParser() gomme.Parser[string, Expr] {
	return func(input string) gomme.Result[Expr, string] {
		return gomme.Map(gomme.DiscardLeft(gomme.Token[string]("-"), exprParser()), func(e Expr) (Expr, error) {
			return BinOp(Times, e, NumberExpr(-1)), nil
		})(input)
	}
}

// factorParser is a thunk, like the sub-parsers above, because factor
// mutually recurses with expr through the parenthesized and unary-minus
// branches.
func factorParser() gomme.Parser[string, Expr] {
	return func(input string) gomme.Result[Expr, string] {
		return gomme.Alternative(
			numberExprParser(),
			parenExprParser(),
			gomme.Attempt(negatedNumberParser()),
			gomme.Attempt(negatedParenParser()),
			negatedExprParser(),
		)(input)
	}
}

// foldLeft runs first, then repeatedly runs op paired with next,
// left-folding each (operator, operand) pair into an accumulator via
// BinOp. It is the shared shape behind both expr and term: a strictly
// left-associative chain with no precedence climbing beyond the
// expr/term split itself.
func foldLeft(first gomme.Parser[string, Expr], op gomme.Parser[string, Op], next gomme.Parser[string, Expr]) gomme.Parser[string, Expr] {
	return func(input string) gomme.Result[Expr, string] {
		head := first(input)
		if head.Err != nil {
			return gomme.Failure[string, Expr](head.Err, input)
		}

		rest := gomme.Many0(gomme.Pair(op, next))(head.Remaining)
		if rest.Err != nil {
			return gomme.Failure[string, Expr](rest.Err, input)
		}

		acc := head.Output
		for _, pair := range rest.Output {
			acc = BinOp(pair.Left, acc, pair.Right)
		}
		return gomme.Success[Expr, string](acc, rest.Remaining)
	}
}

func termParser() gomme.Parser[string, Expr] {
	return func(input string) gomme.Result[Expr, string] {
		return foldLeft(factorParser(), mulDivOp(), factorParser())(input)
	}
}

func exprParser() gomme.Parser[string, Expr] {
	return func(input string) gomme.Result[Expr, string] {
		return foldLeft(termParser(), addSubOp(), termParser())(input)
	}
}

// Parse parses an arithmetic expression from input and evaluates it,
// requiring the entire input to be consumed. All whitespace is stripped
// before parsing begins rather than skipped token-by-token, so "- - 1"
// and "--1" are indistinguishable to the grammar and both fold to 1.
// On success it returns the result and an empty diagnostic string; on
// failure it returns 0 and the rendered diagnostic string.
func Parse(input string) (float64, string) {
	stripped := stripWhitespace(input)

	result := gomme.Parse[string, Expr](exprParser())(stripped)
	if result.Err != nil {
		return 0, result.Err.Error()
	}
	return Eval(result.Output), ""
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
