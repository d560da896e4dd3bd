// Package calc evaluates arithmetic expressions, as an example of a
// grammar built on top of parsec. It supports + - * /, parentheses,
// unary minus, and both integer and decimal literals with the usual
// precedence.
package calc

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/tef/parsec"
)

// grammar, with expression reached recursively through factor:
//
//	expression = term (("+" | "-") term)*
//	term       = factor (("*" | "/") factor)*
//	factor     = "-" factor | number | "(" expression ")"
var grammar = parsec.Sequence(
	parsec.Optional(blank()),
	expression(),
	parsec.End(),
)

// Eval parses src and evaluates it. Parse failures render as
// "parse error: ... at position ...", wrapped with the input for
// context; division by zero is an evaluation error, not a parse
// failure.
func Eval(src string) (float64, error) {
	v, err := grammar(parsec.New(src))
	if err != nil {
		return 0, errors.Wrapf(err, "eval %q", src)
	}
	return v.([]any)[1].(float64), nil
}

func blank() parsec.Parser {
	return parsec.Pattern(`[ \t]+`, false)
}

// token runs p and eats trailing blanks, keeping p's value.
func token(p parsec.Parser) parsec.Parser {
	return parsec.Map(
		parsec.Sequence(p, parsec.Optional(blank())),
		func(v any) (any, error) {
			return v.([]any)[0], nil
		},
	)
}

// number accepts integer and decimal literals. An integer prefix of a
// decimal makes the alternatives ambiguous, so this is longest-match
// alternation rather than ordered choice: "2.5" must not stop at "2".
func number() parsec.Parser {
	integer := parsec.Map(
		parsec.Pattern(`[0-9]+`, false),
		func(v any) (any, error) {
			n, err := strconv.ParseInt(v.(string), 10, 64)
			if err != nil {
				return nil, errors.Wrap(err, "bad integer literal")
			}
			return float64(n), nil
		},
	)
	decimal := parsec.Map(
		parsec.Pattern(`[0-9]+\.[0-9]+([eE][+-]?[0-9]+)?`, false),
		func(v any) (any, error) {
			f, err := strconv.ParseFloat(v.(string), 64)
			if err != nil {
				return nil, errors.Wrap(err, "bad decimal literal")
			}
			return f, nil
		},
	)
	return token(parsec.Longest(integer, decimal))
}

func factor() parsec.Parser {
	negated := parsec.Map(
		parsec.Sequence(
			token(parsec.Char('-')),
			parsec.Lazy(factor),
		),
		func(v any) (any, error) {
			return -v.([]any)[1].(float64), nil
		},
	)
	parens := parsec.Map(
		parsec.Sequence(
			token(parsec.Char('(')),
			parsec.Lazy(expression),
			token(parsec.Char(')')),
		),
		func(v any) (any, error) {
			return v.([]any)[1], nil
		},
	)
	return parsec.Choice(negated, number(), parens)
}

func term() parsec.Parser {
	op := parsec.Choice(token(parsec.Char('*')), token(parsec.Char('/')))
	return parsec.Map(
		parsec.Sequence(factor(), parsec.Many(parsec.Sequence(op, factor()))),
		foldLeft,
	)
}

func expression() parsec.Parser {
	op := parsec.Choice(token(parsec.Char('+')), token(parsec.Char('-')))
	return parsec.Map(
		parsec.Sequence(term(), parsec.Many(parsec.Sequence(op, term()))),
		foldLeft,
	)
}

// foldLeft reduces [head, [[op, operand], ...]] left to right, so
// subtraction and division associate the way they should.
func foldLeft(v any) (any, error) {
	seq := v.([]any)
	acc := seq[0].(float64)
	for _, pair := range seq[1].([]any) {
		op := pair.([]any)[0].(string)
		rhs := pair.([]any)[1].(float64)
		switch op {
		case "+":
			acc += rhs
		case "-":
			acc -= rhs
		case "*":
			acc *= rhs
		case "/":
			if rhs == 0 {
				return nil, errors.New("division by zero")
			}
			acc /= rhs
		}
	}
	return acc, nil
}
