// Package json reads JSON documents with a parsec grammar, as an
// example of separator-based and recursive rules. Objects become
// map[string]any, arrays []any, numbers float64; string contents are
// kept as written, escapes and all.
package json

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/tef/parsec"
)

var document = parsec.Map(
	parsec.Sequence(ws(), value(), parsec.End()),
	func(v any) (any, error) {
		return v.([]any)[1], nil
	},
)

// Parse reads a single JSON value spanning the whole of src.
func Parse(src string) (any, error) {
	v, err := document(parsec.New(src))
	if err != nil {
		return nil, errors.Wrap(err, "parse json")
	}
	return v, nil
}

func ws() parsec.Parser {
	return parsec.Optional(parsec.Pattern(`[ \t\r\n]+`, false))
}

func tok(lit string) parsec.Parser {
	return parsec.Map(
		parsec.Sequence(parsec.Literal(lit), ws()),
		func(v any) (any, error) {
			return v.([]any)[0], nil
		},
	)
}

func value() parsec.Parser {
	return parsec.Choice(
		array(),
		object(),
		str(),
		number(),
		parsec.Map(tok("true"), func(any) (any, error) { return true, nil }),
		parsec.Map(tok("false"), func(any) (any, error) { return false, nil }),
		parsec.Map(tok("null"), func(any) (any, error) { return nil, nil }),
	)
}

func array() parsec.Parser {
	return parsec.Map(
		parsec.Sequence(
			tok("["),
			parsec.SepBy(parsec.Lazy(value), tok(",")),
			tok("]"),
		),
		func(v any) (any, error) {
			return v.([]any)[1], nil
		},
	)
}

func object() parsec.Parser {
	member := parsec.Map(
		parsec.Sequence(str(), tok(":"), parsec.Lazy(value)),
		func(v any) (any, error) {
			seq := v.([]any)
			return [2]any{seq[0], seq[2]}, nil
		},
	)
	return parsec.Map(
		parsec.Sequence(
			tok("{"),
			parsec.SepBy(member, tok(",")),
			tok("}"),
		),
		func(v any) (any, error) {
			members := v.([]any)[1].([]any)
			m := make(map[string]any, len(members))
			for _, kv := range members {
				pair := kv.([2]any)
				m[pair[0].(string)] = pair[1]
			}
			return m, nil
		},
	)
}

func str() parsec.Parser {
	lit := parsec.Pattern(`"(\\u[0-9a-fA-F]{4}|\\["\\/bfnrt]|[^"\\])*"`, false)
	return parsec.Map(
		parsec.Sequence(lit, ws()),
		func(v any) (any, error) {
			q := v.([]any)[0].(string)
			return q[1 : len(q)-1], nil
		},
	)
}

func number() parsec.Parser {
	lit := parsec.Pattern(`-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?`, false)
	return parsec.Map(
		parsec.Sequence(lit, ws()),
		func(v any) (any, error) {
			f, err := strconv.ParseFloat(v.([]any)[0].(string), 64)
			if err != nil {
				return nil, errors.Wrap(err, "bad number literal")
			}
			return f, nil
		},
	)
}
