// Package parsec is a small parser combinator library: a handful of
// primitive matchers and the combinators to compose them into
// backtracking recursive descent parsers over a string.
//
// A Parser runs against a State's cursor. It either advances the
// cursor past the text it consumed and returns a value, or returns a
// *Failure and leaves the cursor wherever it stopped. Restoring the
// cursor after a failure is the caller's job: the combinators that
// backtrack (Many, Choice, Longest, Optional, the first element of
// SepBy) save the offset before an attempt and put it back themselves,
// and nothing else does. Sequence and the mandatory elements of SepBy1
// let failure propagate with the cursor dirty.
package parsec

import (
	"regexp"
	"sync"
)

// A Parser consumes input at the State's cursor and returns the value
// it matched, or a *Failure.
type Parser func(s *State) (any, error)

func checkParsers(name string, ps []Parser) {
	for _, p := range ps {
		if p == nil {
			panic("parsec: " + name + " given a nil parser")
		}
	}
}

func checkParser(name string, p Parser) {
	if p == nil {
		panic("parsec: " + name + " given a nil parser")
	}
}

// End succeeds with an empty result only at the end of the input.
func End() Parser {
	return func(s *State) (any, error) {
		if !s.atEnd() {
			return failf(s.pos, "not at end of string")
		}
		return "", nil
	}
}

// Char matches the single byte c, returning it as a string.
func Char(c byte) Parser {
	return func(s *State) (any, error) {
		if s.atEnd() {
			return failf(s.pos, "unexpected end of string")
		}
		if s.input[s.pos] != c {
			return failf(s.pos, "expected %q, got %q", string(c), string(s.input[s.pos]))
		}
		s.pos++
		return string(c), nil
	}
}

// Literal matches lit exactly. The match is atomic: on a mismatch the
// cursor stays at the starting offset, with no partial advance.
func Literal(lit string) Parser {
	return func(s *State) (any, error) {
		end := s.pos + len(lit)
		if end > len(s.input) || s.input[s.pos:end] != lit {
			return failf(s.pos, "expected %q", lit)
		}
		s.pos = end
		return lit, nil
	}
}

// Pattern matches the regular expression expr anchored at the cursor
// and returns the matched text. A malformed expression is a grammar
// bug and panics at construction. At the end of the input Pattern
// fails outright, so a pattern that could match empty text cannot spin
// a repetition there.
func Pattern(expr string, ignoreCase bool) Parser {
	anchored := `^(?:` + expr + `)`
	if ignoreCase {
		anchored = `(?i)` + anchored
	}
	re := regexp.MustCompile(anchored)
	return func(s *State) (any, error) {
		if s.atEnd() {
			return failf(s.pos, "unexpected end of string")
		}
		loc := re.FindStringIndex(s.Remaining())
		if loc == nil {
			return failf(s.pos, "text does not match /%v/", expr)
		}
		matched := s.input[s.pos : s.pos+loc[1]]
		s.pos += loc[1]
		return matched, nil
	}
}

// Sequence runs each parser in order against the same cursor and
// returns their results as a []any, one per parser. The first failure
// propagates without a restore: the caller inherits whatever was
// consumed before it.
func Sequence(ps ...Parser) Parser {
	checkParsers("Sequence", ps)
	return func(s *State) (any, error) {
		out := make([]any, len(ps))
		for i, p := range ps {
			v, err := p(s)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
}

// Many applies p until it fails, then restores the cursor to the end
// of the last success and returns the accumulated results. It never
// fails itself, even with zero matches. A success that consumed
// nothing ends the loop, so a zero-width p cannot spin forever.
func Many(p Parser) Parser {
	checkParser("Many", p)
	return func(s *State) (any, error) {
		out := []any{}
		for {
			mark := s.pos
			v, err := p(s)
			if err != nil {
				if !IsFailure(err) {
					return nil, err
				}
				s.pos = mark
				return out, nil
			}
			out = append(out, v)
			if s.pos == mark {
				return out, nil
			}
		}
	}
}

// Many1 is p followed by Many(p). It fails exactly when the first
// application of p fails.
func Many1(p Parser) Parser {
	checkParser("Many1", p)
	rest := Many(p)
	return func(s *State) (any, error) {
		v, err := p(s)
		if err != nil {
			return nil, err
		}
		more, err := rest(s)
		if err != nil {
			return nil, err
		}
		return append([]any{v}, more.([]any)...), nil
	}
}

// Choice tries each alternative from the same offset and commits to
// the first one that succeeds, however little it consumed. When every
// alternative fails the cursor is restored to where the alternation
// began and the Failure is reported there. An empty Choice always
// fails.
func Choice(ps ...Parser) Parser {
	checkParsers("Choice", ps)
	return func(s *State) (any, error) {
		start := s.pos
		for _, p := range ps {
			v, err := p(s)
			if err == nil {
				return v, nil
			}
			if !IsFailure(err) {
				return nil, err
			}
			s.pos = start
		}
		s.pos = start
		return failf(start, "ran out of choices")
	}
}

// Longest evaluates every alternative from the same offset, restoring
// the cursor between attempts, and commits to the one that consumed
// the most input. Length comparison is strict, so a tie goes to the
// earliest alternative in the list. Use it where alternatives share a
// prefix (integers against floats, say); it costs every branch where
// Choice costs only the branches before the first match.
func Longest(ps ...Parser) Parser {
	checkParsers("Longest", ps)
	return func(s *State) (any, error) {
		start := s.pos
		best := -1
		var bestVal any
		for _, p := range ps {
			v, err := p(s)
			if err == nil {
				if n := s.pos - start; n > best {
					best, bestVal = n, v
				}
			} else if !IsFailure(err) {
				return nil, err
			}
			s.pos = start
		}
		if best < 0 {
			return failf(start, "ran out of choices")
		}
		s.pos = start + best
		return bestVal, nil
	}
}

// SepBy1 parses p, then sep-p pairs until sep stops matching,
// returning at least one result. A separator with nothing after it is
// malformed input: the trailing p's failure propagates uncaught.
func SepBy1(p, sep Parser) Parser {
	checkParser("SepBy1", p)
	checkParser("SepBy1", sep)
	return func(s *State) (any, error) {
		v, err := p(s)
		if err != nil {
			return nil, err
		}
		return sepTail(s, []any{v}, p, sep)
	}
}

// SepBy is SepBy1 that tolerates a failing first element, backtracking
// to an empty result. Only the first element gets that tolerance.
func SepBy(p, sep Parser) Parser {
	checkParser("SepBy", p)
	checkParser("SepBy", sep)
	return func(s *State) (any, error) {
		mark := s.pos
		v, err := p(s)
		if err != nil {
			if !IsFailure(err) {
				return nil, err
			}
			s.pos = mark
			return []any{}, nil
		}
		return sepTail(s, []any{v}, p, sep)
	}
}

func sepTail(s *State, out []any, p, sep Parser) (any, error) {
	for {
		mark := s.pos
		if _, err := sep(s); err != nil {
			if !IsFailure(err) {
				return nil, err
			}
			s.pos = mark
			return out, nil
		}
		v, err := p(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// Optional attempts p, backtracking to a nil result when it fails.
func Optional(p Parser) Parser {
	checkParser("Optional", p)
	return func(s *State) (any, error) {
		mark := s.pos
		v, err := p(s)
		if err != nil {
			if !IsFailure(err) {
				return nil, err
			}
			s.pos = mark
			return nil, nil
		}
		return v, nil
	}
}

// Map runs p and passes its value through fn. An error from fn is not
// a Failure: it propagates through any enclosing combinator without
// triggering backtracking.
func Map(p Parser, fn func(v any) (any, error)) Parser {
	checkParser("Map", p)
	return func(s *State) (any, error) {
		v, err := p(s)
		if err != nil {
			return nil, err
		}
		return fn(v)
	}
}

// Lazy defers building p until it first runs, breaking the
// construction cycle in recursive rules. build runs at most once, even
// across States.
func Lazy(build func() Parser) Parser {
	if build == nil {
		panic("parsec: Lazy given a nil builder")
	}
	var once sync.Once
	var p Parser
	return func(s *State) (any, error) {
		once.Do(func() {
			p = build()
		})
		return p(s)
	}
}

// Trace reports p's entry and exit offsets through the State's
// LogFunc. With no LogFunc set it is transparent.
func Trace(name string, p Parser) Parser {
	checkParser("Trace", p)
	return func(s *State) (any, error) {
		s.logf("%v: enter at %v", name, s.pos)
		v, err := p(s)
		if err != nil {
			s.logf("%v: fail at %v: %v", name, s.pos, err)
			return nil, err
		}
		s.logf("%v: match at %v", name, s.pos)
		return v, nil
	}
}
