package parsec

// State is the cursor for one parse: the input text and the current
// scan offset. Every Parser in a session reads and advances the same
// State. One State must never be shared between overlapping parses;
// separate States are fully independent.
type State struct {
	input string
	pos   int

	// LogFunc receives Trace output when set. Nil means no logging.
	LogFunc func(format string, args ...any)
}

// New returns a State positioned at the start of input. An empty input
// is fine; Reset can supply text later.
func New(input string) *State {
	return &State{input: input}
}

// Reset rewinds the offset to zero, replacing the input text when a
// new one is given. It returns the State so the next parse can chain
// off it. Only call between parses, never while one is running.
func (s *State) Reset(input ...string) *State {
	if len(input) > 0 {
		s.input = input[0]
	}
	s.pos = 0
	return s
}

// Pos returns the current scan offset.
func (s *State) Pos() int {
	return s.pos
}

// Remaining returns the unconsumed tail of the input.
func (s *State) Remaining() string {
	return s.input[s.pos:]
}

func (s *State) atEnd() bool {
	return s.pos >= len(s.input)
}

func (s *State) logf(format string, args ...any) {
	if s.LogFunc != nil {
		s.LogFunc(format, args...)
	}
}
