package tokenize

// State is a cursor over the raw token list
type State interface {
	Pos() int                 // current position
	Args() []string           // entire token list
	CurrentArg() string       // token at the current position
	Peek() string             // next token without advancing
	Remaining() []string      // tokens after the current position, verbatim
	Advance() bool            // move to the next token, false at the end
	Len() int                 // length of the token list
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned before the first token
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the token list
func (s *DefaultState) Pos() int {
	return s.pos
}

// Args returns the entire token list
func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the token at the current position
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Peek returns the next token without advancing the current position
func (s *DefaultState) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}

	return ""
}

// Remaining returns the tokens after the current position
func (s *DefaultState) Remaining() []string {
	if s.pos+1 >= len(s.args) {
		return nil
	}
	return s.args[s.pos+1:]
}

// Advance moves to the next token, returning true if one exists
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Len returns the length of the token list
func (s *DefaultState) Len() int {
	return len(s.args)
}
