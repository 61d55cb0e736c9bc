package rules

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Kinds of grammar failure. Every error returned by this package wraps exactly one of these.
var (
	ErrMalformedGrammar  = errors.New("malformed grammar")
	ErrUnknownIdentifier = errors.New("unknown rule identifier")
	ErrCyclicGrammar     = errors.New("cyclic grammar")
)

// Error describes an invalid rule table.
//
// It satisfies participle.Error, so callers can treat syntax and semantic failures uniformly.
type Error struct {
	Kind error
	// Rule the error relates to, if known.
	Rule string
	Pos  lexer.Position
	Msg  string
}

var _ participle.Error = (*Error)(nil)

func (e *Error) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Message without position information.
func (e *Error) Message() string { return e.Msg }

// Position of the offending rule, or the zero Position for rules without a source.
func (e *Error) Position() lexer.Position { return e.Pos }

func (e *Error) Unwrap() error { return e.Kind }

var noPos lexer.Position

func errorf(kind error, rule string, pos lexer.Position, format string, args ...interface{}) error {
	return &Error{Kind: kind, Rule: rule, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Convert a participle failure into a MalformedGrammar error.
func malformed(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &Error{Kind: ErrMalformedGrammar, Pos: perr.Position(), Msg: perr.Message()}
	}
	return &Error{Kind: ErrMalformedGrammar, Msg: err.Error()}
}
