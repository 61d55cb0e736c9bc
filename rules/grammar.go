package rules

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The rule file grammar is:
//
//	File = (Rule (EOL Rule)*)? .
//	Rule = <id> ":" Body .
//	Body = <string> | Expression .
//	Expression = Sequence ("|" Sequence)* .
//	Sequence = Term+ .
//	Term = (<id> | "(" Expression ")") "+"? .
//
// The grouping and "+" forms only appear in hand written override bodies
// such as "( 42 )+".
var (
	ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "EOL", Pattern: `[ \t]*(?:\r?\n[ \t]*)+`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
		{Name: "ID", Pattern: `[A-Za-z0-9_]+`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Punct", Pattern: `[:|()+]`},
	})
	parserOptions = []participle.Option{
		participle.Lexer(ruleLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	}
	fileParser = participle.MustBuild[ruleFile](parserOptions...)
	bodyParser = participle.MustBuild[ruleBody](parserOptions...)
)

type ruleFile struct {
	Rules []*ruleDef `parser:"( @@ ( EOL @@ )* )?"`
}

type ruleDef struct {
	Pos lexer.Position

	ID   string    `parser:"@ID \":\""`
	Body *ruleBody `parser:"@@"`
}

type ruleBody struct {
	Pos lexer.Position

	Literal    *string     `parser:"  @String"`
	Expression *expression `parser:"| @@"`
}

type expression struct {
	Alternatives []*sequence `parser:"@@ ( \"|\" @@ )*"`
}

type sequence struct {
	Terms []*term `parser:"@@+"`
}

type term struct {
	Ref   string      `parser:"(   @ID"`
	Group *expression `parser:"  | \"(\" @@ \")\" )"`

	Plus bool `parser:"@\"+\"?"`
}

func (b *ruleBody) node() (Node, error) {
	if b.Literal != nil {
		if utf8.RuneCountInString(*b.Literal) != 1 {
			return nil, errorf(ErrMalformedGrammar, "", b.Pos, "literal %q must be a single character", *b.Literal)
		}
		return Literal(*b.Literal), nil
	}
	return b.Expression.node(), nil
}

func (e *expression) node() Node {
	alternatives := make([]Node, 0, len(e.Alternatives))
	for _, seq := range e.Alternatives {
		alternatives = append(alternatives, seq.node())
	}
	return alt(alternatives...)
}

func (s *sequence) node() Node {
	terms := make([]Node, 0, len(s.Terms))
	for _, t := range s.Terms {
		terms = append(terms, t.node())
	}
	return concat(terms...)
}

func (t *term) node() Node {
	var n Node
	if t.Group != nil {
		n = t.Group.node()
	} else {
		n = Ref(t.Ref)
	}
	if t.Plus {
		return Plus{Node: n}
	}
	return n
}

// Parse a rule table, one "<id>: <body>" rule per line.
func Parse(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data))
}

// ParseString parses a rule table from a string.
func ParseString(s string) (*Table, error) {
	file, err := fileParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return nil, malformed(err)
	}
	rules := make([]*Rule, 0, len(file.Rules))
	for _, def := range file.Rules {
		body, err := def.Body.node()
		if err != nil {
			err.(*Error).Rule = def.ID
			return nil, err
		}
		rules = append(rules, &Rule{ID: def.ID, Body: body, Pos: def.Pos})
	}
	return NewTable(rules...)
}

// ParseBody parses a single rule body, eg. `42 31 | 42 42 31 31` or `"a"`.
func ParseBody(s string) (Node, error) {
	body, err := bodyParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return nil, malformed(err)
	}
	return body.node()
}

// MustParseBody is like ParseBody but panics on error.
func MustParseBody(s string) Node {
	n, err := ParseBody(s)
	if err != nil {
		panic(err)
	}
	return n
}
