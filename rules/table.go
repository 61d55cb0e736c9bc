package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// A Rule maps an identifier to its body.
type Rule struct {
	ID   string
	Body Node
	// Pos is where the rule was defined. It is the zero value for overrides.
	Pos lexer.Position
}

// Table of rules keyed by identifier.
//
// A Table is never modified after construction.
type Table struct {
	rules map[string]*Rule
	order []string
}

// NewTable creates a Table, rejecting duplicate identifiers.
func NewTable(rules ...*Rule) (*Table, error) {
	t := &Table{rules: make(map[string]*Rule, len(rules))}
	for _, rule := range rules {
		if rule.Body == nil {
			return nil, errorf(ErrMalformedGrammar, rule.ID, rule.Pos, "rule %s has no body", rule.ID)
		}
		if prev, ok := t.rules[rule.ID]; ok {
			return nil, errorf(ErrMalformedGrammar, rule.ID, rule.Pos, "rule %s redefined (previous definition at %s)", rule.ID, prev.Pos)
		}
		t.rules[rule.ID] = rule
		t.order = append(t.order, rule.ID)
	}
	return t, nil
}

// Get a rule by identifier.
func (t *Table) Get(id string) (*Rule, bool) {
	rule, ok := t.rules[id]
	return rule, ok
}

// IDs in definition order.
func (t *Table) IDs() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of rules.
func (t *Table) Len() int { return len(t.order) }

// With returns a copy of the table with the given rule bodies replaced or added.
//
// Replaced rules keep their position in the definition order, new rules are
// appended in identifier order. The receiver is unchanged.
func (t *Table) With(overrides map[string]Node) *Table {
	out := &Table{
		rules: make(map[string]*Rule, len(t.rules)+len(overrides)),
		order: append([]string(nil), t.order...),
	}
	for id, rule := range t.rules {
		out.rules[id] = rule
	}
	added := []string{}
	for id, body := range overrides {
		if _, ok := out.rules[id]; !ok {
			added = append(added, id)
		}
		out.rules[id] = &Rule{ID: id, Body: body}
	}
	sort.Strings(added)
	out.order = append(out.order, added...)
	return out
}

// String renders the table in rule file syntax.
func (t *Table) String() string {
	out := &strings.Builder{}
	for i, id := range t.order {
		if i > 0 {
			out.WriteString("\n")
		}
		fmt.Fprintf(out, "%s: %s", id, Source(t.rules[id].Body))
	}
	return out.String()
}

// Source renders a rule body in rule file syntax, the inverse of ParseBody.
func Source(n Node) string {
	switch n := n.(type) {
	case Literal:
		return fmt.Sprintf("%q", string(n))
	case Ref:
		return string(n)
	case Concat:
		parts := make([]string, 0, len(n))
		for _, child := range n {
			if _, ok := child.(Alt); ok {
				parts = append(parts, "( "+Source(child)+" )")
			} else {
				parts = append(parts, Source(child))
			}
		}
		return strings.Join(parts, " ")
	case Alt:
		parts := make([]string, 0, len(n))
		for _, child := range n {
			parts = append(parts, Source(child))
		}
		return strings.Join(parts, " | ")
	case Plus:
		return "( " + Source(n.Node) + " )+"
	}
	panic(fmt.Sprintf("unsupported node %T", n))
}
