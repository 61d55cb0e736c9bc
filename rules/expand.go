package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultRoot is the conventional entry rule.
const DefaultRoot = "0"

// An Option modifies how a Table is expanded.
type Option func(e *expander) error

// Overrides replaces rule bodies before expansion begins, without modifying the Table.
func Overrides(overrides map[string]Node) Option {
	return func(e *expander) error {
		for id, body := range overrides {
			if body == nil {
				return errorf(ErrMalformedGrammar, id, noPos, "override for rule %s has no body", id)
			}
			empty := false
			Visit(body, func(n Node) {
				if n == nil {
					empty = true
				}
			})
			if empty {
				return errorf(ErrMalformedGrammar, id, noPos, "override for rule %s contains an empty node", id)
			}
			e.overrides[id] = body
		}
		return nil
	}
}

// Stats about an expansion.
type Stats struct {
	// Discovered is the number of distinct rules reachable from the root.
	Discovered int
	// Expanded is the number of rule bodies substituted. Each rule is substituted once.
	Expanded int
	// Passes is the number of breadth-first worklist passes.
	Passes int
}

// Pattern is a fully expanded rule. It contains no Refs.
type Pattern struct {
	Root  string
	Node  Node
	Stats Stats
}

// String renders the pattern as an unanchored regular expression.
func (p *Pattern) String() string { return p.Node.String() }

// Compile the pattern into a regular expression that matches whole strings.
func (p *Pattern) Compile() (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + p.String() + `)$`)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", p.Root, err)
	}
	return re, nil
}

type expander struct {
	table     *Table
	overrides map[string]Node
	stats     Stats
	resolved  map[string]Node
	active    map[string]bool
	stack     []string
}

// Expand the rule root into a Pattern by substituting every referenced rule with its body.
//
// Rules reachable from root are discovered with a breadth-first worklist in which
// each identifier is enqueued once. Bodies are then substituted bottom up, each
// exactly once, and shared between every rule that references them.
func Expand(table *Table, root string, options ...Option) (*Pattern, error) {
	e := &expander{
		overrides: map[string]Node{},
		resolved:  map[string]Node{},
		active:    map[string]bool{},
	}
	for _, option := range options {
		if err := option(e); err != nil {
			return nil, err
		}
	}
	e.table = table
	if len(e.overrides) > 0 {
		e.table = table.With(e.overrides)
	}
	if err := e.discover(root); err != nil {
		return nil, err
	}
	node, err := e.resolve(root)
	if err != nil {
		return nil, err
	}
	return &Pattern{Root: root, Node: node, Stats: e.stats}, nil
}

// Walk the rule graph breadth first, checking that every reference is defined.
func (e *expander) discover(root string) error {
	if _, ok := e.table.Get(root); !ok {
		return errorf(ErrUnknownIdentifier, root, noPos, "root rule %s is not defined", root)
	}
	queued := map[string]bool{root: true}
	frontier := []string{root}
	for len(frontier) > 0 {
		e.stats.Passes++
		next := []string{}
		for _, id := range frontier {
			e.stats.Discovered++
			rule, _ := e.table.Get(id)
			for _, ref := range Refs(rule.Body) {
				if _, ok := e.table.Get(ref); !ok {
					return errorf(ErrUnknownIdentifier, ref, rule.Pos, "rule %s references undefined rule %s", id, ref)
				}
				if !queued[ref] {
					queued[ref] = true
					next = append(next, ref)
				}
			}
		}
		frontier = next
	}
	return nil
}

func (e *expander) resolve(id string) (Node, error) {
	if node, ok := e.resolved[id]; ok {
		return node, nil
	}
	rule, _ := e.table.Get(id)
	if e.active[id] {
		cycle := append([]string{}, e.stack[indexOf(e.stack, id):]...)
		cycle = append(cycle, id)
		return nil, errorf(ErrCyclicGrammar, id, rule.Pos, "rule %s refers to itself via %s", id, strings.Join(cycle, " -> "))
	}
	e.active[id] = true
	e.stack = append(e.stack, id)
	node, err := e.substitute(rule.Body)
	e.stack = e.stack[:len(e.stack)-1]
	delete(e.active, id)
	if err != nil {
		return nil, err
	}
	e.stats.Expanded++
	e.resolved[id] = node
	return node, nil
}

func (e *expander) substitute(n Node) (Node, error) {
	switch n := n.(type) {
	case Literal:
		return n, nil

	case Ref:
		return e.resolve(string(n))

	case Concat:
		children, err := e.substituteAll(n)
		if err != nil {
			return nil, err
		}
		return concat(children...), nil

	case Alt:
		children, err := e.substituteAll(n)
		if err != nil {
			return nil, err
		}
		return alt(children...), nil

	case Plus:
		child, err := e.substitute(n.Node)
		if err != nil {
			return nil, err
		}
		return Plus{Node: child}, nil

	default:
		panic(fmt.Sprintf("unsupported node %T", n))
	}
}

func (e *expander) substituteAll(nodes []Node) ([]Node, error) {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		child, err := e.substitute(n)
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return 0
}
