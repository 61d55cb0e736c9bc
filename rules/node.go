package rules

import (
	"regexp"
	"strings"
)

// Node is an immutable element of a rule body or of an expanded Pattern.
//
// String renders the node as Go regular expression syntax.
type Node interface {
	String() string
	node()
}

// Literal matches a single character exactly.
type Literal string

// Ref is a reference to another rule by identifier. Expanded patterns contain no Refs.
type Ref string

// Concat matches each of its elements in order.
type Concat []Node

// Alt matches any one of its alternatives.
type Alt []Node

// Plus matches one or more repetitions of Node.
type Plus struct {
	Node Node
}

func (Literal) node() {}
func (Ref) node()     {}
func (Concat) node()  {}
func (Alt) node()     {}
func (Plus) node()    {}

func (l Literal) String() string { return regexp.QuoteMeta(string(l)) }

func (r Ref) String() string { return "<" + string(r) + ">" }

func (c Concat) String() string {
	out := &strings.Builder{}
	for _, n := range c {
		out.WriteString(group(n))
	}
	return out.String()
}

func (a Alt) String() string {
	out := &strings.Builder{}
	for i, n := range a {
		if i > 0 {
			out.WriteString("|")
		}
		out.WriteString(n.String())
	}
	return out.String()
}

func (p Plus) String() string {
	if l, ok := p.Node.(Literal); ok {
		return l.String() + "+"
	}
	return "(?:" + p.Node.String() + ")+"
}

// Wrap alternations so that surrounding concatenation can't change their meaning.
func group(n Node) string {
	if _, ok := n.(Alt); ok {
		return "(?:" + n.String() + ")"
	}
	return n.String()
}

func concat(nodes ...Node) Node {
	out := make(Concat, 0, len(nodes))
	for _, n := range nodes {
		if c, ok := n.(Concat); ok {
			out = append(out, c...)
		} else {
			out = append(out, n)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

func alt(nodes ...Node) Node {
	out := make(Alt, 0, len(nodes))
	for _, n := range nodes {
		if a, ok := n.(Alt); ok {
			out = append(out, a...)
		} else {
			out = append(out, n)
		}
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

// Refs returns the distinct identifiers referenced by n, in order of first appearance.
func Refs(n Node) []string {
	seen := map[string]bool{}
	out := []string{}
	Visit(n, func(n Node) {
		if r, ok := n.(Ref); ok && !seen[string(r)] {
			seen[string(r)] = true
			out = append(out, string(r))
		}
	})
	return out
}

// Visit n and its children depth first.
func Visit(n Node, visitor func(n Node)) {
	visitor(n)
	switch n := n.(type) {
	case Concat:
		for _, child := range n {
			Visit(child, visitor)
		}
	case Alt:
		for _, child := range n {
			Visit(child, visitor)
		}
	case Plus:
		Visit(n.Node, visitor)
	}
}

// MinLength of the strings n can match. Unresolved references count as zero.
func MinLength(n Node) int {
	switch n := n.(type) {
	case Literal:
		return len([]rune(string(n)))
	case Concat:
		total := 0
		for _, child := range n {
			total += MinLength(child)
		}
		return total
	case Alt:
		min := -1
		for _, child := range n {
			if l := MinLength(child); min < 0 || l < min {
				min = l
			}
		}
		if min < 0 {
			return 0
		}
		return min
	case Plus:
		return MinLength(n.Node)
	}
	return 0
}
