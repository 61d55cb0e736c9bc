// Package rules expands a table of grammar rules into a single regular expression.
//
// A rule file has one rule per line. A body is either a quoted character or
// alternatives of rule references:
//
//	0: 4 1 5
//	1: 2 3 | 3 2
//	4: "a"
//
// Expand substitutes every reference reachable from a root rule until only
// literals, concatenation, alternation and grouping remain:
//
//	table, err := rules.ParseString(text)
//	pattern, err := rules.Expand(table, "0")
//	re, err := pattern.Compile()
//
// Self-referential rules can't be expanded structurally. Overrides replaces
// them with closed forms before expansion, see Loop, Balanced and PartTwo.
package rules
