package rules

import "math"

// DefaultDepth is the number of balanced pairs Balanced unrolls in PartTwo.
const DefaultDepth = 5

// Loop matches one or more repetitions of rule id, the closed form of "8: 42 | 42 8".
func Loop(id string) Node {
	return Plus{Node: Ref(id)}
}

// Balanced matches left repeated k times followed by right repeated k times,
// for k = 1..depth. It is the closed form of "11: 42 31 | 42 11 31", unrolled to
// a fixed depth since regular expressions can't count. A depth below 1 is treated as 1.
func Balanced(left, right string, depth int) Node {
	if depth < 1 {
		depth = 1
	}
	alternatives := make([]Node, 0, depth)
	for k := 1; k <= depth; k++ {
		seq := make([]Node, 0, 2*k)
		for i := 0; i < k; i++ {
			seq = append(seq, Ref(left))
		}
		for i := 0; i < k; i++ {
			seq = append(seq, Ref(right))
		}
		alternatives = append(alternatives, concat(seq...))
	}
	return alt(alternatives...)
}

// PartTwo returns the overrides that replace the self-referential rules 8 and 11.
func PartTwo(depth int) map[string]Node {
	return map[string]Node{
		"8":  Loop("42"),
		"11": Balanced("42", "31", depth),
	}
}

// DepthLimit is the largest number of balanced left/right pairs that a string
// of length characters could contain after a mandatory prefix, such as the
// one rule 42 match that rule 8 contributes ahead of rule 11. The prefix may be nil.
//
// Strings whose limit exceeds the depth passed to Balanced may need a deeper
// unrolling to be matched.
func DepthLimit(prefix, left, right Node, length int) int {
	pair := MinLength(left) + MinLength(right)
	if pair == 0 {
		return math.MaxInt
	}
	rest := length
	if prefix != nil {
		rest -= MinLength(prefix)
	}
	if rest < 0 {
		return 0
	}
	return rest / pair
}
