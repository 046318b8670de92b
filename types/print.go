package types

import (
	"sort"
	"strings"
)

// PrintMonotype renders t as the spec.md §4.1 surface syntax: Bool,
// l -> r (right-associative; a Func on the left gets parens), and
// unbound variables renamed to 'a, 'b, ..., 'z, 'aa, 'ab, ... in order
// of ascending id. Bound variables print as whatever they resolve to.
func PrintMonotype(t Monotype) string {
	ids := collectUnboundIDs(t)
	sort.Ints(ids)
	letters := make(map[int]string, len(ids))
	for i, id := range ids {
		letters[id] = varLetters(i)
	}
	return printWith(t, letters)
}

// PrintScheme renders a scheme as "forall a, b, .... T", with the
// quantified ids given in scheme order.
func PrintScheme(s Scheme) string {
	if len(s.Vars) == 0 {
		return PrintMonotype(s.Type)
	}

	// Quantified ids get their letters from scheme order; any other
	// unbound id reachable in s.Type (ambient, non-generalized free
	// variables) still needs a letter, assigned after the quantified
	// ones by ascending id so printing stays deterministic.
	letters := make(map[int]string, len(s.Vars))
	names := make([]string, len(s.Vars))
	for i, id := range s.Vars {
		l := varLetters(i)
		letters[id] = l
		names[i] = l
	}

	rest := collectUnboundIDs(s.Type)
	var extra []int
	for _, id := range rest {
		if _, ok := letters[id]; !ok {
			extra = append(extra, id)
		}
	}
	sort.Ints(extra)
	for i, id := range extra {
		letters[id] = varLetters(len(s.Vars) + i)
	}

	return "forall " + strings.Join(names, ", ") + ". " + printWith(s.Type, letters)
}

// collectUnboundIDs walks t in left-to-right preorder, following Bound
// links transparently, and returns the set of reachable Unbound ids in
// first-appearance order (duplicates removed, not yet sorted — sorting
// is the caller's job since PrintScheme needs unsorted scheme order
// for quantified vars but sorted order for the rest).
func collectUnboundIDs(t Monotype) []int {
	seen := map[int]bool{}
	var ids []int
	var walk func(Monotype)
	walk = func(t Monotype) {
		switch tt := t.(type) {
		case Bool:
		case Func:
			walk(tt.Left)
			walk(tt.Right)
		case Var:
			if tt.Cell.IsBound() {
				walk(tt.Cell.Target())
				return
			}
			id := tt.Cell.ID()
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	walk(t)
	return ids
}

func printWith(t Monotype, letters map[int]string) string {
	switch tt := t.(type) {
	case Bool:
		return "Bool"
	case Func:
		left := skipBound(tt.Left)
		leftStr := printWith(left, letters)
		if _, ok := left.(Func); ok {
			leftStr = "(" + leftStr + ")"
		}
		return leftStr + " -> " + printWith(tt.Right, letters)
	case Var:
		if tt.Cell.IsBound() {
			return printWith(tt.Cell.Target(), letters)
		}
		letter, ok := letters[tt.Cell.ID()]
		if !ok {
			// Should not happen: collectUnboundIDs reaches every
			// unbound cell printWith can reach.
			letter = varLetters(tt.Cell.ID())
		}
		return "'" + letter
	default:
		return "<?>"
	}
}

// skipBound transparently follows Bound links to reveal the real head
// of a type, used when deciding whether the left operand of a Func
// needs parenthesizing.
func skipBound(t Monotype) Monotype {
	for {
		v, ok := t.(Var)
		if !ok || !v.Cell.IsBound() {
			return t
		}
		t = v.Cell.Target()
	}
}

// varLetters maps a zero-based index to a, b, ..., z, aa, ab, ...,
// extending spec.md's 26-letter scheme (its noted open question) to an
// arbitrary count of free variables, base-26 with 'a' as the digit
// zero of each position.
func varLetters(i int) string {
	const base = 26
	if i < base {
		return string(rune('a' + i))
	}
	var digits []byte
	n := i
	for {
		digits = append([]byte{byte('a' + n%base)}, digits...)
		n = n/base - 1
		if n < 0 {
			break
		}
	}
	return string(digits)
}
