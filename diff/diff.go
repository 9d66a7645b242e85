// Package diff computes minimal line-level edit scripts via dynamic
// programming over the longest common subsequence. The op stream is used
// both to render previews and to verify edit application.
package diff

import "fmt"

// OpKind discriminates the variants of an edit-script operation.
type OpKind int

const (
	// OpEqual copies a line present in both sequences.
	OpEqual OpKind = iota
	// OpAdd inserts a line present only in the proposed sequence.
	OpAdd
	// OpDelete removes a line present only in the original sequence.
	OpDelete
)

// String returns the kind name used in rendered output and error messages.
func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpAdd:
		return "add"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one step of the edit script. Line indices are 1-based. OrigIdx is
// set for equal and delete ops, NewIdx for equal and add ops; an unset
// index is 0.
type Op struct {
	Kind    OpKind
	OrigIdx int
	NewIdx  int
	Content string
}

// Diff computes the minimal edit script transforming original into
// proposed. Lines match by exact string equality. The result is
// deterministic: when the backtrack could advance either index
// (lcs[i][j-1] == lcs[i-1][j]), it advances the proposed index, so a
// replaced run renders as deletes followed by adds.
//
// O(m·n) time and space. Inputs are single documents, not unbounded
// streams; very large documents are a known scaling limit.
func Diff(original, proposed []string) []Op {
	m, n := len(original), len(proposed)

	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if original[i-1] == proposed[j-1] {
				lcs[i][j] = lcs[i-1][j-1] + 1
			} else if lcs[i-1][j] >= lcs[i][j-1] {
				lcs[i][j] = lcs[i-1][j]
			} else {
				lcs[i][j] = lcs[i][j-1]
			}
		}
	}

	// Backtrack from (m,n), emitting ops in reverse.
	ops := make([]Op, 0, m+n)
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && original[i-1] == proposed[j-1]:
			ops = append(ops, Op{Kind: OpEqual, OrigIdx: i, NewIdx: j, Content: original[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || lcs[i][j-1] >= lcs[i-1][j]):
			ops = append(ops, Op{Kind: OpAdd, NewIdx: j, Content: proposed[j-1]})
			j--
		default:
			ops = append(ops, Op{Kind: OpDelete, OrigIdx: i, Content: original[i-1]})
			i--
		}
	}

	for a, b := 0, len(ops)-1; a < b; a, b = a+1, b-1 {
		ops[a], ops[b] = ops[b], ops[a]
	}
	return ops
}

// Apply replays an edit script against the original sequence: copy on
// equal, skip on delete, insert on add. For ops produced by Diff the
// result equals the proposed sequence exactly.
func Apply(original []string, ops []Op) ([]string, error) {
	result := make([]string, 0, len(ops))
	pos := 0 // 0-based cursor into original
	for _, op := range ops {
		switch op.Kind {
		case OpEqual:
			if pos >= len(original) {
				return nil, fmt.Errorf("equal op at original line %d: past end of input", op.OrigIdx)
			}
			result = append(result, original[pos])
			pos++
		case OpDelete:
			if pos >= len(original) {
				return nil, fmt.Errorf("delete op at original line %d: past end of input", op.OrigIdx)
			}
			pos++
		case OpAdd:
			result = append(result, op.Content)
		default:
			return nil, fmt.Errorf("unknown op kind %d", int(op.Kind))
		}
	}
	if pos != len(original) {
		return nil, fmt.Errorf("edit script consumed %d of %d original lines", pos, len(original))
	}
	return result, nil
}

// Counts returns the number of add and delete ops in an edit script.
func Counts(ops []Op) (added, deleted int) {
	for _, op := range ops {
		switch op.Kind {
		case OpAdd:
			added++
		case OpDelete:
			deleted++
		}
	}
	return added, deleted
}
