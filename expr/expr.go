// Package expr defines the expression-node contract the constraint
// propagator traverses, plus the default node kinds (literals, columns,
// arithmetic/comparison binaries, and boolean conjunction) a consumer
// needs to build an expression tree the propagator can understand.
package expr

import "github.com/dolthub/cpsolver/interval"

// Expr is the contract every node participating in the propagation DAG
// must satisfy. Implementations must treat themselves as immutable once
// built: the graph package owns and mutates the per-node interval, never
// the Expr itself.
type Expr interface {
	// Children returns this node's operands in original left-to-right
	// order. Leaves return nil.
	Children() []Expr

	// Equals reports structural equality with other: same node kind, same
	// operator/value, and children that are pairwise Equals. Used by the
	// DAG builder to deduplicate shared sub-expressions.
	Equals(other Expr) bool

	// EvaluateBounds computes this node's own interval from its
	// children's current intervals. It is a pure function of
	// childIntervals: a correct implementation reads no other state.
	// Leaves are never asked to evaluate; the graph seeds their interval
	// externally and skips this call for them.
	EvaluateBounds(childIntervals []interval.Interval) (interval.Interval, error)

	// PropagateConstraints refines each child's interval given this
	// node's own (already computed) interval and the children's current
	// intervals. The returned slice has one entry per child, in the same
	// order as childIntervals; a nil entry at index i means the i-th
	// child's constraint is infeasible.
	PropagateConstraints(self interval.Interval, childIntervals []interval.Interval) ([]*interval.Interval, error)
}

// Leaf is a convenience embed for node kinds with no children: Column and
// Literal both embed it rather than repeating the same nil/"unreachable"
// bodies.
type Leaf struct{}

func (Leaf) Children() []Expr { return nil }

func (Leaf) EvaluateBounds(_ []interval.Interval) (interval.Interval, error) {
	panic("expr: EvaluateBounds called on a leaf; the graph must seed leaf intervals externally")
}

func (Leaf) PropagateConstraints(_ interval.Interval, _ []interval.Interval) ([]*interval.Interval, error) {
	return nil, nil
}
