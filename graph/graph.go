package graph

import (
	"github.com/pkg/errors"

	"github.com/dolthub/cpsolver/interval"
)

// NodeInterval pairs a node index (as returned by GatherNodeIndices) with
// an interval to seed or read back.
type NodeInterval struct {
	Index    int
	Interval interval.Interval
}

// AssignIntervals seeds the given nodes' intervals, typically the leaves
// a caller identified via GatherNodeIndices. Entries carrying NoNode are
// skipped.
func (g *Graph) AssignIntervals(assignments []NodeInterval) {
	for _, a := range assignments {
		if a.Index == NoNode {
			continue
		}
		g.nodes[a.Index].bounds = a.Interval
	}
}

// UpdateIntervals reads back the current interval for each given node
// index, in order. A NoNode index yields the zero Interval.
func (g *Graph) UpdateIntervals(indices []int) []interval.Interval {
	out := make([]interval.Interval, len(indices))
	for i, idx := range indices {
		if idx == NoNode {
			continue
		}
		out[i] = g.nodes[idx].bounds
	}
	return out
}

// EvaluateBounds runs the bottom-up pass: every node's interval is
// recomputed from its children's current intervals, post-order, and the
// resulting root interval is returned.
func (g *Graph) EvaluateBounds() (interval.Interval, error) {
	visited := make([]bool, len(g.nodes))
	if err := g.evaluate(g.root, visited); err != nil {
		return interval.Interval{}, err
	}
	return g.nodes[g.root].bounds, nil
}

func (g *Graph) evaluate(idx int, visited []bool) error {
	if visited[idx] {
		return nil
	}
	n := &g.nodes[idx]
	// Children are walked in reverse order, as a stack-based post-order
	// traversal would push them, then their intervals are gathered back in
	// original left-to-right order below — the visit order of siblings
	// doesn't affect the result, only the final gather does.
	for i := len(n.children) - 1; i >= 0; i-- {
		if err := g.evaluate(n.children[i], visited); err != nil {
			return err
		}
	}
	visited[idx] = true
	if len(n.children) == 0 {
		return nil
	}
	childBounds := make([]interval.Interval, len(n.children))
	for i, c := range n.children {
		childBounds[i] = g.nodes[c].bounds
	}
	b, err := n.expr.EvaluateBounds(childBounds)
	if err != nil {
		return errors.Wrapf(err, "graph: evaluate bounds at node %d", idx)
	}
	n.bounds = b
	return nil
}

// PropagateConstraints runs the top-down pass given the root's own
// (already tightened) interval, refining every descendant node's interval
// in turn. It reports Infeasible as soon as any node's required interval
// has an empty intersection with its current one.
func (g *Graph) PropagateConstraints(root interval.Interval) (PropagationResult, error) {
	g.nodes[g.root].bounds = root
	visited := make([]bool, len(g.nodes))
	visited[g.root] = true
	queue := []int{g.root}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		n := &g.nodes[idx]
		if len(n.children) == 0 {
			continue
		}
		childBounds := make([]interval.Interval, len(n.children))
		for i, c := range n.children {
			childBounds[i] = g.nodes[c].bounds
		}
		refined, err := n.expr.PropagateConstraints(n.bounds, childBounds)
		if err != nil {
			return CannotPropagate, errors.Wrapf(err, "graph: propagate constraints at node %d", idx)
		}
		// Reverse-then-restore: children are enqueued in reverse order, but
		// refined[i] is always read against n.children[i] directly, so each
		// child's own slot lines up regardless of BFS visit order.
		for i := len(n.children) - 1; i >= 0; i-- {
			c := n.children[i]
			ref := refined[i]
			if ref == nil {
				return Infeasible, nil
			}
			tightened, ok, err := interval.Intersect(g.nodes[c].bounds, *ref)
			if err != nil {
				return CannotPropagate, errors.Wrapf(err, "graph: intersect at node %d", c)
			}
			if !ok {
				return Infeasible, nil
			}
			g.nodes[c].bounds = tightened
			if !visited[c] {
				visited[c] = true
				queue = append(queue, c)
			}
		}
	}
	return Success, nil
}

// UpdateRanges is the single-call entrypoint a consumer drives: it
// evaluates bounds bottom-up, then dispatches on the shape of the
// evaluated root interval:
//   - (false, false): the predicate is provably unsatisfiable — Infeasible.
//   - (false, true): the predicate may or may not hold — propagate that
//     down through the rest of the graph and report the propagation's
//     own result.
//   - anything else, including a numeric root or (true, true): the root
//     carries no tightenable boolean constraint — CannotPropagate, and
//     leaf intervals are left exactly as assigned.
func (g *Graph) UpdateRanges() (PropagationResult, error) {
	root, err := g.EvaluateBounds()
	if err != nil {
		return CannotPropagate, err
	}
	if root.DataType() != interval.Boolean {
		return CannotPropagate, nil
	}
	lo, hi := root.Lower.Bool(), root.Upper.Bool()
	switch {
	case !lo && !hi:
		return Infeasible, nil
	case !lo && hi:
		return g.PropagateConstraints(root)
	default:
		return CannotPropagate, nil
	}
}
