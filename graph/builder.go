package graph

import (
	"fmt"

	"github.com/mitchellh/hashstructure"
	"github.com/pkg/errors"

	"github.com/dolthub/cpsolver/expr"
	"github.com/dolthub/cpsolver/interval"
)

// node is one entry in a Graph's node table. children holds indices into
// the same Graph's node slice, in the expression's original left-to-right
// operand order. Multiple parents may reference the same child index:
// structurally identical sub-expressions are deduplicated into a single
// node during construction.
//
// Node indices are stable handles: once assigned, an index is never
// reused for a different node and the slot it names is never relocated,
// even after GatherNodeIndices detaches edges and compacts unreachable
// nodes. A compacted-away node is left as a tombstone (removed set, its
// own edges cleared) rather than removed from the slice.
type node struct {
	expr     expr.Expr
	children []int
	parents  []int
	bounds   interval.Interval
	removed  bool
}

// Graph is a directed acyclic graph of expression nodes built once from an
// expr.Expr tree, then repeatedly tightened by EvaluateBounds and
// PropagateConstraints as facts about its leaves arrive.
type Graph struct {
	nodes  []node
	root   int
	byHash map[uint64][]int
}

// NoNode is the sentinel index returned wherever a lookup finds no node
// matching the given expression's structural key.
const NoNode = -1

// NewGraph builds a Graph from root by a post-order walk, deduplicating
// structurally identical sub-expressions into a single shared node.
func NewGraph(root expr.Expr) (*Graph, error) {
	g := &Graph{byHash: make(map[uint64][]int)}
	idx, err := g.insert(root, make(map[expr.Expr]bool))
	if err != nil {
		// err is either an ErrCyclicExpression Kind (callers pattern-match
		// it with errors.Is/Kind.Is) or already wrapped with a stack trace
		// from the hashing failure below; neither benefits from another
		// layer of wrapping here.
		return nil, err
	}
	g.root = idx
	return g, nil
}

// NodeCount reports how many distinct, non-pruned nodes the graph holds.
func (g *Graph) NodeCount() int {
	n := 0
	for _, nd := range g.nodes {
		if !nd.removed {
			n++
		}
	}
	return n
}

// insert walks e's subtree post-order, inserting or reusing a node for
// each distinct sub-expression. visiting tracks the expressions currently
// on the call stack so a cycle is reported rather than recursing forever.
func (g *Graph) insert(e expr.Expr, visiting map[expr.Expr]bool) (int, error) {
	if visiting[e] {
		return 0, ErrCyclicExpression.New()
	}
	visiting[e] = true
	defer delete(visiting, e)

	children := e.Children()
	childIdx := make([]int, len(children))
	for i, c := range children {
		idx, err := g.insert(c, visiting)
		if err != nil {
			return 0, err
		}
		childIdx[i] = idx
	}

	hash, err := structuralHash(e, childIdx)
	if err != nil {
		return 0, errors.Wrap(err, "graph: hash node")
	}
	for _, candidate := range g.byHash[hash] {
		if !g.nodes[candidate].removed && g.nodes[candidate].expr.Equals(e) {
			return candidate, nil
		}
	}

	idx := len(g.nodes)
	g.nodes = append(g.nodes, node{
		expr:     e,
		children: childIdx,
		bounds:   defaultBounds(e),
	})
	for _, ci := range childIdx {
		g.nodes[ci].parents = append(g.nodes[ci].parents, idx)
	}
	g.byHash[hash] = append(g.byHash[hash], idx)
	return idx, nil
}

// defaultBounds gives a freshly inserted node its starting interval:
// literals are singletons of their value, columns start fully unbounded
// over their declared type, and every other node kind starts as
// interval.Default() until the first EvaluateBounds pass fills it in.
func defaultBounds(e expr.Expr) interval.Interval {
	switch v := e.(type) {
	case *expr.Literal:
		return interval.Singleton(v.Value)
	case *expr.Column:
		return interval.Unbounded(v.Type)
	default:
		return interval.Default()
	}
}

// structuralHash combines a node's own signature with its already-resolved
// child indices into the key two expressions must share to be
// deduplicated into the same graph node.
func structuralHash(e expr.Expr, childIdx []int) (uint64, error) {
	kind, detail := signature(e)
	return hashstructure.Hash(structKey{Kind: kind, Detail: detail, Children: childIdx}, nil)
}

// structKey is deliberately built from plain strings and ints rather than
// embedding the Expr or its Scalar payload directly: Scalar wraps
// shopspring/decimal.Decimal, whose unexported fields hashstructure cannot
// reach via reflection.
type structKey struct {
	Kind     string
	Detail   string
	Children []int
}

// signature returns a node's kind and its scalar payload (operator,
// literal value, or column identity) as plain strings, ignoring children.
func signature(e expr.Expr) (kind, detail string) {
	switch v := e.(type) {
	case *expr.Literal:
		return "literal", v.Value.Type.String() + ":" + v.Value.String()
	case *expr.Column:
		return "column", v.Name + ":" + v.Type.String()
	case *expr.BinaryArith:
		return "arith", v.Op.String()
	case *expr.BinaryCmp:
		return "cmp", v.Op.String()
	case *expr.And:
		return "and", ""
	default:
		return fmt.Sprintf("%T", e), ""
	}
}
