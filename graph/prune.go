package graph

import "github.com/dolthub/cpsolver/expr"

// find locates the node index matching e's structural key without
// mutating the graph, returning NoNode if no live node shares it.
func (g *Graph) find(e expr.Expr) int {
	children := e.Children()
	childIdx := make([]int, len(children))
	for i, c := range children {
		ci := g.find(c)
		if ci == NoNode {
			return NoNode
		}
		childIdx[i] = ci
	}
	hash, err := structuralHash(e, childIdx)
	if err != nil {
		return NoNode
	}
	for _, candidate := range g.byHash[hash] {
		if !g.nodes[candidate].removed && g.nodes[candidate].expr.Equals(e) {
			return candidate
		}
	}
	return NoNode
}

// GatherNodeIndices translates each given expression into the node handle
// the graph assigned it, in the same order, using NoNode wherever an
// expression's structural key matches no live node.
//
// Every matched node is then pruned: its own outgoing edges are removed,
// turning it into an externally supplied leaf (a caller typically follows
// up with AssignIntervals to seed its value directly, bypassing recompute
// from the sub-expression it used to own). Any node left unreachable from
// the root by that edge removal is compacted away. Node indices already
// handed out, including the ones returned here, remain valid: compaction
// tombstones unreachable nodes in place rather than relocating survivors.
func (g *Graph) GatherNodeIndices(exprs []expr.Expr) []int {
	out := make([]int, len(exprs))
	for i, e := range exprs {
		out[i] = g.find(e)
	}
	for _, idx := range out {
		if idx != NoNode {
			g.detach(idx)
		}
	}
	g.compact()
	return out
}

// detach removes idx's outgoing edges and the corresponding parent
// back-references on its former children.
func (g *Graph) detach(idx int) {
	n := &g.nodes[idx]
	for _, c := range n.children {
		g.nodes[c].parents = removeValue(g.nodes[c].parents, idx)
	}
	n.children = nil
}

func removeValue(s []int, v int) []int {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// compact marks every non-root node unreachable from the root as removed,
// clearing its edges, without relocating any surviving node's index.
func (g *Graph) compact() {
	reachable := make([]bool, len(g.nodes))
	var mark func(i int)
	mark = func(i int) {
		if i == NoNode || reachable[i] || g.nodes[i].removed {
			return
		}
		reachable[i] = true
		for _, c := range g.nodes[i].children {
			mark(c)
		}
	}
	mark(g.root)

	for i := range g.nodes {
		if !reachable[i] && !g.nodes[i].removed {
			g.nodes[i].removed = true
			g.nodes[i].children = nil
			g.nodes[i].parents = nil
		}
	}
}
