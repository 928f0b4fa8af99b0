package join

import (
	"github.com/dolthub/cpsolver/expr"
	"github.com/dolthub/cpsolver/graph"
	"github.com/dolthub/cpsolver/interval"
)

// PruningEnabled is read once per Tighten call. A caller wiring this
// package into an existing join operator can disable pruning globally
// (e.g. behind an experimental flag) without threading a context value
// through every call site.
var PruningEnabled = true

// ColumnStats is the [Min, Max] pair a catalog or statistics component
// hands a join operator for one side of a join key.
type ColumnStats struct {
	Min, Max interval.Scalar
}

func (s ColumnStats) asInterval() interval.Interval {
	return interval.Interval{Lower: s.Min, Upper: s.Max}
}

func statsFromInterval(i interval.Interval) ColumnStats {
	return ColumnStats{Min: i.Lower, Max: i.Upper}
}

// WatermarkPruner tightens the known value ranges of a join's two key
// expressions against a boolean join predicate — e.g. a windowed join's
// `(l + skew_lo > r) AND (l - skew_hi < r)` watermark condition — so a
// hash join can skip probing partitions the predicate rules out entirely.
type WatermarkPruner struct {
	g        *graph.Graph
	leftIdx  int
	rightIdx int
}

// NewWatermarkPruner builds a pruner from predicate, the boolean
// expression required to hold, given the two leaf expressions identifying
// the join's left and right key columns within it.
func NewWatermarkPruner(predicate, left, right expr.Expr) (*WatermarkPruner, error) {
	g, err := graph.NewGraph(predicate)
	if err != nil {
		return nil, err
	}
	idx := g.GatherNodeIndices([]expr.Expr{left, right})
	if idx[0] == graph.NoNode {
		return nil, ErrKeyNotInPredicate.New("left")
	}
	if idx[1] == graph.NoNode {
		return nil, ErrKeyNotInPredicate.New("right")
	}
	return &WatermarkPruner{g: g, leftIdx: idx[0], rightIdx: idx[1]}, nil
}

// Tighten assigns leftStats/rightStats to the pruner's two key leaves and
// runs a full evaluate/propagate pass, reading the (possibly narrowed)
// stats back on Success. When PruningEnabled is false, no pass runs and
// the input stats are returned unchanged with Success. When the pass
// reports anything but Success, the input stats are returned unchanged
// alongside the pass's result.
func (p *WatermarkPruner) Tighten(leftStats, rightStats ColumnStats) (ColumnStats, ColumnStats, graph.PropagationResult, error) {
	if !PruningEnabled {
		return leftStats, rightStats, graph.Success, nil
	}

	p.g.AssignIntervals([]graph.NodeInterval{
		{Index: p.leftIdx, Interval: leftStats.asInterval()},
		{Index: p.rightIdx, Interval: rightStats.asInterval()},
	})

	result, err := p.g.UpdateRanges()
	if err != nil {
		return leftStats, rightStats, graph.CannotPropagate, err
	}
	if result != graph.Success {
		return leftStats, rightStats, result, nil
	}

	got := p.g.UpdateIntervals([]int{p.leftIdx, p.rightIdx})
	return statsFromInterval(got[0]), statsFromInterval(got[1]), result, nil
}
