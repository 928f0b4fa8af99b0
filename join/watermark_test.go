package join

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/cpsolver/expr"
	"github.com/dolthub/cpsolver/graph"
	"github.com/dolthub/cpsolver/interval"
)

func intLit(v int64) *expr.Literal {
	return expr.NewLiteral(interval.NewInt(interval.Int32, v))
}

func stats(lo, hi int64) ColumnStats {
	return ColumnStats{Min: interval.NewInt(interval.Int32, lo), Max: interval.NewInt(interval.Int32, hi)}
}

func unboundedStats() ColumnStats {
	return ColumnStats{Min: interval.NegInfOf(interval.Int32), Max: interval.PosInfOf(interval.Int32)}
}

func TestWatermarkPrunerTightensBothSides(t *testing.T) {
	l, r := expr.NewColumn("l", interval.Int32), expr.NewColumn("r", interval.Int32)
	gt := expr.NewBinaryCmp(expr.Gt,
		expr.NewBinaryArith(expr.Plus, l, intLit(1)),
		expr.NewBinaryArith(expr.Plus, r, intLit(11)))
	lt := expr.NewBinaryCmp(expr.Lt,
		expr.NewBinaryArith(expr.Plus, l, intLit(3)),
		expr.NewBinaryArith(expr.Plus, r, intLit(33)))

	pruner, err := NewWatermarkPruner(expr.NewAnd(gt, lt), l, r)
	require.NoError(t, err)

	fromZero := ColumnStats{Min: interval.NewInt(interval.Int32, 0), Max: interval.PosInfOf(interval.Int32)}
	leftOut, rightOut, result, err := pruner.Tighten(fromZero, fromZero)
	require.NoError(t, err)
	assert.Equal(t, graph.Success, result)
	assert.Equal(t, interval.NewInt(interval.Int32, 10), leftOut.Min)
	assert.Equal(t, interval.NewInt(interval.Int32, 0), rightOut.Min)
}

func TestWatermarkPrunerInfeasible(t *testing.T) {
	l, r := expr.NewColumn("l", interval.Int32), expr.NewColumn("r", interval.Int32)
	predicate := expr.NewBinaryCmp(expr.Gt, expr.NewBinaryArith(expr.Plus, l, intLit(5)), r)

	pruner, err := NewWatermarkPruner(predicate, l, r)
	require.NoError(t, err)

	_, _, result, err := pruner.Tighten(stats(10, 20), stats(100, 100))
	require.NoError(t, err)
	assert.Equal(t, graph.Infeasible, result)
}

func TestWatermarkPrunerDisabledIsNoop(t *testing.T) {
	l, r := expr.NewColumn("l", interval.Int32), expr.NewColumn("r", interval.Int32)
	predicate := expr.NewBinaryCmp(expr.Gt, expr.NewBinaryArith(expr.Plus, l, intLit(5)), r)

	pruner, err := NewWatermarkPruner(predicate, l, r)
	require.NoError(t, err)

	PruningEnabled = false
	defer func() { PruningEnabled = true }()

	in := stats(10, 20)
	leftOut, rightOut, result, err := pruner.Tighten(in, in)
	require.NoError(t, err)
	assert.Equal(t, graph.Success, result)
	assert.Equal(t, in, leftOut)
	assert.Equal(t, in, rightOut)
}

func TestNewWatermarkPrunerKeyNotInPredicate(t *testing.T) {
	l, r, other := expr.NewColumn("l", interval.Int32), expr.NewColumn("r", interval.Int32), expr.NewColumn("other", interval.Int32)
	predicate := expr.NewBinaryCmp(expr.Gt, l, r)

	_, err := NewWatermarkPruner(predicate, l, other)
	assert.True(t, ErrKeyNotInPredicate.Is(err))
}
