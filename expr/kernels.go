package expr

import "github.com/dolthub/cpsolver/interval"

// CmpOp identifies a supported comparison operator. Only strict
// inequalities are implemented; =, >=, <= would require open/closed
// interval endpoints, deliberately out of scope here.
type CmpOp uint8

const (
	Gt CmpOp = iota
	Lt
)

func (op CmpOp) String() string {
	if op == Gt {
		return ">"
	}
	return "<"
}

// InverseOp returns the arithmetic operator that undoes op: inv(+) = -,
// inv(-) = +. Panics on any operator other than Add/Sub — arithmetic
// propagation is only ever invoked with those two.
func InverseOp(op interval.Op) interval.Op {
	switch op {
	case interval.Add:
		return interval.Sub
	case interval.Sub:
		return interval.Add
	default:
		panic("expr: InverseOp is only defined for Add/Sub")
	}
}

// PropagateArithmetic refines left and right given a required parent
// interval for `left op right`:
//
//  1. new_left = apply(inv(op), parent, right) ∩ left. If empty, the
//     whole constraint is infeasible and both results are nil.
//  2. new_right = apply(inv(op), parent, new_left) ∩ right for +, or
//     apply(op, new_left, parent) ∩ right for -, since x - y = p implies
//     y = x - p.
func PropagateArithmetic(op interval.Op, parent, left, right interval.Interval) (*interval.Interval, *interval.Interval, error) {
	inv := InverseOp(op)

	candidateLeft, err := interval.Apply(inv, parent, right)
	if err != nil {
		return nil, nil, err
	}
	newLeft, ok, err := interval.Intersect(candidateLeft, left)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, nil
	}

	var candidateRight interval.Interval
	switch op {
	case interval.Sub:
		candidateRight, err = interval.Apply(op, newLeft, parent)
	case interval.Add:
		candidateRight, err = interval.Apply(inv, parent, newLeft)
	default:
		return nil, nil, ErrUnsupportedOperator.New(op)
	}
	if err != nil {
		return nil, nil, err
	}
	newRight, ok, err := interval.Intersect(candidateRight, right)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return &newLeft, nil, nil
	}
	return &newLeft, &newRight, nil
}

// ComparisonTarget builds the required interval for the synthetic
// expression `left - right` that realizes a comparison operator: `left >
// right` becomes `left - right ∈ [0, +∞)`, `left < right` becomes
// `left - right ∈ (-∞, 0]`. t is the datatype of left (and, by
// construction, of right and of the synthetic difference).
//
// The closed endpoint at zero slightly weakens propagation for strict
// inequalities (it permits left == right going unpruned); fixing this
// would require open/closed interval endpoints.
func ComparisonTarget(t interval.DataType, op CmpOp) (interval.Interval, error) {
	zero := interval.Zero(t)
	switch op {
	case Gt:
		return interval.Interval{Lower: zero, Upper: interval.PosInfOf(t)}, nil
	case Lt:
		return interval.Interval{Lower: interval.NegInfOf(t), Upper: zero}, nil
	default:
		return interval.Interval{}, ErrUnsupportedOperator.New(op)
	}
}

// PropagateComparison refines left and right given a strict comparison
// `left op right`, by delegating to PropagateArithmetic against the
// comparison's target interval over the synthetic difference `left -
// right`.
func PropagateComparison(op CmpOp, left, right interval.Interval) (*interval.Interval, *interval.Interval, error) {
	target, err := ComparisonTarget(left.DataType(), op)
	if err != nil {
		return nil, nil, err
	}
	return PropagateArithmetic(interval.Sub, target, left, right)
}
