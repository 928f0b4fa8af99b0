package expr

import "github.com/dolthub/cpsolver/interval"

// And is a boolean conjunction of two predicates. It carries no arithmetic
// kernel of its own; it is an ordinary Expr built on the same two
// customization points as every other node, letting two independent
// comparisons (e.g. `(l + 1 > r + 11) AND (l + 3 < r + 33)`) be combined
// into a single root the propagator can tighten against.
type And struct {
	Left, Right Expr
}

// NewAnd constructs an And node.
func NewAnd(left, right Expr) *And {
	return &And{Left: left, Right: right}
}

func (a *And) Children() []Expr { return []Expr{a.Left, a.Right} }

func (a *And) Equals(other Expr) bool {
	o, ok := other.(*And)
	return ok && a.Left.Equals(o.Left) && a.Right.Equals(o.Right)
}

func (a *And) EvaluateBounds(children []interval.Interval) (interval.Interval, error) {
	left, right := children[0], children[1]
	if isFalse(left) || isFalse(right) {
		return boolInterval(false, false), nil
	}
	if isTrue(left) && isTrue(right) {
		return boolInterval(true, true), nil
	}
	return boolInterval(false, true), nil
}

// PropagateConstraints only has information to push into its children
// when the conjunction itself is pinned to (true,true): both children must
// then also hold. When the conjunction's own interval is anything looser
// (e.g. (false,true)), no sound tightening of the individual children
// follows from that alone, so they are returned unchanged.
func (a *And) PropagateConstraints(self interval.Interval, children []interval.Interval) ([]*interval.Interval, error) {
	left, right := children[0], children[1]
	if !isTrue(self) {
		return []*interval.Interval{&left, &right}, nil
	}

	required := boolInterval(true, true)
	newLeft, ok, err := interval.Intersect(left, required)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*interval.Interval{nil, nil}, nil
	}
	newRight, ok, err := interval.Intersect(right, required)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []*interval.Interval{&newLeft, nil}, nil
	}
	return []*interval.Interval{&newLeft, &newRight}, nil
}

func boolInterval(lower, upper bool) interval.Interval {
	return interval.Interval{Lower: interval.NewBool(lower), Upper: interval.NewBool(upper)}
}

func isTrue(i interval.Interval) bool {
	return i.Lower.Bool() && i.Upper.Bool()
}

func isFalse(i interval.Interval) bool {
	return !i.Lower.Bool() && !i.Upper.Bool()
}
