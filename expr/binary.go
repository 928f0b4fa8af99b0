package expr

import "github.com/dolthub/cpsolver/interval"

// ArithOp identifies a supported arithmetic operator.
type ArithOp uint8

const (
	Plus ArithOp = iota
	Minus
)

func (op ArithOp) intervalOp() interval.Op {
	if op == Plus {
		return interval.Add
	}
	return interval.Sub
}

func (op ArithOp) String() string {
	if op == Plus {
		return "+"
	}
	return "-"
}

// BinaryArith is the default node kind for `+` and `-`. Its EvaluateBounds
// is interval.Apply over its operator, and its PropagateConstraints
// delegates to PropagateArithmetic in kernels.go, dispatching purely on
// operator kind.
type BinaryArith struct {
	Op          ArithOp
	Left, Right Expr
}

// NewBinaryArith constructs a BinaryArith node.
func NewBinaryArith(op ArithOp, left, right Expr) *BinaryArith {
	return &BinaryArith{Op: op, Left: left, Right: right}
}

func (b *BinaryArith) Children() []Expr { return []Expr{b.Left, b.Right} }

func (b *BinaryArith) Equals(other Expr) bool {
	o, ok := other.(*BinaryArith)
	return ok && b.Op == o.Op && b.Left.Equals(o.Left) && b.Right.Equals(o.Right)
}

func (b *BinaryArith) EvaluateBounds(children []interval.Interval) (interval.Interval, error) {
	left, right := children[0], children[1]
	return interval.Apply(b.Op.intervalOp(), left, right)
}

func (b *BinaryArith) PropagateConstraints(self interval.Interval, children []interval.Interval) ([]*interval.Interval, error) {
	left, right := children[0], children[1]
	newLeft, newRight, err := PropagateArithmetic(b.Op.intervalOp(), self, left, right)
	if err != nil {
		return nil, err
	}
	return []*interval.Interval{newLeft, newRight}, nil
}

// BinaryCmp is the default node kind for strict `>` and `<`. Its own
// interval is a Boolean interval derived from intersecting `left - right`
// against the comparison's target range: (true,true) if the difference is
// entirely within the target, (false,false) if it is entirely outside it,
// and (false,true) otherwise.
type BinaryCmp struct {
	Op          CmpOp
	Left, Right Expr
}

// NewBinaryCmp constructs a BinaryCmp node.
func NewBinaryCmp(op CmpOp, left, right Expr) *BinaryCmp {
	return &BinaryCmp{Op: op, Left: left, Right: right}
}

func (b *BinaryCmp) Children() []Expr { return []Expr{b.Left, b.Right} }

func (b *BinaryCmp) Equals(other Expr) bool {
	o, ok := other.(*BinaryCmp)
	return ok && b.Op == o.Op && b.Left.Equals(o.Left) && b.Right.Equals(o.Right)
}

func (b *BinaryCmp) EvaluateBounds(children []interval.Interval) (interval.Interval, error) {
	left, right := children[0], children[1]
	diff, err := interval.Apply(interval.Sub, left, right)
	if err != nil {
		return interval.Interval{}, err
	}
	target, err := ComparisonTarget(left.DataType(), b.Op)
	if err != nil {
		return interval.Interval{}, err
	}

	boolTrue := interval.Singleton(interval.NewBool(true))
	boolFalse := interval.Singleton(interval.NewBool(false))
	boolMaybe := interval.Interval{Lower: interval.NewBool(false), Upper: interval.NewBool(true)}

	contained, err := target.ContainsInterval(diff)
	if err != nil {
		return interval.Interval{}, err
	}
	if contained {
		return boolTrue, nil
	}

	_, overlaps, err := interval.Intersect(diff, target)
	if err != nil {
		return interval.Interval{}, err
	}
	if !overlaps {
		return boolFalse, nil
	}
	return boolMaybe, nil
}

func (b *BinaryCmp) PropagateConstraints(_ interval.Interval, children []interval.Interval) ([]*interval.Interval, error) {
	left, right := children[0], children[1]
	newLeft, newRight, err := PropagateComparison(b.Op, left, right)
	if err != nil {
		return nil, err
	}
	return []*interval.Interval{newLeft, newRight}, nil
}
