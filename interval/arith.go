package interval

// Op identifies the elementwise arithmetic Apply performs. Only addition
// and subtraction are modeled; this propagator never needs to multiply or
// divide intervals.
type Op uint8

const (
	Add Op = iota
	Sub
)

func (op Op) String() string {
	if op == Add {
		return "+"
	}
	return "-"
}

// Apply computes elementwise interval arithmetic per spec:
//
//	+: (a.lo + b.lo, a.hi + b.hi), with -∞ + x = -∞, +∞ + x = +∞.
//	-: (a.lo - b.hi, a.hi - b.lo).
//
// Overflow for the widest member of each numeric family (Int64, Uint64)
// saturates to the corresponding unbounded Scalar rather than wrapping;
// narrower family members cannot overflow their shared int64/uint64
// storage and so never need to saturate. Float arithmetic already
// saturates to ±Inf under IEEE-754 and is translated to the unbounded
// Scalar for consistency.
func Apply(op Op, a, b Interval) (Interval, error) {
	if a.DataType() != b.DataType() {
		return Interval{}, ErrDataTypeMismatch.New(a.DataType(), b.DataType())
	}
	var lower, upper Scalar
	var err error
	switch op {
	case Add:
		if lower, err = addScalars(a.Lower, b.Lower); err != nil {
			return Interval{}, err
		}
		if upper, err = addScalars(a.Upper, b.Upper); err != nil {
			return Interval{}, err
		}
	case Sub:
		if lower, err = subScalars(a.Lower, b.Upper); err != nil {
			return Interval{}, err
		}
		if upper, err = subScalars(a.Upper, b.Lower); err != nil {
			return Interval{}, err
		}
	default:
		return Interval{}, ErrUnsupportedOperator.New(op)
	}
	return Interval{Lower: lower, Upper: upper}, nil
}

// addScalars computes a + b, a and b sharing a DataType.
func addScalars(a, b Scalar) (Scalar, error) {
	if a.Bound == Finite && b.Bound == Finite {
		return finiteAdd(a, b)
	}
	bound, err := combineBound(a.Bound, b.Bound)
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{Type: a.Type, Bound: bound}, nil
}

// subScalars computes a - b, a and b sharing a DataType.
func subScalars(a, b Scalar) (Scalar, error) {
	if a.Bound == Finite && b.Bound == Finite {
		return finiteSub(a, b)
	}
	bound, err := combineBound(a.Bound, flipBound(b.Bound))
	if err != nil {
		return Scalar{}, err
	}
	return Scalar{Type: a.Type, Bound: bound}, nil
}

func flipBound(b Bound) Bound {
	switch b {
	case NegInf:
		return PosInf
	case PosInf:
		return NegInf
	default:
		return Finite
	}
}

// combineBound resolves the sign of an addition where at least one operand
// is infinite. Two same-signed infinities sum to that infinity; a finite
// operand never changes the other side's sign. Opposite-signed infinities
// (-∞ + +∞) are mathematically indeterminate and never arise from
// well-formed intervals flowing through this propagator (subtraction always
// routes through flipBound first, which keeps the two sides aligned); if it
// ever does happen it is a fatal, not silently-wrong, condition.
func combineBound(a, b Bound) (Bound, error) {
	switch {
	case a == Finite:
		return b, nil
	case b == Finite:
		return a, nil
	case a == b:
		return a, nil
	default:
		return Finite, ErrUnsupportedOperator.New("indeterminate infinity arithmetic")
	}
}

func finiteAdd(a, b Scalar) (Scalar, error) {
	switch {
	case a.Type.isSigned():
		sum := a.i + b.i
		if a.Type == Int64 && ((b.i > 0 && sum < a.i) || (b.i < 0 && sum > a.i)) {
			if b.i > 0 {
				return PosInfOf(a.Type), nil
			}
			return NegInfOf(a.Type), nil
		}
		return NewInt(a.Type, sum), nil
	case a.Type.isUnsigned():
		sum := a.u + b.u
		if a.Type == Uint64 && sum < a.u {
			return PosInfOf(a.Type), nil
		}
		return NewUint(a.Type, sum), nil
	case a.Type.isFloat():
		return NewFloat(a.Type, a.f+b.f), nil
	case a.Type == Decimal:
		return NewDecimal(a.d.Add(b.d)), nil
	default:
		return Scalar{}, ErrUnsupportedType.New(a.Type)
	}
}

func finiteSub(a, b Scalar) (Scalar, error) {
	switch {
	case a.Type.isSigned():
		diff := a.i - b.i
		if a.Type == Int64 && ((b.i < 0 && diff < a.i) || (b.i > 0 && diff > a.i)) {
			if b.i < 0 {
				return PosInfOf(a.Type), nil
			}
			return NegInfOf(a.Type), nil
		}
		return NewInt(a.Type, diff), nil
	case a.Type.isUnsigned():
		if b.u > a.u {
			// Unsigned types cannot represent a negative result, so there is
			// no wrapped value to saturate away from; 0 is the true
			// lower bound of the domain itself, not an overflow sentinel,
			// so the NegInf bound used elsewhere for saturation doesn't apply
			// here.
			return NewUint(a.Type, 0), nil
		}
		return NewUint(a.Type, a.u-b.u), nil
	case a.Type.isFloat():
		return NewFloat(a.Type, a.f-b.f), nil
	case a.Type == Decimal:
		return NewDecimal(a.d.Sub(b.d)), nil
	default:
		return Scalar{}, ErrUnsupportedType.New(a.Type)
	}
}
