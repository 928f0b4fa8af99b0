package interval

// Interval is a closed range [Lower, Upper] over scalars of a single
// DataType. ±∞ is represented by Lower/Upper carrying a non-Finite Bound
// (see Scalar), never by a sentinel numeric value.
//
// For Boolean-typed intervals the propagator gives three shapes special
// meaning: (false, false) marks a provably unsatisfiable predicate,
// (false, true) marks one that may or may not be satisfiable, and
// (true, true) marks one that is necessarily satisfied.
type Interval struct {
	Lower Scalar
	Upper Scalar
}

// Default returns the (-∞, +∞) interval over the generic numeric domain
// used to initialize non-leaf nodes before their first evaluation. Callers
// that need a typed unbounded interval should use Unbounded instead.
func Default() Interval {
	return Unbounded(Float64)
}

// Unbounded returns (-∞, +∞) over t.
func Unbounded(t DataType) Interval {
	return Interval{Lower: NegInfOf(t), Upper: PosInfOf(t)}
}

// Singleton returns the degenerate interval [v, v].
func Singleton(v Scalar) Interval {
	return Interval{Lower: v, Upper: v}
}

// DataType returns the shared DataType of i's bounds.
func (i Interval) DataType() DataType {
	return i.Lower.Type
}

// IsSingleton reports whether i contains exactly one point.
func (i Interval) IsSingleton() bool {
	if i.Lower.IsInf() || i.Upper.IsInf() {
		return false
	}
	c, err := Compare(i.Lower, i.Upper)
	return err == nil && c == 0
}

// Contains reports whether v falls within i, inclusive of both ends.
func (i Interval) Contains(v Scalar) (bool, error) {
	lo, err := Compare(i.Lower, v)
	if err != nil {
		return false, err
	}
	hi, err := Compare(v, i.Upper)
	if err != nil {
		return false, err
	}
	return lo <= 0 && hi <= 0, nil
}

// ContainsInterval reports whether other is entirely contained within i.
func (i Interval) ContainsInterval(other Interval) (bool, error) {
	lo, err := Compare(i.Lower, other.Lower)
	if err != nil {
		return false, err
	}
	hi, err := Compare(other.Upper, i.Upper)
	if err != nil {
		return false, err
	}
	return lo <= 0 && hi <= 0, nil
}

// Intersect returns (a ∩ b, true) if the two intervals overlap, or
// (zero-value, false) if the intersection is empty (infeasible). The
// returned interval's bounds are whichever of a/b's ends are tighter,
// preserving unbounded ends correctly.
func Intersect(a, b Interval) (Interval, bool, error) {
	if a.DataType() != b.DataType() {
		return Interval{}, false, ErrDataTypeMismatch.New(a.DataType(), b.DataType())
	}
	lower, err := maxScalar(a.Lower, b.Lower)
	if err != nil {
		return Interval{}, false, err
	}
	upper, err := minScalar(a.Upper, b.Upper)
	if err != nil {
		return Interval{}, false, err
	}
	if lower.Bound == Finite && upper.Bound == Finite {
		c, err := Compare(lower, upper)
		if err != nil {
			return Interval{}, false, err
		}
		if c > 0 {
			return Interval{}, false, nil
		}
	} else if lower.Bound == PosInf || upper.Bound == NegInf {
		// A lower bound pinned at +∞ or an upper bound pinned at -∞ can
		// only happen if one side's own interval was malformed; treat as
		// infeasible rather than panicking downstream.
		return Interval{}, false, nil
	}
	return Interval{Lower: lower, Upper: upper}, true, nil
}
