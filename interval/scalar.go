// Package interval implements closed numeric/boolean intervals and the
// elementwise arithmetic a constraint propagator needs over them.
package interval

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// DataType tags the logical width and family of a Scalar. Every signed
// integer family member is stored as int64, every unsigned member as
// uint64, and both float widths as float64; DataType only records which
// width the value is supposed to behave as for overflow purposes.
type DataType uint8

const (
	Int8 DataType = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Decimal
	Boolean
)

func (t DataType) String() string {
	switch t {
	case Int8:
		return "Int8"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Uint8:
		return "Uint8"
	case Uint16:
		return "Uint16"
	case Uint32:
		return "Uint32"
	case Uint64:
		return "Uint64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Decimal:
		return "Decimal"
	case Boolean:
		return "Boolean"
	default:
		return fmt.Sprintf("DataType(%d)", uint8(t))
	}
}

func (t DataType) isSigned() bool {
	return t == Int8 || t == Int16 || t == Int32 || t == Int64
}

func (t DataType) isUnsigned() bool {
	return t == Uint8 || t == Uint16 || t == Uint32 || t == Uint64
}

func (t DataType) isFloat() bool {
	return t == Float32 || t == Float64
}

// Bound records whether a Scalar holds a finite value or stands for one of
// the two unbounded ends of the generic numeric domain. Representing
// infinity as a tag (rather than a sentinel numeric value such as
// math.MaxInt64) avoids spurious overflow when infinities participate in
// arithmetic.
type Bound uint8

const (
	Finite Bound = iota
	NegInf
	PosInf
)

// Scalar is a typed numeric or boolean value, or one of the two unbounded
// unbounded ends of DataType's domain.
type Scalar struct {
	Type  DataType
	Bound Bound

	i int64
	u uint64
	f float64
	d decimal.Decimal
	b bool
}

// NewInt constructs a finite signed-integer scalar. Panics if t is not a
// signed integer DataType; this is a programmer error, not a runtime one.
func NewInt(t DataType, v int64) Scalar {
	if !t.isSigned() {
		panic("interval: NewInt requires a signed integer DataType")
	}
	return Scalar{Type: t, i: v}
}

// NewUint constructs a finite unsigned-integer scalar.
func NewUint(t DataType, v uint64) Scalar {
	if !t.isUnsigned() {
		panic("interval: NewUint requires an unsigned integer DataType")
	}
	return Scalar{Type: t, u: v}
}

// NewFloat constructs a finite float scalar.
func NewFloat(t DataType, v float64) Scalar {
	if !t.isFloat() {
		panic("interval: NewFloat requires a float DataType")
	}
	if math.IsInf(v, 1) {
		return PosInfOf(t)
	}
	if math.IsInf(v, -1) {
		return NegInfOf(t)
	}
	return Scalar{Type: t, f: v}
}

// NewDecimal constructs a finite decimal scalar.
func NewDecimal(v decimal.Decimal) Scalar {
	return Scalar{Type: Decimal, d: v}
}

// NewBool constructs a boolean scalar. Boolean scalars are always finite;
// the (false,false)/(false,true)/(true,true) shapes of a boolean Interval
// carry the propagator's satisfiability verdicts (see package doc on
// Interval).
func NewBool(v bool) Scalar {
	return Scalar{Type: Boolean, b: v}
}

// NegInfOf returns the "no lower bound" scalar for t.
func NegInfOf(t DataType) Scalar {
	return Scalar{Type: t, Bound: NegInf}
}

// PosInfOf returns the "no upper bound" scalar for t.
func PosInfOf(t DataType) Scalar {
	return Scalar{Type: t, Bound: PosInf}
}

// Zero returns the finite additive identity for t.
func Zero(t DataType) Scalar {
	switch {
	case t.isSigned():
		return NewInt(t, 0)
	case t.isUnsigned():
		return NewUint(t, 0)
	case t.isFloat():
		return NewFloat(t, 0)
	case t == Decimal:
		return NewDecimal(decimal.Zero)
	default:
		panic("interval: Zero undefined for " + t.String())
	}
}

// IsInf reports whether s stands for -∞ or +∞.
func (s Scalar) IsInf() bool {
	return s.Bound != Finite
}

// Int returns the finite signed-integer value of s. Only valid when
// s.Type.isSigned() and s.Bound == Finite.
func (s Scalar) Int() int64 { return s.i }

// Uint returns the finite unsigned-integer value of s.
func (s Scalar) Uint() uint64 { return s.u }

// Float returns the finite float value of s.
func (s Scalar) Float() float64 { return s.f }

// Dec returns the finite decimal.Decimal value of s.
func (s Scalar) Dec() decimal.Decimal { return s.d }

// Bool returns the boolean value of s.
func (s Scalar) Bool() bool { return s.b }

func (s Scalar) String() string {
	switch s.Bound {
	case NegInf:
		return "-inf"
	case PosInf:
		return "+inf"
	}
	switch {
	case s.Type.isSigned():
		return fmt.Sprintf("%d", s.i)
	case s.Type.isUnsigned():
		return fmt.Sprintf("%d", s.u)
	case s.Type.isFloat():
		return fmt.Sprintf("%v", s.f)
	case s.Type == Decimal:
		return s.d.String()
	case s.Type == Boolean:
		return fmt.Sprintf("%v", s.b)
	default:
		return "?"
	}
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than
// b. a and b must share a DataType. Infinite bounds compare as expected
// (-∞ < anything < +∞, -∞ == -∞, +∞ == +∞); Boolean treats false < true.
func Compare(a, b Scalar) (int, error) {
	if a.Type != b.Type {
		return 0, ErrDataTypeMismatch.New(a.Type, b.Type)
	}
	if a.Bound != Finite || b.Bound != Finite {
		return compareBounds(a.Bound, b.Bound), nil
	}
	switch {
	case a.Type.isSigned():
		return compareOrdered(a.i, b.i), nil
	case a.Type.isUnsigned():
		return compareOrdered(a.u, b.u), nil
	case a.Type.isFloat():
		return compareOrdered(a.f, b.f), nil
	case a.Type == Decimal:
		return a.d.Cmp(b.d), nil
	case a.Type == Boolean:
		return compareOrdered(boolRank(a.b), boolRank(b.b)), nil
	default:
		return 0, ErrUnsupportedType.New(a.Type)
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareOrdered[T int64 | uint64 | float64 | int](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareBounds ranks NegInf < Finite < PosInf for whichever side is
// unbounded; two equal bound kinds compare equal (both finite is handled
// by the caller before reaching here).
func compareBounds(a, b Bound) int {
	rank := func(v Bound) int {
		switch v {
		case NegInf:
			return -1
		case PosInf:
			return 1
		default:
			return 0
		}
	}
	ra, rb := rank(a), rank(b)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// maxScalar returns the greater of a and b, treating infinities correctly.
func maxScalar(a, b Scalar) (Scalar, error) {
	c, err := Compare(a, b)
	if err != nil {
		return Scalar{}, err
	}
	if c >= 0 {
		return a, nil
	}
	return b, nil
}

// minScalar returns the lesser of a and b, treating infinities correctly.
func minScalar(a, b Scalar) (Scalar, error) {
	c, err := Compare(a, b)
	if err != nil {
		return Scalar{}, err
	}
	if c <= 0 {
		return a, nil
	}
	return b, nil
}
