package interval

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrDataTypeMismatch is returned when an operation is attempted
	// across two scalars or intervals of different DataTypes.
	ErrDataTypeMismatch = errors.NewKind("interval: datatype mismatch: %v vs %v")
	// ErrUnsupportedType is returned when an operation has no defined
	// behavior for a given DataType.
	ErrUnsupportedType = errors.NewKind("interval: unsupported datatype: %v")
	// ErrUnsupportedOperator is returned when Apply is given an operator
	// it does not implement.
	ErrUnsupportedOperator = errors.NewKind("interval: unsupported operator: %v")
)
