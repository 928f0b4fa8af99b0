package expr

import "gopkg.in/src-d/go-errors.v1"

// ErrUnsupportedOperator is returned when a BinaryArith/BinaryCmp node or
// a kernel function is given an operator it does not implement.
var ErrUnsupportedOperator = errors.NewKind("expr: unsupported operator: %v")
