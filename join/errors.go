package join

import errors "gopkg.in/src-d/go-errors.v1"

var (
	// ErrUnsupportedColumnType is returned by ColumnType for a wire type
	// this repository's interval domain has no representation for.
	ErrUnsupportedColumnType = errors.NewKind("join: unsupported column type %v for interval propagation")

	// ErrKeyNotInPredicate is returned by NewWatermarkPruner when a given
	// key expression's structural key matches no node in the predicate.
	ErrKeyNotInPredicate = errors.NewKind("join: %s key expression is not part of the pruning predicate")
)
