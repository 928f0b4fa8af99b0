// Package join adapts the interval propagator into a symmetric hash
// join's key-range pruning step: the one downstream consumer named
// alongside the propagator itself.
package join

import (
	"github.com/dolthub/vitess/go/sqltypes"

	"github.com/dolthub/cpsolver/interval"
)

// ColumnType maps a MySQL wire type, as a catalog would report it for a
// join key column, to this repository's DataType.
func ColumnType(t sqltypes.Type) (interval.DataType, error) {
	switch t {
	case sqltypes.Int8:
		return interval.Int8, nil
	case sqltypes.Int16:
		return interval.Int16, nil
	case sqltypes.Int24, sqltypes.Int32:
		return interval.Int32, nil
	case sqltypes.Int64:
		return interval.Int64, nil
	case sqltypes.Uint8:
		return interval.Uint8, nil
	case sqltypes.Uint16:
		return interval.Uint16, nil
	case sqltypes.Uint24, sqltypes.Uint32:
		return interval.Uint32, nil
	case sqltypes.Uint64:
		return interval.Uint64, nil
	case sqltypes.Float32:
		return interval.Float32, nil
	case sqltypes.Float64:
		return interval.Float64, nil
	case sqltypes.Decimal:
		return interval.Decimal, nil
	default:
		return 0, ErrUnsupportedColumnType.New(t)
	}
}
