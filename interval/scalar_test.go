package interval

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareFinite(t *testing.T) {
	tests := []struct {
		name string
		a, b Scalar
		want int
	}{
		{"int equal", NewInt(Int32, 5), NewInt(Int32, 5), 0},
		{"int less", NewInt(Int32, 1), NewInt(Int32, 2), -1},
		{"int greater", NewInt(Int32, 2), NewInt(Int32, 1), 1},
		{"uint less", NewUint(Uint64, 1), NewUint(Uint64, 2), -1},
		{"float less", NewFloat(Float64, 1.5), NewFloat(Float64, 2.5), -1},
		{"decimal equal", NewDecimal(decimal.New(2, 0)), NewDecimal(decimal.New(2, 0)), 0},
		{"bool less", NewBool(false), NewBool(true), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			rev, err := Compare(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, -tt.want, rev)
		})
	}
}

func TestCompareInfinities(t *testing.T) {
	tests := []struct {
		name string
		a, b Scalar
		want int
	}{
		{"neginf vs finite", NegInfOf(Int32), NewInt(Int32, -100), -1},
		{"posinf vs finite", PosInfOf(Int32), NewInt(Int32, 100), 1},
		{"neginf vs neginf", NegInfOf(Int32), NegInfOf(Int32), 0},
		{"posinf vs posinf", PosInfOf(Int32), PosInfOf(Int32), 0},
		{"neginf vs posinf", NegInfOf(Int32), PosInfOf(Int32), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareDataTypeMismatch(t *testing.T) {
	_, err := Compare(NewInt(Int32, 1), NewUint(Uint32, 1))
	require.Error(t, err)
	assert.True(t, ErrDataTypeMismatch.Is(err))
}

func TestZero(t *testing.T) {
	assert.Equal(t, int64(0), Zero(Int64).Int())
	assert.Equal(t, uint64(0), Zero(Uint64).Uint())
	assert.Equal(t, 0.0, Zero(Float64).Float())
	assert.True(t, Zero(Decimal).Dec().Equal(decimal.Zero))
}
