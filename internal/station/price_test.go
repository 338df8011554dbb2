package station

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	cases := []struct {
		name     string
		quantity uint64
		from     Price
		into     Price
		rate     FeeRate
		want     uint64
	}{
		{
			name:     "same exponent",
			quantity: 1000,
			from:     Price{Mantissa: 100, Exponent: -2},
			into:     Price{Mantissa: 50, Exponent: -2},
			rate:     UnitFeeRate(),
			want:     500,
		},
		{
			name:     "into exponent larger scales into mantissa",
			quantity: 1000,
			from:     Price{Mantissa: 100, Exponent: -8},
			into:     Price{Mantissa: 50, Exponent: -6},
			rate:     UnitFeeRate(),
			want:     50_000,
		},
		{
			name:     "from exponent larger scales from mantissa",
			quantity: 1000,
			from:     Price{Mantissa: 100, Exponent: -6},
			into:     Price{Mantissa: 50, Exponent: -8},
			rate:     UnitFeeRate(),
			want:     5,
		},
		{
			name:     "remainder rounds up by one",
			quantity: 1001,
			from:     Price{Mantissa: 100, Exponent: -2},
			into:     Price{Mantissa: 50, Exponent: -2},
			rate:     UnitFeeRate(),
			want:     501,
		},
		{
			name:     "fee rate surcharge",
			quantity: 1000,
			from:     Price{Mantissa: 100, Exponent: -2},
			into:     Price{Mantissa: 50, Exponent: -2},
			rate:     FeeRate{Numerator: uint256.NewInt(11), Denominator: uint256.NewInt(10)},
			want:     550,
		},
		{
			name:     "zero quantity",
			quantity: 0,
			from:     Price{Mantissa: 7, Exponent: 0},
			into:     Price{Mantissa: 3, Exponent: 0},
			rate:     UnitFeeRate(),
			want:     0,
		},
		{
			name:     "zero into price",
			quantity: 1000,
			from:     Price{Mantissa: 7, Exponent: 0},
			into:     Price{Mantissa: 0, Exponent: 0},
			rate:     UnitFeeRate(),
			want:     0,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Convert(uint256.NewInt(tc.quantity), tc.from, tc.into, tc.rate)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.Uint64())
		})
	}
}

func TestConvertRoundsUpByAtMostOne(t *testing.T) {
	from := Price{Mantissa: 3, Exponent: 0}
	into := Price{Mantissa: 1, Exponent: 0}
	for q := uint64(0); q < 30; q++ {
		got, err := Convert(uint256.NewInt(q), from, into, UnitFeeRate())
		require.NoError(t, err)
		floor := q / 3
		if q%3 == 0 {
			require.Equal(t, floor, got.Uint64())
		} else {
			require.Equal(t, floor+1, got.Uint64())
		}
	}
}

func TestConvertErrors(t *testing.T) {
	one := uint256.NewInt(1)
	unit := Price{Mantissa: 1, Exponent: 0}

	_, err := Convert(one, Price{Mantissa: -1}, unit, UnitFeeRate())
	require.ErrorIs(t, err, ErrNegativePrice)

	_, err = Convert(one, unit, Price{Mantissa: -5}, UnitFeeRate())
	require.ErrorIs(t, err, ErrNegativePrice)

	_, err = Convert(one, Price{Mantissa: 0}, unit, UnitFeeRate())
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Convert(one, Price{Mantissa: 1, Exponent: 0}, Price{Mantissa: 1, Exponent: 39}, UnitFeeRate())
	require.ErrorIs(t, err, ErrArithmeticOverflow)

	// 10^38 fits but the scaled mantissa does not.
	_, err = Convert(one, Price{Mantissa: 1, Exponent: 0}, Price{Mantissa: 1000, Exponent: 38}, UnitFeeRate())
	require.ErrorIs(t, err, ErrArithmeticOverflow)

	huge := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
	_, err = Convert(huge, unit, unit, UnitFeeRate())
	require.ErrorIs(t, err, ErrArithmeticOverflow)

	_, err = Convert(one, unit, unit, FeeRate{})
	require.ErrorIs(t, err, ErrInvalidFeeRate)
}

func TestNewFeeRate(t *testing.T) {
	rate, err := NewFeeRate(uint256.NewInt(3), uint256.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, "3/2", rate.String())

	_, err = NewFeeRate(uint256.NewInt(1), uint256.NewInt(0))
	require.ErrorIs(t, err, ErrInvalidFeeRate)

	_, err = NewFeeRate(nil, uint256.NewInt(1))
	require.ErrorIs(t, err, ErrInvalidFeeRate)

	big := new(uint256.Int).Lsh(uint256.NewInt(1), 128)
	_, err = NewFeeRate(big, uint256.NewInt(1))
	require.ErrorIs(t, err, ErrArithmeticOverflow)
}
