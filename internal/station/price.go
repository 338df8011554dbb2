package station

import (
	"fmt"

	"github.com/holiman/uint256"
)

// maxPow10Uint128 is the largest n with 10^n < 2^128.
const maxPow10Uint128 = 38

// Price is an oracle quote worth Mantissa * 10^Exponent.
type Price struct {
	Mantissa int64 `json:"price"`
	Exponent int32 `json:"expo"`
}

// FeeRate is a rational surcharge applied during conversion. Both terms
// fit in 128 bits and the denominator is never zero.
type FeeRate struct {
	Numerator   *uint256.Int
	Denominator *uint256.Int
}

func NewFeeRate(num, den *uint256.Int) (FeeRate, error) {
	if num == nil || den == nil {
		return FeeRate{}, fmt.Errorf("%w: missing term", ErrInvalidFeeRate)
	}
	if den.IsZero() {
		return FeeRate{}, fmt.Errorf("%w: zero denominator", ErrInvalidFeeRate)
	}
	if !fitsUint128(num) || !fitsUint128(den) {
		return FeeRate{}, fmt.Errorf("%w: fee rate exceeds 128 bits", ErrArithmeticOverflow)
	}
	return FeeRate{Numerator: num.Clone(), Denominator: den.Clone()}, nil
}

// UnitFeeRate charges no surcharge.
func UnitFeeRate() FeeRate {
	return FeeRate{Numerator: uint256.NewInt(1), Denominator: uint256.NewInt(1)}
}

func (r FeeRate) Clone() FeeRate {
	out := FeeRate{}
	if r.Numerator != nil {
		out.Numerator = r.Numerator.Clone()
	}
	if r.Denominator != nil {
		out.Denominator = r.Denominator.Clone()
	}
	return out
}

func (r FeeRate) String() string {
	if r.Numerator == nil || r.Denominator == nil {
		return "<nil>"
	}
	return r.Numerator.Dec() + "/" + r.Denominator.Dec()
}

// Convert turns quantity into the price unit of into using the two oracle
// quotes and the fee rate. Any nonzero remainder rounds the result up by one
// so the charge never under-covers the converted cost.
func Convert(quantity *uint256.Int, from, into Price, rate FeeRate) (*uint256.Int, error) {
	if from.Mantissa < 0 || into.Mantissa < 0 {
		return nil, ErrNegativePrice
	}
	if rate.Numerator == nil || rate.Denominator == nil {
		return nil, fmt.Errorf("%w: missing term", ErrInvalidFeeRate)
	}
	rateInto := uint256.NewInt(uint64(into.Mantissa))
	rateFrom := uint256.NewInt(uint64(from.Mantissa))

	var err error
	exp := int64(into.Exponent) - int64(from.Exponent)
	switch {
	case exp < 0:
		rateFrom, err = scalePow10(rateFrom, -exp)
	case exp > 0:
		rateInto, err = scalePow10(rateInto, exp)
	}
	if err != nil {
		return nil, err
	}

	numerator, err := checkedMul(quantity, rateInto, rate.Numerator)
	if err != nil {
		return nil, err
	}
	denominator, err := checkedMul(rateFrom, rate.Denominator)
	if err != nil {
		return nil, err
	}
	if denominator.IsZero() {
		return nil, ErrDivisionByZero
	}

	quo, rem := new(uint256.Int).DivMod(numerator, denominator, new(uint256.Int))
	if !rem.IsZero() {
		var overflow bool
		quo, overflow = new(uint256.Int).AddOverflow(quo, uint256.NewInt(1))
		if overflow {
			return nil, ErrArithmeticOverflow
		}
	}
	if !fitsUint128(quo) {
		return nil, fmt.Errorf("%w: converted amount %s exceeds 128 bits", ErrArithmeticOverflow, quo.Dec())
	}
	return quo, nil
}

// scalePow10 multiplies a 128-bit rate by 10^n, keeping the result in 128 bits.
func scalePow10(rate *uint256.Int, n int64) (*uint256.Int, error) {
	if n > maxPow10Uint128 {
		return nil, fmt.Errorf("%w: exponent delta %d", ErrArithmeticOverflow, n)
	}
	pow := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(n)))
	out, overflow := new(uint256.Int).MulOverflow(rate, pow)
	if overflow || !fitsUint128(out) {
		return nil, fmt.Errorf("%w: scaled rate", ErrArithmeticOverflow)
	}
	return out, nil
}

func checkedMul(factors ...*uint256.Int) (*uint256.Int, error) {
	out := uint256.NewInt(1)
	for _, f := range factors {
		var overflow bool
		out, overflow = new(uint256.Int).MulOverflow(out, f)
		if overflow {
			return nil, ErrArithmeticOverflow
		}
	}
	return out, nil
}

func checkedAdd(x, y *uint256.Int) (*uint256.Int, error) {
	out, overflow := new(uint256.Int).AddOverflow(x, y)
	if overflow {
		return nil, ErrArithmeticOverflow
	}
	return out, nil
}

func fitsUint128(x *uint256.Int) bool {
	return x.BitLen() <= 128
}
