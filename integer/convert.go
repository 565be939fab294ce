package integer

import (
	"math/big"

	"github.com/holiman/uint256"
	num "github.com/shabbyrobe/go-num"
	"golang.org/x/exp/constraints"
)

// Schema describes the width available to a number.
type Schema struct {
	// Bits is the maximum number of significant bits. Zero is unbounded.
	Bits uint64
}

// Fixed width schemas.
var (
	Uint64Schema  = Schema{Bits: 64}
	U128Schema    = Schema{Bits: 128}
	Uint256Schema = Schema{Bits: 256}
)

// Check returns an error if v does not fit in the schema.
func (s Schema) Check(v Integer) (err error) {
	defer Error.WrapP(&err)

	if s.Bits == 0 {
		return nil
	}

	if n := BitLen(v); uint64(n) > s.Bits {
		return ErrTooLarge.New("%d bits exceeds %d", n, s.Bits)
	}

	return nil
}

// Uint64 returns v as a uint64.
func Uint64(v Integer) (_ uint64, err error) {
	defer Error.WrapP(&err)

	err = Uint64Schema.Check(v)
	if err != nil {
		return 0, err
	}

	return Decode(v).Uint64(), nil
}

// U128 returns v as a 128 bit unsigned integer.
func U128(v Integer) (_ num.U128, err error) {
	defer Error.WrapP(&err)

	err = U128Schema.Check(v)
	if err != nil {
		return num.U128{}, err
	}

	u, accurate := num.U128FromBigInt(Decode(v))
	if !accurate {
		return num.U128{}, ErrTooLarge.New("%s does not fit in 128 bits", v)
	}

	return u, nil
}

// Uint256 returns v as a 256 bit unsigned integer.
func Uint256(v Integer) (_ *uint256.Int, err error) {
	defer Error.WrapP(&err)

	err = Uint256Schema.Check(v)
	if err != nil {
		return nil, err
	}

	u, overflow := uint256.FromBig(Decode(v))
	if overflow {
		return nil, ErrTooLarge.New("%s does not fit in 256 bits", v)
	}

	return u, nil
}

// FromUint returns the normalized number for v.
func FromUint[T constraints.Unsigned](v T) Integer {
	var low []bool
	for ; v > 0; v >>= 1 {
		low = append(low, v&1 == 1)
	}

	return wrap(low, Zero{})
}

// FromBig returns the normalized number for i, which must not be negative.
func FromBig(i *big.Int) (_ Integer, err error) {
	defer Error.WrapP(&err)

	if i.Sign() < 0 {
		return nil, ErrNegative.New("%s", i)
	}

	low := make([]bool, i.BitLen())
	for n := range low {
		low[n] = i.Bit(n) == 1
	}

	return wrap(low, Zero{}), nil
}

// FromU128 returns the normalized number for u.
func FromU128(u num.U128) Integer {
	v, err := FromBig(u.AsBigInt())
	if err != nil {
		// Unreachable: U128 is never negative.
		panic(err)
	}

	return v
}

// FromUint256 returns the normalized number for u.
func FromUint256(u *uint256.Int) Integer {
	v, err := FromBig(u.ToBig())
	if err != nil {
		// Unreachable: uint256.Int is never negative.
		panic(err)
	}

	return v
}
