package integer

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	num "github.com/shabbyrobe/go-num"
	"github.com/stretchr/testify/require"
)

func TestSchema(t *testing.T) {
	type TC struct {
		schema Schema
		v      Integer
		err    bool
	}

	tcs := []TC{
		{schema: Schema{}, v: Shl(B1{}, FromUint(uint(1000)))},
		{schema: Schema{Bits: 8}, v: FromUint(uint8(255))},
		{schema: Schema{Bits: 8}, v: FromUint(uint16(256)), err: true},
		{schema: Schema{Bits: 8}, v: pad(FromUint(uint8(255)), 8)},
		{schema: Uint64Schema, v: FromUint(uint64(math.MaxUint64))},
		{schema: Uint64Schema, v: Succ(FromUint(uint64(math.MaxUint64))), err: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d", i, tc.schema.Bits), func(t *testing.T) {
			err := tc.schema.Check(tc.v)
			if tc.err {
				require.Error(t, err)
				require.True(t, ErrTooLarge.Has(err))
				require.True(t, Error.Has(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestUint64(t *testing.T) {
	u, err := Uint64(MustParse("1010"))
	require.NoError(t, err)
	require.Equal(t, uint64(10), u)

	u, err = Uint64(FromUint(uint64(math.MaxUint64)))
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), u)

	_, err = Uint64(Shl(B1{}, FromUint(uint(64))))
	require.Error(t, err)
	require.True(t, ErrTooLarge.Has(err))
}

func TestU128(t *testing.T) {
	top := Normalize(Pred(Shl(B1{}, FromUint(uint(128)))))

	u, err := U128(top)
	require.NoError(t, err)
	require.Equal(t, num.U128FromRaw(math.MaxUint64, math.MaxUint64), u)
	require.Equal(t, top, FromU128(u))

	u, err = U128(MustParse("1_0000_0000"))
	require.NoError(t, err)
	require.Equal(t, num.U128From64(256), u)

	_, err = U128(Succ(top))
	require.Error(t, err)
	require.True(t, ErrTooLarge.Has(err))

	require.Equal(t, Zero{}, FromU128(num.U128{}))
}

func TestUint256(t *testing.T) {
	top := Normalize(Pred(Shl(B1{}, FromUint(uint(256)))))

	u, err := Uint256(top)
	require.NoError(t, err)
	require.Equal(t, 256, u.BitLen())
	require.Equal(t, top, FromUint256(u))

	u, err = Uint256(Mul(MustParse("1010"), MustParse("1001")))
	require.NoError(t, err)
	require.True(t, u.Eq(uint256.NewInt(90)))

	_, err = Uint256(Succ(top))
	require.Error(t, err)
	require.True(t, ErrTooLarge.Has(err))

	require.Equal(t, Zero{}, FromUint256(uint256.NewInt(0)))
}

func TestFromUint(t *testing.T) {
	require.Equal(t, Zero{}, FromUint(uint(0)))
	require.Equal(t, B1{Rest: B0{Rest: B1{Rest: Zero{}}}}, FromUint(uint8(5)))
	require.Equal(t, "1111111111111111", FromUint(uint16(math.MaxUint16)).String())
	require.Equal(t, uint64(123456789), value(t, FromUint(uint32(123456789))))
	require.True(t, IsNormalized(FromUint(uintptr(1024))))
}

func TestFromBig(t *testing.T) {
	i, ok := new(big.Int).SetString("340282366920938463463374607431768211457", 10) // 2^128 + 1
	require.True(t, ok)

	v, err := FromBig(i)
	require.NoError(t, err)
	require.True(t, IsNormalized(v))
	require.Equal(t, 129, BitLen(v))
	require.Zero(t, i.Cmp(Decode(v)))

	v, err = FromBig(new(big.Int))
	require.NoError(t, err)
	require.Equal(t, Zero{}, v)

	_, err = FromBig(big.NewInt(-1))
	require.Error(t, err)
	require.True(t, ErrNegative.Has(err))
}
