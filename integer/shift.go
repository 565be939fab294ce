package integer

import "github.com/calebcase/binary/boolean"

// Shl returns v << n.
func Shl(v, n Integer) Integer {
	return ShlRaw(v, Normalize(n))
}

// ShlRaw returns v << n for a normalized n. A padded zero amount such as
// B0{Zero{}} still shifts once; use Shl unless n is known to be normalized.
//
//	ShlRaw(v, Zero) = v
//	ShlRaw(v, n)    = B0{ShlRaw(v, Normalize(Pred(n)))}
//
// The result is not normalized.
func ShlRaw(v, n Integer) Integer {
	v = orZero(v)

	for {
		bit, rest, ok := split(n)
		if !ok {
			return v
		}

		v = B0{Rest: v}
		n = decrement(bit, rest)
	}
}

// Shr returns v >> n.
func Shr(v, n Integer) Integer {
	return ShrRaw(v, Normalize(n))
}

// ShrRaw returns v >> n for a normalized n. A padded zero amount such as
// B0{Zero{}} still shifts once; use Shr unless n is known to be normalized.
//
//	ShrRaw(v, Zero)     = v
//	ShrRaw(Zero, n)     = Zero
//	ShrRaw(B0{r}, n)    = ShrRaw(r, Normalize(Pred(n)))
//	ShrRaw(B1{r}, n)    = ShrRaw(r, Normalize(Pred(n)))
func ShrRaw(v, n Integer) Integer {
	v = orZero(v)

	for {
		bit, rest, ok := split(n)
		if !ok {
			return v
		}

		_, high, ok := split(v)
		if !ok {
			return Zero{}
		}

		v = high
		n = decrement(bit, rest)
	}
}

// decrement returns the normalized predecessor of the nonzero shift amount
// with low bit bit and higher bits rest.
func decrement(bit bool, rest Integer) Integer {
	if !bit {
		return Normalize(Pred(B0{Rest: rest}))
	}

	// Pred(B1{rest}) is B0{rest}, which is only normalized when rest is
	// not zero.
	rest = Normalize(rest)

	return boolean.If[Integer](Eq(Zero{}, rest), Zero{}, B0{Rest: rest})
}
