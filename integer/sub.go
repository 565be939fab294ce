package integer

import "github.com/calebcase/binary/boolean"

// OverflowingSub returns a - b and whether b was larger than a. When
// overflow is True the returned bits are unspecified (but well formed).
// The result is not normalized.
//
//	B0{a} - B0{b} = B0{a - b}
//	B1{a} - B0{b} = B1{a - b}
//	B1{a} - B1{b} = B0{a - b}
//	B0{a} - B1{b} = B1{Pred(a) - b}, overflow if a is zero
//	v     - Zero  = v, no overflow
//	Zero  - v     = Zero, overflow unless v is zero
func OverflowingSub(a, b Integer) (result Integer, overflow boolean.Bool) {
	var low []bool

	for {
		abit, arest, aok := split(a)
		bbit, brest, bok := split(b)

		switch {
		case !bok:
			return wrap(low, a), boolean.False
		case !aok:
			return wrap(low, Zero{}), boolean.Not(Eq(Zero{}, b))
		case !abit && bbit:
			low = append(low, true)

			// Borrow from the higher bits of a. There is nothing to
			// borrow from when they are zero.
			if IsZero(arest) {
				return wrap(low, Zero{}), boolean.True
			}

			a, b = Pred(arest), brest

			continue
		}

		low = append(low, abit != bbit)
		a, b = arest, brest
	}
}

// Sub returns a - b, saturating at zero. The result is normalized.
func Sub(a, b Integer) Integer {
	result, overflow := OverflowingSub(a, b)

	return boolean.IfFunc(
		overflow,
		func() Integer { return Zero{} },
		func() Integer { return Normalize(result) },
	)
}
