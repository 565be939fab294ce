package integer

// Add returns a + b. The result is not normalized.
//
//	Add(B0{a}, B0{b}) = B0{Add(a, b)}
//	Add(B0{a}, B1{b}) = B1{Add(a, b)}
//	Add(B1{a}, B0{b}) = B1{Add(a, b)}
//	Add(B1{a}, B1{b}) = B0{Add(Succ(a), b)}
//	Add(v, Zero)      = v
//	Add(Zero, v)      = v
func Add(a, b Integer) Integer {
	var low []bool

	for {
		abit, arest, aok := split(a)
		bbit, brest, bok := split(b)

		switch {
		case !aok:
			return wrap(low, b)
		case !bok:
			return wrap(low, a)
		case abit && bbit:
			// The carry is folded into the higher bits of a.
			low = append(low, false)
			a, b = Succ(arest), brest

			continue
		}

		low = append(low, abit || bbit)
		a, b = arest, brest
	}
}
