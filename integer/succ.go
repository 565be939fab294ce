package integer

// Succ returns v + 1.
//
//	Succ(Zero)  = B1{Zero}
//	Succ(B0{r}) = B1{r}
//	Succ(B1{r}) = B0{Succ(r)}
func Succ(v Integer) Integer {
	var low []bool

	for {
		bit, rest, ok := split(v)
		switch {
		case !ok:
			return wrap(low, B1{Rest: Zero{}})
		case !bit:
			return wrap(low, B1{Rest: rest})
		}

		// Carry.
		low = append(low, false)
		v = rest
	}
}

// Pred returns v - 1, saturating at zero.
//
//	Pred(Zero)  = Zero
//	Pred(B0{r}) = B1{Pred(r)}
//	Pred(B1{r}) = B0{r}
//
// A chain of B0 nodes with no B1 above it is zero and saturates to Zero.
func Pred(v Integer) Integer {
	var low []bool

	for {
		bit, rest, ok := split(v)
		switch {
		case !ok:
			return Zero{}
		case bit:
			return wrap(low, B0{Rest: rest})
		}

		// Borrow.
		low = append(low, true)
		v = rest
	}
}
