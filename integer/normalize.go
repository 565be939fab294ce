package integer

// Normalize returns v without the B0 nodes above its highest B1.
//
//	Normalize(Zero)  = Zero
//	Normalize(B1{r}) = B1{Normalize(r)}
//	Normalize(B0{r}) = Zero             if Normalize(r) is Zero
//	                   B0{Normalize(r)} otherwise
//
// An already normalized v is returned as is.
func Normalize(v Integer) Integer {
	if IsNormalized(v) {
		return orZero(v)
	}

	bs := bits(v)

	top := len(bs)
	for top > 0 && !bs[top-1] {
		top--
	}

	return wrap(bs[:top], Zero{})
}
