package integer

// Mul returns a * b by doubling and adding over the bits of b. The result is
// not normalized.
//
//	Mul(a, Zero)  = Zero
//	Mul(a, B0{b}) = B0{Mul(a, b)}
//	Mul(a, B1{b}) = Add(a, B0{Mul(a, b)})
func Mul(a, b Integer) Integer {
	bs := bits(b)

	// Evaluate from the most significant bit of b down.
	var product Integer = Zero{}
	for i := len(bs) - 1; i >= 0; i-- {
		product = B0{Rest: product}
		if bs[i] {
			product = Add(a, product)
		}
	}

	return product
}
