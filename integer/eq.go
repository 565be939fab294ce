package integer

import "github.com/calebcase/binary/boolean"

// Eq returns True if a and b have the same value. Padding is ignored: Zero
// equals any chain of B0 nodes.
func Eq(a, b Integer) boolean.Bool {
	for {
		abit, arest, aok := split(a)
		bbit, brest, bok := split(b)

		switch {
		case !aok && !bok:
			return boolean.True
		case !aok:
			if bbit {
				return boolean.False
			}

			b = brest

			continue
		case !bok:
			if abit {
				return boolean.False
			}

			a = arest

			continue
		case abit != bbit:
			return boolean.False
		}

		a, b = arest, brest
	}
}

// Equal is Eq as a builtin bool.
func Equal(a, b Integer) bool {
	return bool(Eq(a, b))
}

// IsZero reports whether v is zero, padded or not.
func IsZero(v Integer) bool {
	return Equal(Zero{}, v)
}
