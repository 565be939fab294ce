package integer

import (
	"math/big"
	"strings"
)

// Integer is a non-negative binary number. It is one of Zero, B0 or B1.
type Integer interface {
	// Value returns the number as an arbitrary precision integer.
	Value() *big.Int

	// String returns the binary digits of every node, most significant
	// first.
	String() string

	integer()
}

// Zero terminates a number. On its own it is the number 0.
type Zero struct{}

// B0 is a 0 bit followed by the higher bits in Rest.
type B0 struct {
	Rest Integer
}

// B1 is a 1 bit followed by the higher bits in Rest.
type B1 struct {
	Rest Integer
}

func (Zero) integer() {}
func (B0) integer()   {}
func (B1) integer()   {}

// Value implements Integer.
func (z Zero) Value() *big.Int { return Decode(z) }

// Value implements Integer.
func (b B0) Value() *big.Int { return Decode(b) }

// Value implements Integer.
func (b B1) Value() *big.Int { return Decode(b) }

func (z Zero) String() string { return format(z) }
func (b B0) String() string   { return format(b) }
func (b B1) String() string   { return format(b) }

// Decode returns the value of v. A nil v is zero.
func Decode(v Integer) *big.Int {
	i := new(big.Int)

	for n, bit := range bits(v) {
		if bit {
			i.SetBit(i, n, 1)
		}
	}

	return i
}

// BitLen returns the number of significant bits in v; padding is not
// counted.
func BitLen(v Integer) int {
	length := 0

	for n, bit := range bits(v) {
		if bit {
			length = n + 1
		}
	}

	return length
}

// Len returns the number of bit nodes in v, padding included.
func Len(v Integer) int {
	return len(bits(v))
}

// IsNormalized reports whether v has no B0 nodes above its highest B1.
func IsNormalized(v Integer) bool {
	bs := bits(v)

	return len(bs) == 0 || bs[len(bs)-1]
}

// split returns the low bit of v and the nodes above it. ok is false when
// v is the terminator.
func split(v Integer) (bit bool, rest Integer, ok bool) {
	switch n := v.(type) {
	case B0:
		return false, orZero(n.Rest), true
	case B1:
		return true, orZero(n.Rest), true
	}

	return false, Zero{}, false
}

func orZero(v Integer) Integer {
	if v == nil {
		return Zero{}
	}

	return v
}

// bits returns one entry per node of v, least significant first.
func bits(v Integer) (bs []bool) {
	for {
		bit, rest, ok := split(v)
		if !ok {
			return bs
		}

		bs = append(bs, bit)
		v = rest
	}
}

// wrap stacks low (least significant first) beneath tail.
func wrap(low []bool, tail Integer) Integer {
	tail = orZero(tail)

	for i := len(low) - 1; i >= 0; i-- {
		if low[i] {
			tail = B1{Rest: tail}
		} else {
			tail = B0{Rest: tail}
		}
	}

	return tail
}

func format(v Integer) string {
	bs := bits(v)
	if len(bs) == 0 {
		return "0"
	}

	sb := &strings.Builder{}
	sb.Grow(len(bs))

	for i := len(bs) - 1; i >= 0; i-- {
		if bs[i] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
