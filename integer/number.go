package integer

import "math/big"

// Number holds an Integer so it can be marshaled. The zero Number is zero.
type Number struct {
	Int Integer
}

// Bytes returns v as big-endian bytes.
func Bytes(v Integer) []byte {
	data := Decode(v).Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data
}

// FromBytes returns the normalized number for big-endian data.
func FromBytes(data []byte) Integer {
	v, err := FromBig(new(big.Int).SetBytes(data))
	if err != nil {
		// Unreachable: SetBytes is never negative.
		panic(err)
	}

	return v
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (n Number) MarshalBinary() (data []byte, err error) {
	return Bytes(n.Int), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (n *Number) UnmarshalBinary(data []byte) (err error) {
	n.Int = FromBytes(data)

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n Number) MarshalText() (text []byte, err error) {
	return []byte("0b" + Normalize(n.Int).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number) UnmarshalText(text []byte) (err error) {
	defer Error.WrapP(&err)

	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	n.Int = v

	return nil
}
