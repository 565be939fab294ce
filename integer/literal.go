package integer

import "unicode"

// Parse builds a number from binary digits written most significant first,
// as in "101" for 5. An optional "0b" prefix is accepted, and '_' and
// whitespace may separate digits ("0b0000_0101", "1 0 1"). Leading zeros
// are skipped so the result is normalized. The empty string is Zero.
func Parse(s string) (v Integer, err error) {
	defer Error.WrapP(&err)

	offset := 0
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'b' || s[1] == 'B') {
		offset = 2
	}

	digits := make([]uint8, 0, len(s))

	for i, r := range s[offset:] {
		switch {
		case r == '0':
			digits = append(digits, 0)
		case r == '1':
			digits = append(digits, 1)
		case r == '_' || unicode.IsSpace(r):
		default:
			return nil, ErrInvalidDigit.New("%q at offset %d", r, offset+i)
		}
	}

	return FromDigits(digits...)
}

// MustParse is like Parse but panics if s is not a valid literal.
func MustParse(s string) Integer {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return v
}

// FromDigits builds a number from digits (each 0 or 1) ordered most
// significant first. Leading zeros are skipped.
func FromDigits(digits ...uint8) (v Integer, err error) {
	defer Error.WrapP(&err)

	// Skip to the first 1; the nodes below it are built on top of B1.
	start := len(digits)
	for i, d := range digits {
		if d > 1 {
			return nil, ErrInvalidDigit.New("%d at offset %d", d, i)
		}

		if d == 1 && start == len(digits) {
			start = i
		}
	}

	if start == len(digits) {
		return Zero{}, nil
	}

	v = B1{Rest: Zero{}}
	for _, d := range digits[start+1:] {
		if d == 1 {
			v = B1{Rest: v}
		} else {
			v = B0{Rest: v}
		}
	}

	return v, nil
}
