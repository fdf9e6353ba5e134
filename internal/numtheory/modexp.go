package numtheory

import "math/bits"

// ModExp computes base^exponent mod modulus by repeated squaring.
// Products are formed at 128 bits, so the result is exact for any modulus.
// A zero exponent yields 1 % modulus. ModExp panics if modulus is zero.
func ModExp(base, exponent, modulus uint64) uint64 {
	if modulus == 0 {
		panic("numtheory: ModExp with zero modulus")
	}

	result := 1 % modulus
	base %= modulus
	for exponent > 0 {
		if exponent&1 == 1 {
			result = mulMod(result, base, modulus)
		}
		exponent >>= 1
		base = mulMod(base, base, modulus)
	}
	return result
}

// mulMod returns a*b mod m using a 128-bit intermediate.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}
