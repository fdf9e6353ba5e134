package numtheory

import "math"

// ExtendedGCD returns g = gcd(a, b) together with Bézout coefficients x, y
// such that a*x + b*y == g.
//
// The loop carries the running coefficient pair instead of recursing; it
// yields the same coefficients as the textbook recursion whose base case
// is a == 0 → (b, 0, 1).
func ExtendedGCD(a, b int64) (gcd, x, y int64) {
	// Invariants: a0*x0 + b0*y0 == r0 and a0*x1 + b0*y1 == r1,
	// where a0, b0 are the original inputs and (r0, r1) walks (b, a).
	r0, r1 := b, a
	x0, y0 := int64(0), int64(1)
	x1, y1 := int64(1), int64(0)

	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		x0, x1 = x1, x0-q*x1
		y0, y1 = y1, y0-q*y1
	}
	return r0, x0, y0
}

// ModInverse returns the unique r in [0, m) with (a*r) mod m == 1.
// It returns ErrNoInverse when gcd(a, m) != 1.
func ModInverse(a, m uint64) (uint64, error) {
	if m == 0 || m > math.MaxInt64 {
		return 0, ErrModulusOutOfRange
	}
	a %= m

	g, x, _ := ExtendedGCD(int64(a), int64(m))
	if g != 1 {
		return 0, ErrNoInverse
	}

	// |x| < m, so a single correction cannot overflow
	r := x % int64(m)
	if r < 0 {
		r += int64(m)
	}
	return uint64(r), nil
}

// Coprime reports whether gcd(a, b) == 1.
func Coprime(a, b uint64) bool {
	for b != 0 {
		a, b = b, a%b
	}
	return a == 1
}
