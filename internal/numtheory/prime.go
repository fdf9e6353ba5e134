package numtheory

// IsPrime reports whether n is prime.
// Multiples of 2 and 3 are rejected up front, then candidates of the form
// 6k±1 are tried up to √n.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	// i <= n/i is i*i <= n without the overflow
	for i := uint64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// NthPrime returns the n-th prime in ascending order, 1-indexed, so
// NthPrime(1) is 2. It scans upward from 2 and costs roughly O(p√p) for
// the returned prime p.
func NthPrime(n int) (uint64, error) {
	if n <= 0 {
		return 0, ErrInvalidIndex
	}

	count := 0
	candidate := uint64(1)
	for count < n {
		candidate++
		if IsPrime(candidate) {
			count++
		}
	}
	return candidate, nil
}
