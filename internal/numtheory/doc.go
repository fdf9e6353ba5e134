// Package numtheory implements the integer arithmetic behind textbook RSA:
// trial-division primality testing, nth-prime search, the extended
// Euclidean algorithm with modular inversion, and modular exponentiation.
//
// All functions are pure and operate on fixed-width integers. The routines
// are deliberately simple (no sieve, no Miller-Rabin) and are only suitable
// for the small primes a classroom demonstration uses.
//
// # Overflow
//
// [ModExp] multiplies through [math/bits.Mul64], so intermediate products
// are exact for every uint64 modulus. [ModInverse] works in int64 and
// rejects operands that do not fit.
package numtheory
