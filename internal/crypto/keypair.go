package crypto

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/vaultsandbox/textbook-rsa/internal/numtheory"
)

// RandSource supplies the randomness for key generation.
// *math/rand/v2.Rand satisfies it.
type RandSource interface {
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// KeygenConfig controls GenerateKeypair.
type KeygenConfig struct {
	// MinIndex and MaxIndex bound the 1-based prime indices drawn,
	// as the half-open range [MinIndex, MaxIndex).
	MinIndex int
	MaxIndex int
	// Exponents are the public exponent candidates, in order of preference.
	Exponents []uint64
	// MaxAttempts bounds the number of prime pairs tried.
	MaxAttempts int
}

// DefaultKeygenConfig returns the configuration used when nothing is overridden.
func DefaultKeygenConfig() KeygenConfig {
	return KeygenConfig{
		MinIndex:    DefaultMinPrimeIndex,
		MaxIndex:    DefaultMaxPrimeIndex,
		Exponents:   append([]uint64(nil), DefaultExponents...),
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Validate checks that c can produce a keypair at all.
func (c KeygenConfig) Validate() error {
	if c.MinIndex < 1 {
		return fmt.Errorf("%w: minimum prime index %d must be at least 1", ErrInvalidConfig, c.MinIndex)
	}
	// two distinct indices are needed for p != q
	if c.MaxIndex-c.MinIndex < 2 {
		return fmt.Errorf("%w: prime index range [%d, %d) holds fewer than two indices", ErrInvalidConfig, c.MinIndex, c.MaxIndex)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts %d must be at least 1", ErrInvalidConfig, c.MaxAttempts)
	}
	if len(c.Exponents) == 0 {
		return fmt.Errorf("%w: no exponent candidates", ErrInvalidConfig)
	}
	return nil
}

// Keypair is a textbook RSA keypair along with the primes it came from.
type Keypair struct {
	P, Q    uint64
	N       uint64
	Totient uint64
	E       uint64
	D       uint64
}

// GenerateKeypair draws prime pairs from src until one yields a usable
// public exponent and its inverse, or cfg.MaxAttempts pairs have failed.
// Exhaustion is reported as an *AttemptsError wrapping the last failure.
func GenerateKeypair(src RandSource, cfg KeygenConfig) (*Keypair, error) {
	if src == nil {
		return nil, ErrNilRandSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		kp, err := tryKeypair(src, cfg)
		if err == nil {
			return kp, nil
		}
		lastErr = err
	}
	return nil, &AttemptsError{Attempts: cfg.MaxAttempts, Err: lastErr}
}

func tryKeypair(src RandSource, cfg KeygenConfig) (*Keypair, error) {
	p, q, err := drawPrimePair(src, cfg)
	if err != nil {
		return nil, err
	}

	hi, n := bits.Mul64(p, q)
	if hi != 0 || n > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d * %d", ErrModulusTooLarge, p, q)
	}
	if n < MinModulus {
		return nil, fmt.Errorf("%w: n = %d", ErrModulusTooSmall, n)
	}
	totient := (p - 1) * (q - 1)

	e, err := SelectExponent(totient, cfg.Exponents)
	if err != nil {
		return nil, err
	}

	d, err := numtheory.ModInverse(e, totient)
	if err != nil {
		return nil, fmt.Errorf("invert e = %d mod %d: %w", e, totient, err)
	}

	return &Keypair{P: p, Q: q, N: n, Totient: totient, E: e, D: d}, nil
}

// drawPrimePair maps two random indices to primes, redrawing the second
// index while it equals the first.
func drawPrimePair(src RandSource, cfg KeygenConfig) (uint64, uint64, error) {
	span := cfg.MaxIndex - cfg.MinIndex
	i := cfg.MinIndex + src.IntN(span)
	j := cfg.MinIndex + src.IntN(span)
	for redraws := 0; i == j; redraws++ {
		if redraws >= cfg.MaxAttempts {
			return 0, 0, ErrDegeneratePrimePair
		}
		j = cfg.MinIndex + src.IntN(span)
	}

	p, err := numtheory.NthPrime(i)
	if err != nil {
		return 0, 0, err
	}
	q, err := numtheory.NthPrime(j)
	if err != nil {
		return 0, 0, err
	}
	// distinct indices give distinct primes, but the invariant is p != q
	if p == q {
		return 0, 0, ErrDegeneratePrimePair
	}
	return p, q, nil
}

// SelectExponent returns the first candidate e with 1 < e < totient and
// gcd(e, totient) == 1.
func SelectExponent(totient uint64, candidates []uint64) (uint64, error) {
	for _, e := range candidates {
		if e > 1 && e < totient && numtheory.Coprime(e, totient) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: totient %d, candidates %v", ErrNoCoprimeExponent, totient, candidates)
}

// probeBlocks are round-tripped by Validate when the primes are unknown.
var probeBlocks = []uint64{0, 1, 2, 700, 1234, 2619, MinModulus - 1}

// Validate checks the keypair's internal consistency. When P and Q are set
// the arithmetic relations are checked exactly; otherwise a fixed set of
// blocks must survive an encrypt/decrypt round trip.
func (k *Keypair) Validate() error {
	if k == nil {
		return fmt.Errorf("%w: nil keypair", ErrInvalidKeypair)
	}
	if k.N < MinModulus {
		return fmt.Errorf("%w: modulus %d must exceed the largest block %d", ErrInvalidKeypair, k.N, MinModulus-1)
	}
	if k.E < 2 || k.D < 1 {
		return fmt.Errorf("%w: exponents e = %d, d = %d", ErrInvalidKeypair, k.E, k.D)
	}

	if k.P != 0 || k.Q != 0 {
		if !numtheory.IsPrime(k.P) || !numtheory.IsPrime(k.Q) || k.P == k.Q {
			return fmt.Errorf("%w: p = %d and q = %d must be distinct primes", ErrInvalidKeypair, k.P, k.Q)
		}
		hi, n := bits.Mul64(k.P, k.Q)
		if hi != 0 || n != k.N {
			return fmt.Errorf("%w: p * q != n", ErrInvalidKeypair)
		}
		totient := (k.P - 1) * (k.Q - 1)
		if k.Totient != 0 && k.Totient != totient {
			return fmt.Errorf("%w: totient %d, want %d", ErrInvalidKeypair, k.Totient, totient)
		}
		if k.E >= totient || k.D >= totient {
			return fmt.Errorf("%w: exponents must be below the totient", ErrInvalidKeypair)
		}
		hi, lo := bits.Mul64(k.E, k.D)
		if bits.Rem64(hi, lo, totient) != 1 {
			return fmt.Errorf("%w: e * d mod totient != 1", ErrInvalidKeypair)
		}
		return nil
	}

	for _, b := range probeBlocks {
		c := numtheory.ModExp(b, k.E, k.N)
		if numtheory.ModExp(c, k.D, k.N) != b {
			return fmt.Errorf("%w: block %d does not round-trip", ErrInvalidKeypair, b)
		}
	}
	return nil
}
