package textbookrsa

import (
	"math/rand/v2"

	"github.com/vaultsandbox/textbook-rsa/internal/crypto"
)

// Key generation defaults.
const (
	DefaultMinPrimeIndex = crypto.DefaultMinPrimeIndex
	DefaultMaxPrimeIndex = crypto.DefaultMaxPrimeIndex
	DefaultMaxAttempts   = crypto.DefaultMaxAttempts
)

// RandSource supplies randomness for key generation.
// *math/rand/v2.Rand satisfies it.
type RandSource = crypto.RandSource

// keygenConfig holds configuration for key generation.
type keygenConfig struct {
	source      func() (RandSource, error)
	minIndex    int
	maxIndex    int
	exponents   []uint64
	maxAttempts int
}

// Option configures key generation.
type Option func(*keygenConfig)

// WithRand sets the random source used to pick prime indices.
func WithRand(src RandSource) Option {
	return func(c *keygenConfig) {
		c.source = func() (RandSource, error) { return src, nil }
	}
}

// WithSeed makes key generation reproducible from a numeric seed.
func WithSeed(seed uint64) Option {
	return func(c *keygenConfig) {
		c.source = func() (RandSource, error) { return crypto.NewSeededSource(seed), nil }
	}
}

// WithPassphrase makes key generation reproducible from a passphrase.
// The passphrase is stretched with HKDF-SHA-512 into a ChaCha8 seed.
func WithPassphrase(passphrase string) Option {
	return func(c *keygenConfig) {
		c.source = func() (RandSource, error) { return crypto.NewPassphraseSource(passphrase) }
	}
}

// WithPrimeIndexRange sets the half-open range [lo, hi) of 1-based prime
// indices the two primes are drawn from.
func WithPrimeIndexRange(lo, hi int) Option {
	return func(c *keygenConfig) {
		c.minIndex = lo
		c.maxIndex = hi
	}
}

// WithExponents sets the public exponent candidates, in order of preference.
func WithExponents(exponents ...uint64) Option {
	return func(c *keygenConfig) {
		c.exponents = append([]uint64(nil), exponents...)
	}
}

// WithMaxAttempts sets how many prime pairs are tried before giving up.
func WithMaxAttempts(n int) Option {
	return func(c *keygenConfig) {
		c.maxAttempts = n
	}
}

func defaultSource() (RandSource, error) {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), nil
}

func newKeygenConfig(opts []Option) *keygenConfig {
	def := crypto.DefaultKeygenConfig()
	cfg := &keygenConfig{
		source:      defaultSource,
		minIndex:    def.MinIndex,
		maxIndex:    def.MaxIndex,
		exponents:   def.Exponents,
		maxAttempts: def.MaxAttempts,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *keygenConfig) internal() crypto.KeygenConfig {
	return crypto.KeygenConfig{
		MinIndex:    c.minIndex,
		MaxIndex:    c.maxIndex,
		Exponents:   c.exponents,
		MaxAttempts: c.maxAttempts,
	}
}
