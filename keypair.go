package textbookrsa

import (
	"fmt"

	"github.com/vaultsandbox/textbook-rsa/internal/crypto"
)

// MaxBlock is the largest block value the encoder produces. Every usable
// modulus is strictly greater.
const MaxBlock = crypto.MinModulus - 1

// PublicKey is the (e, n) half of a keypair.
type PublicKey struct {
	E uint64
	N uint64
}

// String formats the key as "(e, n)".
func (k PublicKey) String() string {
	return fmt.Sprintf("(%d, %d)", k.E, k.N)
}

// PrivateKey is the (d, n) half of a keypair.
type PrivateKey struct {
	D uint64
	N uint64
}

// String formats the key as "(d, n)".
func (k PrivateKey) String() string {
	return fmt.Sprintf("(%d, %d)", k.D, k.N)
}

// Keypair is a textbook RSA keypair. P and Q are the generating primes;
// they are zero for keypairs imported without them.
type Keypair struct {
	E uint64
	N uint64
	D uint64
	P uint64
	Q uint64
}

// GenerateKeypair generates a keypair from two distinct random primes.
//
// When every attempt fails the error is a *KeyGenerationError; it matches
// ErrKeyGeneration and, through its cause, ErrNoCoprimeExponent or
// ErrNoInverse.
func GenerateKeypair(opts ...Option) (*Keypair, error) {
	cfg := newKeygenConfig(opts)

	src, err := cfg.source()
	if err != nil {
		return nil, fmt.Errorf("build random source: %w", err)
	}

	kp, err := crypto.GenerateKeypair(src, cfg.internal())
	if err != nil {
		return nil, wrapError(err)
	}

	return &Keypair{E: kp.E, N: kp.N, D: kp.D, P: kp.P, Q: kp.Q}, nil
}

// Public returns the public key.
func (k *Keypair) Public() PublicKey {
	return PublicKey{E: k.E, N: k.N}
}

// Private returns the private key.
func (k *Keypair) Private() PrivateKey {
	return PrivateKey{D: k.D, N: k.N}
}

// Totient returns (p-1)*(q-1), or zero when the primes are unknown.
func (k *Keypair) Totient() uint64 {
	if k.P == 0 || k.Q == 0 {
		return 0
	}
	return (k.P - 1) * (k.Q - 1)
}

// Validate checks that the keypair is self-consistent and that its modulus
// exceeds MaxBlock. Errors match ErrInvalidKeypair.
func (k *Keypair) Validate() error {
	if k == nil {
		return fmt.Errorf("%w: nil keypair", ErrInvalidKeypair)
	}
	return k.internal().Validate()
}

// Encrypt raises every block to e modulo n. N must be non-zero; call
// Validate on keypairs that were not produced by GenerateKeypair or
// ImportKeypair.
func (k *Keypair) Encrypt(blocks []uint64) []uint64 {
	return k.internal().Encrypt(blocks)
}

// Decrypt raises every block to d modulo n. The same precondition on N
// applies as for Encrypt.
func (k *Keypair) Decrypt(blocks []uint64) []uint64 {
	return k.internal().Decrypt(blocks)
}

func (k *Keypair) internal() *crypto.Keypair {
	return &crypto.Keypair{P: k.P, Q: k.Q, N: k.N, Totient: k.Totient(), E: k.E, D: k.D}
}
