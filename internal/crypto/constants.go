package crypto

import "github.com/vaultsandbox/textbook-rsa/internal/codec"

const (
	// DefaultMinPrimeIndex is the smallest prime index drawn by default.
	DefaultMinPrimeIndex = 500
	// DefaultMaxPrimeIndex is the exclusive upper bound of the default index range.
	DefaultMaxPrimeIndex = 1000
	// DefaultMaxAttempts bounds how many prime pairs are tried.
	DefaultMaxAttempts = 32

	// PreferredExponent is the conventional public exponent.
	PreferredExponent = 65537

	// MinModulus is the smallest n that can carry every block value.
	MinModulus = codec.MaxBlock + 1

	// SeedContext is the HKDF info string for passphrase-derived seeds.
	SeedContext = "textbook-rsa:keygen:v1"
	// SeedSize is the size of a ChaCha8 seed in bytes.
	SeedSize = 32

	// SealContext is the ML-DSA-65 context string bound into every seal.
	SealContext = "textbook-rsa:artifact:v1"
	// SealVersion is the current seal format version.
	SealVersion = 1
	// SealAlgorithm names the signature scheme of a seal.
	SealAlgorithm = "ML-DSA-65"

	// MLDSAPublicKeySize is the size of an ML-DSA-65 public key in bytes.
	MLDSAPublicKeySize = 1952
	// MLDSASignatureSize is the size of an ML-DSA-65 signature in bytes.
	MLDSASignatureSize = 3309
)

// DefaultExponents is the ordered list of public exponent candidates.
// 65537 comes first; the small fallbacks cover totients it divides.
var DefaultExponents = []uint64{PreferredExponent, 3, 5, 17, 257}
