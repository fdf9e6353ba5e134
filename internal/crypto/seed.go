package crypto

import (
	"crypto/sha512"
	"fmt"
	"io"
	"math/rand/v2"

	"golang.org/x/crypto/hkdf"
)

// pcgStream is the second PCG word paired with a user seed.
const pcgStream = 0x9e3779b97f4a7c15

// DeriveKey derives a key using HKDF-SHA-512.
func DeriveKey(secret, salt, info []byte, length int) ([]byte, error) {
	if len(salt) == 0 {
		salt = make([]byte, sha512.Size)
	}

	reader := hkdf.New(sha512.New, secret, salt, info)
	key := make([]byte, length)

	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	return key, nil
}

// NewSeededSource returns a PCG source fully determined by seed.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}

// NewPassphraseSource returns a ChaCha8 source whose seed is derived from
// passphrase, so the same passphrase always produces the same keypair.
func NewPassphraseSource(passphrase string) (*rand.Rand, error) {
	key, err := DeriveKey([]byte(passphrase), nil, []byte(SeedContext), SeedSize)
	if err != nil {
		return nil, err
	}

	var seed [SeedSize]byte
	copy(seed[:], key)
	return rand.New(rand.NewChaCha8(seed)), nil
}
