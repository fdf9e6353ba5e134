package crypto

import "github.com/vaultsandbox/textbook-rsa/internal/numtheory"

// Transform returns block^exponent mod modulus for every block, preserving
// order and length. Callers must keep every block below modulus for the
// result to be invertible.
func Transform(blocks []uint64, exponent, modulus uint64) []uint64 {
	out := make([]uint64, len(blocks))
	for i, b := range blocks {
		out[i] = numtheory.ModExp(b, exponent, modulus)
	}
	return out
}

// Encrypt applies the public exponent to blocks.
func (k *Keypair) Encrypt(blocks []uint64) []uint64 {
	return Transform(blocks, k.E, k.N)
}

// Decrypt applies the private exponent to blocks.
func (k *Keypair) Decrypt(blocks []uint64) []uint64 {
	return Transform(blocks, k.D, k.N)
}
