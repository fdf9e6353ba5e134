package crypto

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
)

// randReader is the random source used for seal keys.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// Seal is a detached ML-DSA-65 signature over an artifact.
type Seal struct {
	// V is the seal format version.
	V int `json:"v"`
	// Alg is the signature algorithm, always "ML-DSA-65".
	Alg string `json:"alg"`
	// PublicKey is the one-time verification key (base64url-encoded).
	PublicKey string `json:"publicKey"`
	// Sig is the signature over the artifact (base64url-encoded).
	Sig string `json:"sig"`
}

// SealArtifact signs data with a freshly generated ML-DSA-65 key.
func SealArtifact(data []byte) (*Seal, error) {
	pub, priv, err := mldsa65.GenerateKey(randReader)
	if err != nil {
		return nil, fmt.Errorf("generate seal key: %w", err)
	}

	sig := make([]byte, mldsa65.SignatureSize)
	if err := mldsa65.SignTo(priv, data, []byte(SealContext), false, sig); err != nil {
		return nil, fmt.Errorf("sign artifact: %w", err)
	}

	// MarshalBinary never fails for a key from GenerateKey
	pubBytes, _ := pub.MarshalBinary()

	return &Seal{
		V:         SealVersion,
		Alg:       SealAlgorithm,
		PublicKey: ToBase64URL(pubBytes),
		Sig:       ToBase64URL(sig),
	}, nil
}

// VerifySeal checks that seal is a valid signature over data.
func VerifySeal(data []byte, seal *Seal) error {
	if seal == nil {
		return fmt.Errorf("%w: missing seal", ErrInvalidSeal)
	}
	if seal.V != SealVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidSeal, seal.V)
	}
	if seal.Alg != SealAlgorithm {
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidSeal, seal.Alg)
	}

	pubBytes, err := FromBase64URL(seal.PublicKey)
	if err != nil {
		return fmt.Errorf("%w: decode public key: %v", ErrInvalidSeal, err)
	}
	if len(pubBytes) != MLDSAPublicKeySize {
		return fmt.Errorf("%w: public key size %d, expected %d", ErrInvalidSeal, len(pubBytes), MLDSAPublicKeySize)
	}

	sig, err := FromBase64URL(seal.Sig)
	if err != nil {
		return fmt.Errorf("%w: decode signature: %v", ErrInvalidSeal, err)
	}
	if len(sig) != MLDSASignatureSize {
		return fmt.Errorf("%w: signature size %d, expected %d", ErrInvalidSeal, len(sig), MLDSASignatureSize)
	}

	var pk mldsa65.PublicKey
	if err := pk.UnmarshalBinary(pubBytes); err != nil {
		return fmt.Errorf("%w: parse public key: %v", ErrInvalidSeal, err)
	}

	if !mldsa65.Verify(&pk, data, []byte(SealContext), sig) {
		return ErrSignatureVerificationFailed
	}
	return nil
}
