package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when a key generation config is unusable.
	ErrInvalidConfig = errors.New("invalid key generation config")

	// ErrNilRandSource is returned when no random source is supplied.
	ErrNilRandSource = errors.New("random source is required")

	// ErrNoCoprimeExponent is returned when no exponent candidate is coprime
	// with the totient.
	ErrNoCoprimeExponent = errors.New("no candidate exponent is coprime with the totient")

	// ErrDegeneratePrimePair is returned when the prime draw keeps producing p == q.
	ErrDegeneratePrimePair = errors.New("could not draw two distinct primes")

	// ErrModulusTooSmall is returned when n cannot hold every block value.
	ErrModulusTooSmall = errors.New("modulus too small for block values")

	// ErrModulusTooLarge is returned when n does not fit the 63-bit arithmetic.
	ErrModulusTooLarge = errors.New("modulus too large")

	// ErrInvalidKeypair is returned when a keypair fails validation.
	ErrInvalidKeypair = errors.New("invalid keypair")

	// ErrSignatureVerificationFailed is returned when a seal does not verify.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrInvalidSeal is returned when a seal is malformed.
	ErrInvalidSeal = errors.New("invalid seal")
)

// AttemptsError is returned when key generation runs out of attempts.
// Err is the failure of the last attempt.
type AttemptsError struct {
	Attempts int
	Err      error
}

func (e *AttemptsError) Error() string {
	return fmt.Sprintf("key generation failed after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap returns the underlying error.
func (e *AttemptsError) Unwrap() error {
	return e.Err
}
