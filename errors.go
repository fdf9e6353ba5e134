package textbookrsa

import (
	"errors"
	"fmt"

	"github.com/vaultsandbox/textbook-rsa/internal/codec"
	"github.com/vaultsandbox/textbook-rsa/internal/crypto"
	"github.com/vaultsandbox/textbook-rsa/internal/numtheory"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidCharacter is returned when a message contains a character
	// other than A–Z (either case) or space.
	ErrInvalidCharacter = codec.ErrInvalidCharacter

	// ErrKeyGeneration is returned when no keypair could be generated.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrNoInverse is returned when the public exponent has no inverse
	// modulo the totient.
	ErrNoInverse = numtheory.ErrNoInverse

	// ErrNoCoprimeExponent is returned when no exponent candidate is
	// coprime with the totient.
	ErrNoCoprimeExponent = crypto.ErrNoCoprimeExponent

	// ErrInvalidConfig is returned when key generation options are unusable.
	ErrInvalidConfig = crypto.ErrInvalidConfig

	// ErrInvalidKeypair is returned when a keypair fails validation.
	ErrInvalidKeypair = crypto.ErrInvalidKeypair

	// ErrInvalidImportData is returned when exported keypair data is invalid.
	ErrInvalidImportData = errors.New("invalid import data")

	// ErrDecodeFailed is returned when decrypted blocks do not decode to text.
	ErrDecodeFailed = errors.New("decode failed")

	// ErrRoundTripMismatch is returned when a round trip does not reproduce
	// the original message.
	ErrRoundTripMismatch = errors.New("round trip mismatch")

	// ErrSealInvalid is returned when an artifact seal does not verify.
	ErrSealInvalid = errors.New("seal verification failed")
)

// RSAError is implemented by all typed errors of this package.
type RSAError interface {
	error
	RSAError() // marker method
}

// InputError reports a message character outside the alphabet.
type InputError struct {
	Char   rune
	Offset int
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d: only A-Z and space allowed", e.Char, e.Offset)
}

// Is implements errors.Is for sentinel error matching.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// RSAError implements the RSAError interface.
func (e *InputError) RSAError() {}

// KeyGenerationError reports that every attempt to build a keypair failed.
type KeyGenerationError struct {
	Attempts int
	Err      error // cause of the last failed attempt
}

func (e *KeyGenerationError) Error() string {
	return fmt.Sprintf("key generation failed after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyGenerationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyGenerationError) Is(target error) bool {
	return target == ErrKeyGeneration
}

// RSAError implements the RSAError interface.
func (e *KeyGenerationError) RSAError() {}

// DecodeError reports decrypted blocks that are not a valid encoding.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecodeFailed
}

// RSAError implements the RSAError interface.
func (e *DecodeError) RSAError() {}

// IOError reports a failure reading or writing a file.
type IOError struct {
	Op   string // "read", "write", "rename"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// RSAError implements the RSAError interface.
func (e *IOError) RSAError() {}

// SealError reports an artifact whose seal is malformed or does not match.
type SealError struct {
	Err error
}

func (e *SealError) Error() string {
	return fmt.Sprintf("seal verification failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SealError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *SealError) Is(target error) bool {
	return target == ErrSealInvalid
}

// RSAError implements the RSAError interface.
func (e *SealError) RSAError() {}

// wrapError converts internal errors to public errors.
// This ensures that callers can use errors.As with the public types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var charErr *codec.InvalidCharacterError
	if errors.As(err, &charErr) {
		return &InputError{Char: charErr.Char, Offset: charErr.Offset}
	}

	var attemptsErr *crypto.AttemptsError
	if errors.As(err, &attemptsErr) {
		return &KeyGenerationError{Attempts: attemptsErr.Attempts, Err: attemptsErr.Err}
	}

	if errors.Is(err, codec.ErrSymbolOutOfRange) || errors.Is(err, codec.ErrLengthMismatch) {
		return &DecodeError{Err: err}
	}

	if errors.Is(err, crypto.ErrSignatureVerificationFailed) || errors.Is(err, crypto.ErrInvalidSeal) {
		return &SealError{Err: err}
	}

	return err
}
