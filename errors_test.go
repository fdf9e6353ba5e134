package textbookrsa

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/vaultsandbox/textbook-rsa/internal/codec"
	"github.com/vaultsandbox/textbook-rsa/internal/crypto"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrInvalidCharacter", ErrInvalidCharacter},
		{"ErrKeyGeneration", ErrKeyGeneration},
		{"ErrNoInverse", ErrNoInverse},
		{"ErrNoCoprimeExponent", ErrNoCoprimeExponent},
		{"ErrInvalidConfig", ErrInvalidConfig},
		{"ErrInvalidKeypair", ErrInvalidKeypair},
		{"ErrInvalidImportData", ErrInvalidImportData},
		{"ErrDecodeFailed", ErrDecodeFailed},
		{"ErrRoundTripMismatch", ErrRoundTripMismatch},
		{"ErrSealInvalid", ErrSealInvalid},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if s.err == nil {
				t.Error("sentinel error is nil")
			}
			if s.err.Error() == "" {
				t.Error("sentinel error has empty message")
			}
		})
	}
}

func TestTypedErrors_ImplementRSAError(t *testing.T) {
	errs := []RSAError{
		&InputError{},
		&KeyGenerationError{},
		&DecodeError{},
		&IOError{},
		&SealError{},
	}
	for _, err := range errs {
		if err.Error() == "" {
			t.Errorf("%T has empty message", err)
		}
	}
}

func TestInputError(t *testing.T) {
	err := &InputError{Char: '!', Offset: 2}

	want := `invalid character '!' at offset 2: only A-Z and space allowed`
	if err.Error() != want {
		t.Errorf("Error() = %s, want %s", err.Error(), want)
	}
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Error("InputError should match ErrInvalidCharacter")
	}
	if errors.Is(err, ErrDecodeFailed) {
		t.Error("InputError should not match ErrDecodeFailed")
	}
}

func TestKeyGenerationError(t *testing.T) {
	cause := fmt.Errorf("%w: totient 3960", ErrNoCoprimeExponent)
	err := &KeyGenerationError{Attempts: 4, Err: cause}

	want := "key generation failed after 4 attempts: no candidate exponent is coprime with the totient: totient 3960"
	if err.Error() != want {
		t.Errorf("Error() = %s, want %s", err.Error(), want)
	}
	if !errors.Is(err, ErrKeyGeneration) {
		t.Error("KeyGenerationError should match ErrKeyGeneration")
	}
	if !errors.Is(err, ErrNoCoprimeExponent) {
		t.Error("KeyGenerationError should unwrap to its cause")
	}
}

func TestIOError(t *testing.T) {
	err := &IOError{Op: "read", Path: "message.txt", Err: fs.ErrNotExist}

	if err.Error() != "read message.txt: file does not exist" {
		t.Errorf("Error() = %s", err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("IOError should unwrap to fs.ErrNotExist")
	}
}

func TestWrapError_NilReturnsNil(t *testing.T) {
	if wrapError(nil) != nil {
		t.Error("wrapError(nil) should return nil")
	}
}

func TestWrapError_InvalidCharacter(t *testing.T) {
	err := wrapError(&codec.InvalidCharacterError{Char: '7', Offset: 4})

	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("wrapError() = %T, want *InputError", err)
	}
	if inputErr.Char != '7' || inputErr.Offset != 4 {
		t.Errorf("InputError = %+v", inputErr)
	}
}

func TestWrapError_Attempts(t *testing.T) {
	err := wrapError(&crypto.AttemptsError{Attempts: 32, Err: ErrNoInverse})

	var genErr *KeyGenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("wrapError() = %T, want *KeyGenerationError", err)
	}
	if genErr.Attempts != 32 {
		t.Errorf("Attempts = %d, want 32", genErr.Attempts)
	}
	if !errors.Is(err, ErrNoInverse) {
		t.Error("wrapped error should still match ErrNoInverse")
	}
}

func TestWrapError_Decode(t *testing.T) {
	for _, cause := range []error{codec.ErrSymbolOutOfRange, codec.ErrLengthMismatch} {
		err := wrapError(fmt.Errorf("%w: detail", cause))
		if !errors.Is(err, ErrDecodeFailed) {
			t.Errorf("wrapError(%v) should match ErrDecodeFailed", cause)
		}
		if !errors.Is(err, cause) {
			t.Errorf("wrapError(%v) should keep its cause", cause)
		}
	}
}

func TestWrapError_Seal(t *testing.T) {
	for _, cause := range []error{crypto.ErrSignatureVerificationFailed, crypto.ErrInvalidSeal} {
		err := wrapError(cause)
		var sealErr *SealError
		if !errors.As(err, &sealErr) {
			t.Errorf("wrapError(%v) = %T, want *SealError", cause, err)
		}
		if !errors.Is(err, ErrSealInvalid) {
			t.Errorf("wrapError(%v) should match ErrSealInvalid", cause)
		}
	}
}

func TestWrapError_PassesThroughOther(t *testing.T) {
	original := errors.New("some other error")
	if wrapError(original) != original {
		t.Error("wrapError should pass through unknown errors")
	}
}
