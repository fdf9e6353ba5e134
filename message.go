package textbookrsa

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vaultsandbox/textbook-rsa/internal/codec"
)

// Ciphertext is an encrypted message. Length is the number of characters
// in the plaintext; it tells the decoder whether the last block holds one
// character or two.
type Ciphertext struct {
	Blocks []uint64
	Length int
}

// EncodeMessage converts text to plaintext blocks. Lower-case letters are
// upper-cased; any character other than A–Z or space yields an *InputError.
func EncodeMessage(text string) ([]uint64, int, error) {
	msg, err := codec.Encode(text)
	if err != nil {
		return nil, 0, wrapError(err)
	}
	return msg.Blocks, msg.Length, nil
}

// DecodeMessage converts plaintext blocks holding length characters back
// to text.
func DecodeMessage(blocks []uint64, length int) (string, error) {
	text, err := codec.Decode(blocks, length)
	if err != nil {
		return "", wrapError(err)
	}
	return text, nil
}

// EncryptMessage encodes text and encrypts it with the public key.
// A keypair whose modulus does not exceed MaxBlock yields ErrInvalidKeypair.
func (k *Keypair) EncryptMessage(text string) (*Ciphertext, error) {
	blocks, length, err := EncodeMessage(text)
	if err != nil {
		return nil, err
	}
	if err := k.checkModulus(); err != nil {
		return nil, err
	}
	return &Ciphertext{Blocks: k.Encrypt(blocks), Length: length}, nil
}

// DecryptMessage decrypts ct with the private key and decodes the result.
// A wrong key usually surfaces as a *DecodeError.
func (k *Keypair) DecryptMessage(ct *Ciphertext) (string, error) {
	if ct == nil {
		return "", &DecodeError{Err: errors.New("nil ciphertext")}
	}
	if err := k.checkModulus(); err != nil {
		return "", err
	}
	return DecodeMessage(k.Decrypt(ct.Blocks), ct.Length)
}

func (k *Keypair) checkModulus() error {
	if k == nil {
		return fmt.Errorf("%w: nil keypair", ErrInvalidKeypair)
	}
	if k.N <= MaxBlock {
		return fmt.Errorf("%w: modulus %d must exceed %d", ErrInvalidKeypair, k.N, MaxBlock)
	}
	return nil
}

// Transcript records every stage of a round trip.
type Transcript struct {
	Keypair    *Keypair
	Plaintext  []uint64 // encoded blocks
	Ciphertext *Ciphertext
	Decrypted  []uint64 // blocks after decryption
	Recovered  string
}

// RoundTrip encodes text, generates a keypair, encrypts, decrypts and
// decodes again. The message is validated before any key is generated.
// A recovered text that differs from the input yields ErrRoundTripMismatch.
func RoundTrip(text string, opts ...Option) (*Transcript, error) {
	blocks, length, err := EncodeMessage(text)
	if err != nil {
		return nil, err
	}

	kp, err := GenerateKeypair(opts...)
	if err != nil {
		return nil, err
	}

	ct := &Ciphertext{Blocks: kp.Encrypt(blocks), Length: length}
	decrypted := kp.Decrypt(ct.Blocks)

	recovered, err := DecodeMessage(decrypted, length)
	if err != nil {
		return nil, err
	}

	tr := &Transcript{
		Keypair:    kp,
		Plaintext:  blocks,
		Ciphertext: ct,
		Decrypted:  decrypted,
		Recovered:  recovered,
	}
	if want, _ := codec.Symbols(text); !sameText(recovered, want) {
		return tr, fmt.Errorf("%w: got %q", ErrRoundTripMismatch, recovered)
	}
	return tr, nil
}

// sameText compares recovered text with the symbols of the original,
// so case differences in the input are ignored.
func sameText(recovered string, want []uint8) bool {
	got, err := codec.Symbols(recovered)
	return err == nil && slices.Equal(got, want)
}
