package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter is returned when a message contains a character
	// outside A–Z, a–z and space.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrSymbolOutOfRange is returned when a decoded component or block
	// falls outside the symbol alphabet.
	ErrSymbolOutOfRange = errors.New("symbol out of range")

	// ErrLengthMismatch is returned when a block sequence does not match
	// the message length it claims to encode.
	ErrLengthMismatch = errors.New("block count does not match message length")
)

// InvalidCharacterError reports the first offending character of a message.
type InvalidCharacterError struct {
	Char   rune
	Offset int // byte offset in the original message
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d: only A-Z and space allowed", e.Char, e.Offset)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}
