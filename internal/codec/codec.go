package codec

import (
	"fmt"
	"strings"
)

const (
	// Space is the symbol for ' '.
	Space uint8 = 26
	// MaxSymbol is the largest valid symbol.
	MaxSymbol = Space
	// Radix separates the two symbols packed into a block.
	Radix = 100
	// MaxBlock is the largest block the encoder can produce ("  ").
	MaxBlock = uint64(MaxSymbol)*Radix + uint64(MaxSymbol)
)

// Message is an encoded message: its blocks and the number of symbols
// they carry.
type Message struct {
	Blocks []uint64
	Length int
}

// Symbols converts msg to symbols, upper-casing ASCII letters first.
// The first character outside A–Z, a–z and space aborts the conversion
// with an *InvalidCharacterError.
func Symbols(msg string) ([]uint8, error) {
	symbols := make([]uint8, 0, len(msg))
	for i, r := range msg {
		switch {
		case r == ' ':
			symbols = append(symbols, Space)
		case r >= 'A' && r <= 'Z':
			symbols = append(symbols, uint8(r-'A'))
		case r >= 'a' && r <= 'z':
			symbols = append(symbols, uint8(r-'a'))
		default:
			return nil, &InvalidCharacterError{Char: r, Offset: i}
		}
	}
	return symbols, nil
}

// Group packs symbols pairwise into blocks.
func Group(symbols []uint8) []uint64 {
	blocks := make([]uint64, 0, (len(symbols)+1)/2)
	for i := 0; i < len(symbols); i += 2 {
		block := uint64(symbols[i]) * Radix
		if i+1 < len(symbols) {
			block += uint64(symbols[i+1])
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// Ungroup unpacks blocks into exactly length symbols. The trailing zero
// component of the last block is dropped when length is odd.
func Ungroup(blocks []uint64, length int) ([]uint8, error) {
	if length < 0 || len(blocks) != (length+1)/2 {
		return nil, fmt.Errorf("%w: %d blocks for %d symbols", ErrLengthMismatch, len(blocks), length)
	}

	symbols := make([]uint8, 0, length)
	for i, block := range blocks {
		if block > MaxBlock {
			return nil, fmt.Errorf("%w: block %d is %d", ErrSymbolOutOfRange, i, block)
		}
		first, second := block/Radix, block%Radix
		if first > uint64(MaxSymbol) || second > uint64(MaxSymbol) {
			return nil, fmt.Errorf("%w: block %d is %d", ErrSymbolOutOfRange, i, block)
		}

		symbols = append(symbols, uint8(first))
		if len(symbols) == length {
			if second != 0 {
				return nil, fmt.Errorf("%w: final block %d has a second symbol", ErrLengthMismatch, block)
			}
			break
		}
		symbols = append(symbols, uint8(second))
	}
	return symbols, nil
}

// Text converts symbols back to characters.
func Text(symbols []uint8) (string, error) {
	var b strings.Builder
	b.Grow(len(symbols))
	for i, s := range symbols {
		switch {
		case s == Space:
			b.WriteByte(' ')
		case s < Space:
			b.WriteByte('A' + s)
		default:
			return "", fmt.Errorf("%w: symbol %d at position %d", ErrSymbolOutOfRange, s, i)
		}
	}
	return b.String(), nil
}

// Encode converts msg to a Message.
func Encode(msg string) (*Message, error) {
	symbols, err := Symbols(msg)
	if err != nil {
		return nil, err
	}
	return &Message{Blocks: Group(symbols), Length: len(symbols)}, nil
}

// Decode converts blocks holding length symbols back to text.
func Decode(blocks []uint64, length int) (string, error) {
	symbols, err := Ungroup(blocks, length)
	if err != nil {
		return "", err
	}
	return Text(symbols)
}

// Decode converts the message back to text.
func (m *Message) Decode() (string, error) {
	return Decode(m.Blocks, m.Length)
}
