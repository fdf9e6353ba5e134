// Package codec maps messages over the alphabet A–Z plus space to integer
// blocks and back.
//
// Each character becomes a symbol in [0, 26]: 'A'–'Z' map to 0–25 and space
// maps to 26. Symbols are paired into blocks as first*100 + second. An
// odd-length message ends with a block whose second component is an
// implicit zero.
//
// A block such as 200 is ambiguous on its own: it is "CA" and it is also
// the final block of an odd-length message ending in "C". [Message] carries
// the symbol count next to the blocks so [Decode] never has to guess.
package codec
