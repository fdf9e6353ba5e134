package numtheory

import "errors"

var (
	// ErrInvalidIndex is returned when a prime index is not positive.
	ErrInvalidIndex = errors.New("prime index must be positive")

	// ErrNoInverse is returned when the operands of ModInverse are not coprime.
	ErrNoInverse = errors.New("no modular inverse exists")

	// ErrModulusOutOfRange is returned when a modulus is zero or too large
	// for signed 64-bit Bézout coefficients.
	ErrModulusOutOfRange = errors.New("modulus out of range")
)
