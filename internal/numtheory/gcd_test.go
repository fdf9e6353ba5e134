package numtheory

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

// recursiveGCD is the textbook recursion ExtendedGCD replaces.
func recursiveGCD(a, b int64) (int64, int64, int64) {
	if a == 0 {
		return b, 0, 1
	}
	g, x1, y1 := recursiveGCD(b%a, a)
	return g, y1 - (b/a)*x1, x1
}

func TestExtendedGCD_BezoutIdentity(t *testing.T) {
	tests := []struct {
		a, b    int64
		wantGCD int64
	}{
		{0, 7, 7},
		{7, 0, 7},
		{1, 1, 1},
		{240, 46, 2},
		{46, 240, 2},
		{65537, 3120, 1},
		{17, 3120, 1},
		{3, 3120, 3},
		{12345678, 87654321, 9},
	}

	for _, tt := range tests {
		g, x, y := ExtendedGCD(tt.a, tt.b)
		if g != tt.wantGCD {
			t.Errorf("ExtendedGCD(%d, %d) gcd = %d, want %d", tt.a, tt.b, g, tt.wantGCD)
		}
		if tt.a*x+tt.b*y != g {
			t.Errorf("ExtendedGCD(%d, %d): %d*%d + %d*%d != %d", tt.a, tt.b, tt.a, x, tt.b, y, g)
		}
	}
}

func TestExtendedGCD_MatchesRecursion(t *testing.T) {
	for a := int64(0); a < 60; a++ {
		for b := int64(0); b < 60; b++ {
			g, x, y := ExtendedGCD(a, b)
			wg, wx, wy := recursiveGCD(a, b)
			if g != wg || x != wx || y != wy {
				t.Fatalf("ExtendedGCD(%d, %d) = (%d, %d, %d), recursion gives (%d, %d, %d)",
					a, b, g, x, y, wg, wx, wy)
			}
		}
	}
}

func TestModInverse(t *testing.T) {
	tests := []struct {
		a, m uint64
		want uint64
	}{
		{3, 11, 4},
		{10, 17, 12},
		{17, 3120, 2753},
		{65537, 12816440, 0}, // want filled by the law check below
	}

	for _, tt := range tests {
		got, err := ModInverse(tt.a, tt.m)
		if err != nil {
			t.Fatalf("ModInverse(%d, %d) error = %v", tt.a, tt.m, err)
		}
		if got >= tt.m {
			t.Errorf("ModInverse(%d, %d) = %d, not reduced", tt.a, tt.m, got)
		}
		if tt.want != 0 && got != tt.want {
			t.Errorf("ModInverse(%d, %d) = %d, want %d", tt.a, tt.m, got, tt.want)
		}
		if (tt.a*got)%tt.m != 1 {
			t.Errorf("(%d * %d) mod %d != 1", tt.a, got, tt.m)
		}
	}
}

func TestModInverse_LawForCoprimePairs(t *testing.T) {
	for m := uint64(2); m < 400; m++ {
		for a := uint64(1); a < m; a++ {
			if !Coprime(a, m) {
				continue
			}
			inv, err := ModInverse(a, m)
			if err != nil {
				t.Fatalf("ModInverse(%d, %d) error = %v", a, m, err)
			}
			if (a*inv)%m != 1 {
				t.Fatalf("ModInverse(%d, %d) = %d violates a*r mod m == 1", a, m, inv)
			}
		}
	}
}

func TestModInverse_MatchesBig(t *testing.T) {
	m := uint64(3570 * 7906)
	for _, a := range []uint64{3, 5, 17, 257, 65537, 1234567} {
		want := new(big.Int).ModInverse(new(big.Int).SetUint64(a), new(big.Int).SetUint64(m))
		got, err := ModInverse(a, m)
		if want == nil {
			if !errors.Is(err, ErrNoInverse) {
				t.Errorf("ModInverse(%d, %d) error = %v, want ErrNoInverse", a, m, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ModInverse(%d, %d) error = %v", a, m, err)
		}
		if got != want.Uint64() {
			t.Errorf("ModInverse(%d, %d) = %d, want %d", a, m, got, want.Uint64())
		}
	}
}

func TestModInverse_LargeModuli(t *testing.T) {
	moduli := []uint64{
		math.MaxInt64,
		math.MaxInt64 - 24, // prime
		1<<62 + 1,
		3 << 61,
		7 << 60,
	}

	for _, m := range moduli {
		bm := new(big.Int).SetUint64(m)
		for a := uint64(2); a < 200; a++ {
			want := new(big.Int).ModInverse(new(big.Int).SetUint64(a), bm)
			got, err := ModInverse(a, m)
			if want == nil {
				if !errors.Is(err, ErrNoInverse) {
					t.Errorf("ModInverse(%d, %d) error = %v, want ErrNoInverse", a, m, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("ModInverse(%d, %d) error = %v", a, m, err)
			}
			if got >= m || got != want.Uint64() {
				t.Errorf("ModInverse(%d, %d) = %d, want %d", a, m, got, want.Uint64())
			}
		}

		// inputs near the modulus take the same path
		for _, a := range []uint64{m - 1, m - 2, m + 3} {
			want := new(big.Int).ModInverse(new(big.Int).SetUint64(a), bm)
			got, err := ModInverse(a, m)
			if want == nil {
				continue
			}
			if err != nil || got != want.Uint64() {
				t.Errorf("ModInverse(%d, %d) = %d, %v; want %d", a, m, got, err, want.Uint64())
			}
		}
	}
}

func TestModInverse_NotCoprime(t *testing.T) {
	tests := []struct {
		a, m uint64
	}{
		{2, 4},
		{3, 3120},
		{6, 9},
		{0, 7},
	}

	for _, tt := range tests {
		_, err := ModInverse(tt.a, tt.m)
		if !errors.Is(err, ErrNoInverse) {
			t.Errorf("ModInverse(%d, %d) error = %v, want ErrNoInverse", tt.a, tt.m, err)
		}
	}
}

func TestModInverse_ModulusOutOfRange(t *testing.T) {
	for _, m := range []uint64{0, math.MaxInt64 + 1, math.MaxUint64} {
		_, err := ModInverse(3, m)
		if !errors.Is(err, ErrModulusOutOfRange) {
			t.Errorf("ModInverse(3, %d) error = %v, want ErrModulusOutOfRange", m, err)
		}
	}
}

func TestCoprime(t *testing.T) {
	tests := []struct {
		a, b uint64
		want bool
	}{
		{1, 1, true},
		{2, 3, true},
		{4, 6, false},
		{65537, 3120, true},
		{3, 3120, false},
		{0, 1, true},
		{0, 5, false},
	}

	for _, tt := range tests {
		if got := Coprime(tt.a, tt.b); got != tt.want {
			t.Errorf("Coprime(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
