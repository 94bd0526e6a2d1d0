// Package zeckendorf implements a signed arbitrary-precision integer type
// whose magnitude is stored as a Zeckendorf bitstring: bit i (i >= 0)
// asserts the presence of the Fibonacci number F(i+2) in the value's unique
// Zeckendorf decomposition. The bitstring is always canonical (Brown's
// Criterion: no two adjacent bits set).
//
// All arithmetic — addition, subtraction, multiplication, division with
// remainder, exponentiation, comparison — is implemented directly on the
// bitstring via bitwise pattern rewriting rather than place-value carries;
// see carry.go and difference.go for the core of that engine.
package zeckendorf

import (
	"math/big"

	"github.com/ok-john/zeckendorf/internal/zbits"
)

// Z is a signed arbitrary-precision integer in Zeckendorf representation.
// The zero value of Z is not meaningful on its own — use NewZ, FromInt, or
// FromString. Z is a plain value type: every operation below returns a
// freshly built Z and never mutates its receiver or argument.
type Z struct {
	sign bool        // true = non-negative
	bits *zbits.Bits // canonical Zeckendorf magnitude; bit i stands for F(i+2)
}

// NewZ returns the zero value of Z.
func NewZ() Z {
	return Z{sign: true, bits: zbits.Zero()}
}

// Copy returns an independent copy of z. Because Z is already an immutable
// value type, Copy exists only to mirror an explicit copy constructor; z
// itself is just as safe to pass by value.
func (z Z) Copy() Z {
	return Z{sign: z.sign, bits: zbits.Clone(z.bits)}
}

// fromBitstring builds a Z from a requested sign and a not-yet-canonical
// bitstring, canonicalizing it and forcing sign to true if the canonical
// result is zero (invariant (3): there is one zero, and it is non-negative).
func fromBitstring(sign bool, bits *zbits.Bits) Z {
	canon := canonicalize(bits)
	return Z{sign: sign || zbits.IsZero(canon), bits: canon}
}

// FromInt constructs a Z from a native signed 64-bit integer.
//
// The Fibonacci pair (a, b) climbed here tracks plain integer magnitudes,
// not Zeckendorf-encoded values: the encoded bitstring only ever gets
// bitwise treatment, while this plain Fibonacci bookkeeping just selects
// which bits to set.
func FromInt(n int64) Z {
	sign := n >= 0

	i, a, b := big.NewInt(1), big.NewInt(1), big.NewInt(1)
	streamBig := new(big.Int).Abs(big.NewInt(n))
	for streamBig.Cmp(b) >= 0 {
		i = new(big.Int).Lsh(i, 1)
		a, b = b, new(big.Int).Add(a, b)
	}

	value := zbits.Zero()
	for a.Sign() > 0 {
		if streamBig.Cmp(b) >= 0 {
			streamBig = new(big.Int).Sub(streamBig, b)
			value = zbits.Or(value, i)
		}
		i = new(big.Int).Rsh(i, 1)
		a, b = new(big.Int).Sub(b, a), a
	}
	return fromBitstring(sign, value)
}

// Sign reports whether z is non-negative.
func (z Z) Sign() bool { return z.sign }

// IsZero reports whether z is the zero value.
func (z Z) IsZero() bool { return zbits.IsZero(z.bits) }

// Int64 converts z to a native signed 64-bit integer. ok is false if the
// value of z does not fit in an int64; in that case the numeric result is
// unspecified.
func (z Z) Int64() (n int64, ok bool) {
	out, i, a, b := big.NewInt(0), big.NewInt(1), big.NewInt(1), big.NewInt(1)
	for z.bits.Cmp(b) >= 0 {
		i = new(big.Int).Lsh(i, 1)
		a, b = b, new(big.Int).Add(a, b)
	}
	for a.Sign() > 0 {
		if zbits.Bit(z.bits, indexOf(i)) != 0 {
			out = new(big.Int).Add(out, b)
		}
		i = new(big.Int).Rsh(i, 1)
		a, b = new(big.Int).Sub(b, a), a
	}
	if !z.sign {
		out = new(big.Int).Neg(out)
	}
	if !out.IsInt64() {
		return 0, false
	}
	return out.Int64(), true
}

// indexOf returns the bit position of a power-of-two big.Int (its BitLen-1).
func indexOf(powerOfTwo *big.Int) int {
	return powerOfTwo.BitLen() - 1
}

// Hash returns a value consistent with Equal: two equal Z values always
// produce the same Hash, and Hash agrees with the hash of the native-integer
// conversion when one exists.
func (z Z) Hash() uint64 {
	if n, ok := z.Int64(); ok {
		return fnv64(uint64(n))
	}
	h := fnv64a0
	for _, c := range z.String() {
		h ^= uint64(c)
		h *= fnvPrime
	}
	return h
}

const (
	fnv64a0  = uint64(14695981039346656037)
	fnvPrime = uint64(1099511628211)
)

func fnv64(n uint64) uint64 {
	h := fnv64a0
	for i := 0; i < 8; i++ {
		h ^= n & 0xff
		h *= fnvPrime
		n >>= 8
	}
	return h
}
