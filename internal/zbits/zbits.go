// Package zbits provides the unbounded bitstring storage primitive that the
// Zeckendorf engine is built on: AND, OR, XOR, AND-NOT, NOT, shifts, a zero
// test, a highest-set-bit query, single-bit and low-bit reads, equality, and
// the Window/Place helpers that read and write a short run of bits at a given
// position. The engine above this package
// never inspects limb boundaries or performs decimal arithmetic on a Bits
// value directly.
//
// The storage is math/big.Int, the standard unbounded-integer primitive.
package zbits

import "math/big"

// Bits is a non-negative or transiently-negative unbounded integer used as
// scratch storage during reduction. Negative values only ever appear as an
// intermediate result of Not and are always re-masked by a subsequent And
// before being inspected bit-by-bit.
type Bits = big.Int

// Zero returns a fresh zero-valued Bits.
func Zero() *Bits { return new(big.Int) }

// FromUint64 returns a fresh Bits holding the given small non-negative value.
func FromUint64(v uint64) *Bits { return new(big.Int).SetUint64(v) }

// Clone returns an independent copy of x.
func Clone(x *Bits) *Bits { return new(big.Int).Set(x) }

// IsZero reports whether x represents the value zero.
func IsZero(x *Bits) bool { return x.Sign() == 0 }

// BitLen returns the 1-based position of the highest set bit of x, or 0 if
// x is zero.
func BitLen(x *Bits) int { return x.BitLen() }

// And returns a&b as a fresh Bits.
func And(a, b *Bits) *Bits { return new(big.Int).And(a, b) }

// Or returns a|b as a fresh Bits.
func Or(a, b *Bits) *Bits { return new(big.Int).Or(a, b) }

// Xor returns a^b as a fresh Bits.
func Xor(a, b *Bits) *Bits { return new(big.Int).Xor(a, b) }

// AndNot returns a&^b as a fresh Bits.
func AndNot(a, b *Bits) *Bits { return new(big.Int).AndNot(a, b) }

// Not returns the arbitrary-precision two's-complement of x (i.e. -x-1).
// Callers must re-mask the result with And before reading individual bits,
// since Not of a non-negative value carries an infinite run of leading ones
// in two's-complement form.
func Not(x *Bits) *Bits { return new(big.Int).Not(x) }

// Lsh returns x<<n as a fresh Bits.
func Lsh(x *Bits, n uint) *Bits { return new(big.Int).Lsh(x, n) }

// Rsh returns x>>n as a fresh Bits. Rsh of a negative x (as produced by Not)
// performs an arithmetic (floor) shift.
func Rsh(x *Bits, n uint) *Bits { return new(big.Int).Rsh(x, n) }

// Bit returns the value of the i'th bit of x (0 or 1).
func Bit(x *Bits, i int) uint { return x.Bit(i) }

// Equal reports whether a and b hold the same value.
func Equal(a, b *Bits) bool { return a.Cmp(b) == 0 }

// Low returns the bottom n bits of x as a native uint64. n must be small
// enough that the result fits (n <= 63 in every call site in this module).
func Low(x *Bits, n uint) uint64 {
	return new(big.Int).And(x, new(big.Int).Lsh(big.NewInt(1), n).Sub(new(big.Int).Lsh(big.NewInt(1), n), big.NewInt(1))).Uint64()
}

// Place returns v<<shift as a fresh Bits; v is expected to be a small
// pattern (a handful of bits) extracted by Window and then re-aligned to its
// original bit position before being combined back into a carry or
// summation bitstring.
func Place(v uint64, shift int) *Bits {
	if shift <= 0 {
		return new(big.Int).SetUint64(v >> uint(-shift))
	}
	return new(big.Int).Lsh(new(big.Int).SetUint64(v), uint(shift))
}

// Window extracts the bits of x covered by mask, normalizing them down to
// the low "width" bits so the caller can read them as a small native
// integer. position is the 1-based bit-length of mask (its highest set bit).
func Window(x, mask *Bits, position, width int) uint64 {
	t := new(big.Int).And(x, mask)
	t.Lsh(t, uint(width))
	t.Rsh(t, uint(position))
	return t.Uint64()
}
