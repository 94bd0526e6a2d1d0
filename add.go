package zeckendorf

import "github.com/ok-john/zeckendorf/internal/zbits"

// Add returns z + o.
func (z Z) Add(o Z) Z {
	if z.sign == o.sign {
		sum := zbits.Xor(z.bits, o.bits)
		carry := zbits.And(z.bits, o.bits)
		return fromBitstring(z.sign, reduceCarry(carry, sum))
	}

	// Opposite signs: signed subtraction of magnitudes.
	if magnitudeEqual(z.bits, o.bits) {
		return NewZ()
	}
	large, small := z, o
	if magnitudeLess(z.bits, o.bits) {
		large, small = o, z
	}

	sum := zbits.AndNot(large.bits, small.bits)
	diff := zbits.AndNot(small.bits, large.bits)
	carry, sum := reduceDifference(sum, diff)
	return fromBitstring(large.sign, reduceCarry(carry, sum))
}

// magnitudeEqual reports whether two canonical magnitudes are equal.
func magnitudeEqual(a, b *zbits.Bits) bool { return zbits.Equal(a, b) }

// magnitudeLess reports whether a < b as canonical Zeckendorf magnitudes,
// using the same highest-differing-bit rule as Cmp but without any sign
// handling (both are already known non-negative magnitudes).
func magnitudeLess(a, b *zbits.Bits) bool {
	diff := zbits.Xor(a, b)
	if zbits.IsZero(diff) {
		return false
	}
	p := zbits.BitLen(diff) - 1
	return zbits.Bit(a, p) == 0
}

// Sub returns z - o.
func (z Z) Sub(o Z) Z { return z.Add(o.Neg()) }

// Neg returns -z.
func (z Z) Neg() Z { return fromBitstring(!z.sign, zbits.Clone(z.bits)) }

// Pos returns +z (a copy; the unary-plus operation).
func (z Z) Pos() Z { return fromBitstring(z.sign, zbits.Clone(z.bits)) }

// Abs returns |z|.
func (z Z) Abs() Z { return fromBitstring(true, zbits.Clone(z.bits)) }
