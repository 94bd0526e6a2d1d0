package zeckendorf

import "github.com/ok-john/zeckendorf/internal/zbits"

// Pow returns z**exp. It uses the same Fibonacci-climb/descend skeleton as
// Mul, but the accumulator is multiplicative: climbing multiplies zb by za,
// descending divides it back out exactly.
//
// There is no modulus parameter; see DESIGN.md for the reasoning.
func (z Z) Pow(exp Z) (Z, error) {
	zero := NewZ()
	if exp.Less(zero) {
		return Z{}, ErrNegativeExponent
	}
	if exp.Equal(zero) && z.Equal(zero) {
		return Z{}, ErrZeroToZero
	}

	exponent := exp.Abs()
	rem, _ := exponent.Rem(FromInt(2)) // divisor 2 != 0, never errors
	isEven := rem.Equal(zero)
	// Negative only for a negative base raised to an odd exponent.
	resultSign := z.sign || isEven

	if z.IsZero() {
		return zero, nil
	}

	base := z.Abs()
	one := FromInt(1)
	a, b := one, one
	za, zb := base, base
	idx := 0

	for exponent.Greater(b) {
		idx++
		a, b = b, b.Add(a)
		za, zb = zb, zb.Mul(za)
	}

	power := one
	for a.Greater(zero) {
		if zbits.Bit(exponent.bits, idx) != 0 {
			power = power.Mul(zb)
		}
		idx--
		a, b = b.Sub(a), a
		q, _ := zb.Quo(za)
		za, zb = q, za
	}

	if resultSign {
		return power.Pos(), nil
	}
	return power.Neg(), nil
}
