package zeckendorf

// DivMod returns the quotient and remainder of z / o: the same
// Fibonacci-climb/descend skeleton as Mul, but subtractive — zb is
// repeatedly subtracted out of the (shrinking) dividend whenever it fits,
// and b is accumulated into the quotient.
//
// Sign convention: floored division. The quotient is rounded toward negative
// infinity and a nonzero remainder takes the sign of o, so that
// quotient*o + remainder == z for every sign combination; see DESIGN.md.
func (z Z) DivMod(o Z) (Z, Z, error) {
	if o.IsZero() {
		return Z{}, Z{}, ErrDivisionByZero
	}

	resultSign := z.sign == o.sign // positive iff signs agree

	dividend := z.Abs()
	divisor := o.Abs()
	zero := NewZ()
	one := FromInt(1)

	a, b := one, one
	za, zb := divisor, divisor
	for dividend.Greater(zb) {
		a, b = b, b.Add(a)
		za, zb = zb, zb.Add(za)
	}

	quotient := zero
	remainder := dividend
	for remainder.GreaterOrEqual(divisor) {
		if remainder.GreaterOrEqual(zb) {
			quotient = quotient.Add(b)
			remainder = remainder.Sub(zb)
		}
		a, b = b.Sub(a), a
		za, zb = zb.Sub(za), za
	}

	if !resultSign && !remainder.IsZero() {
		quotient = quotient.Add(one)
		remainder = divisor.Sub(remainder)
	}
	if !resultSign {
		quotient = quotient.Neg()
	}
	if !o.sign {
		remainder = remainder.Neg()
	}
	return quotient.Pos(), remainder.Pos(), nil
}

// Quo returns the quotient of z / o.
func (z Z) Quo(o Z) (Z, error) {
	q, _, err := z.DivMod(o)
	return q, err
}

// Rem returns the remainder of z / o.
func (z Z) Rem(o Z) (Z, error) {
	_, r, err := z.DivMod(o)
	return r, err
}
