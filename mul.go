package zeckendorf

import "github.com/ok-john/zeckendorf/internal/zbits"

// Mul returns z * o: a Fibonacci-indexed variant of exponentiation-by-
// squaring applied additively. (za, zb) tracks
// (u*F(k), u*F(k+1)) for u = |z|, climbing until F(k+1) >= |o|, then
// descending and accumulating zb into the product wherever the
// corresponding bit of |o|'s own Zeckendorf bitstring is set.
func (z Z) Mul(o Z) Z {
	resultSign := z.sign == o.sign // positive iff signs agree

	multiplier := o.Abs()
	u := z.Abs()
	one := FromInt(1)

	a, b := one, one
	za, zb := u, u
	idx := 0

	for multiplier.Greater(b) {
		idx++
		a, b = b, b.Add(a)
		za, zb = zb, zb.Add(za)
	}

	product := NewZ()
	zero := NewZ()
	for a.Greater(zero) {
		if zbits.Bit(multiplier.bits, idx) != 0 {
			product = product.Add(zb)
		}
		idx--
		a, b = b.Sub(a), a
		za, zb = zb.Sub(za), za
	}

	if resultSign {
		return product.Pos()
	}
	return product.Neg()
}
