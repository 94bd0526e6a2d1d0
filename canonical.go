package zeckendorf

import "github.com/ok-john/zeckendorf/internal/zbits"

// canonicalize rewrites x into the unique Zeckendorf canonical form: no two
// adjacent bits set (Brown's Criterion).
//
// Every occurrence of the pattern "011" (bits p, p+1, p+2 read LSB-to-MSB as
// 1,1,0) is rewritten to "100" in parallel per pass, using the identity
// F(n) + F(n-1) = F(n+1). The mask W = (x<<1) & x & ^(x>>1) marks the middle
// bit of every such run; x is updated by toggling W and its two neighbors
// until W is empty.
func canonicalize(x *zbits.Bits) *zbits.Bits {
	if zbits.IsZero(x) {
		return zbits.Zero()
	}
	x = zbits.Clone(x)
	for {
		w := zbits.And(zbits.And(zbits.Lsh(x, 1), x), zbits.Not(zbits.Rsh(x, 1)))
		if zbits.IsZero(w) {
			return x
		}
		toggle := zbits.Or(zbits.Or(zbits.Lsh(w, 1), w), zbits.Rsh(w, 1))
		x = zbits.Xor(x, toggle)
	}
}
