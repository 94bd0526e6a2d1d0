package zeckendorf

import "github.com/ok-john/zeckendorf/internal/zbits"

// Cmp returns -1 if z < o, 0 if z == o, and +1 if z > o. Sign disagreement
// decides first; otherwise the highest bit where the two magnitudes'
// bitstrings differ decides magnitude, and magnitude is combined with the
// common sign (larger magnitude is greater for non-negative values, smaller
// for negative ones).
func (z Z) Cmp(o Z) int {
	if z.sign != o.sign {
		if z.sign {
			return 1
		}
		return -1
	}

	diff := zbits.Xor(z.bits, o.bits)
	if zbits.IsZero(diff) {
		return 0
	}
	p := zbits.BitLen(diff) - 1
	zLarger := zbits.Bit(z.bits, p) != 0

	magnitudeGreater := zLarger
	if z.sign {
		if magnitudeGreater {
			return 1
		}
		return -1
	}
	// negative: larger magnitude means the lesser value
	if magnitudeGreater {
		return -1
	}
	return 1
}

// Equal reports whether z and o represent the same integer.
func (z Z) Equal(o Z) bool { return z.Cmp(o) == 0 }

// Less reports whether z < o.
func (z Z) Less(o Z) bool { return z.Cmp(o) < 0 }

// Greater reports whether z > o.
func (z Z) Greater(o Z) bool { return z.Cmp(o) > 0 }

// GreaterOrEqual reports whether z >= o.
func (z Z) GreaterOrEqual(o Z) bool { return z.Cmp(o) >= 0 }

// LessOrEqual reports whether z <= o.
func (z Z) LessOrEqual(o Z) bool { return z.Cmp(o) <= 0 }
