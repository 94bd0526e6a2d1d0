package zeckendorf

import (
	"github.com/golang/glog"

	"github.com/ok-john/zeckendorf/internal/zbits"
)

// reduceDifference reduces the subtraction form S - D (S and D disjoint, and
// value(S) >= value(D) by precondition) to a pair (C, S') such that
// value(S) - value(D) = value(S') + value(C) and D' = 0 on exit. The caller
// passes (C, S') through reduceCarry next.
//
// This is a single top-down sliding window of width 3, following
// _reduce_difference in the reference implementation (Ahlbach, Usatine,
// Pippenger, §3), followed by a fixed cleanup table for the residual
// difference bit near the least significant bit. The identity underlying
// every rewrite is F(n+1) - F(n) = F(n-1) combined with F(n) = F(n-1) + F(n-2).
func reduceDifference(sum, diff *zbits.Bits) (*zbits.Bits, *zbits.Bits) {
	sum = zbits.Clone(sum)
	diff = zbits.Clone(diff)
	carry := zbits.Zero()

	window := zbits.Lsh(zbits.FromUint64(7), uint(zbits.BitLen(sum)))
	for !zbits.IsZero(zbits.Rsh(window, 3)) {
		window = zbits.Rsh(window, 1)
		position := zbits.BitLen(window)

		carryWindow := zbits.Window(carry, window, position, 3)
		sumWindow := zbits.Window(sum, window, position, 3)
		diffWindow := zbits.Window(diff, window, position, 3)

		var clearCarry, setCarry uint64
		var clearSum, setSum, toggleSum uint64
		var clearDiff uint64

		if (sumWindow&4 != 0 || carryWindow&4 != 0) && carryWindow&3 == 0 {
			sw3, dw3 := sumWindow&3, diffWindow&3
			switch {
			case sw3 == 0 && dw3 == 0:
				// x00 / x11 -> x'11 / x00
				clearCarry, toggleSum = 4, 4
				setSum = 3
			case sw3 == 0 && dw3 == 2:
				// x10 / x10 -> x'01 / x00
				clearCarry, toggleSum = 4, 4
				setSum, clearDiff = 1, 2
			case sw3 == 1 && dw3 == 2:
				// x11 / x10 -> x'02 / x00
				clearCarry, toggleSum = 4, 4
				setCarry, clearSum, clearDiff = 1, 1, 2
			case sw3 == 0 && dw3 == 1:
				// x10 / x01 -> x'10 / x00
				clearCarry, toggleSum = 4, 4
				setSum, clearDiff = 2, 1
			}
		}

		shift := position - 3
		carry = zbits.AndNot(carry, zbits.Place(clearCarry, shift))
		carry = zbits.Or(carry, zbits.Place(setCarry, shift))
		sum = zbits.AndNot(sum, zbits.Place(clearSum, shift))
		sum = zbits.Or(sum, zbits.Place(setSum, shift))
		sum = zbits.Xor(sum, zbits.Place(toggleSum, shift))
		diff = zbits.AndNot(diff, zbits.Place(clearDiff, shift))
	}

	if zbits.Bit(diff, 0) != 0 {
		var clearCarry, clearSum, setSum, clearDiff uint64
		switch {
		case zbits.Bit(carry, 1) != 0:
			// 02* -> 100
			clearCarry, setSum, clearDiff = 2, 4, 1
		case zbits.Bit(sum, 1) != 0:
			// x1* -> x01
			clearSum, setSum, clearDiff = 2, 1, 1
		}
		carry = zbits.AndNot(carry, zbits.FromUint64(clearCarry))
		sum = zbits.AndNot(sum, zbits.FromUint64(clearSum))
		sum = zbits.Or(sum, zbits.FromUint64(setSum))
		diff = zbits.AndNot(diff, zbits.FromUint64(clearDiff))
	}

	if !zbits.IsZero(diff) {
		glog.Fatalf("zeckendorf: difference reducer exited with residual difference bits %v (carry=%v, sum=%v)", diff, carry, sum)
	}
	return carry, sum
}
