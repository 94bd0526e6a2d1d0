package zeckendorf

import (
	"github.com/golang/glog"

	"github.com/ok-john/zeckendorf/internal/zbits"
)

// reduceCarry folds the carry bitstring C into the summation bitstring S,
// where at each bit position the pre-reduction digit is bit(S) + 2*bit(C).
// It returns a standard (not yet canonical) bitstring of the same value with
// no carries outstanding; canonicalize finishes the job.
//
// This is a single top-down sliding window of width 4, following
// _reduce_carry in the reference implementation (Ahlbach, Usatine,
// Pippenger, "Efficient Algorithms for Zeckendorf Arithmetic", §2), followed
// by a fixed cleanup table for the residual carry near the least significant
// bit.
func reduceCarry(carry, sum *zbits.Bits) *zbits.Bits {
	carry = zbits.Clone(carry)
	sum = zbits.Clone(sum)

	window := zbits.Lsh(zbits.FromUint64(15), uint(zbits.BitLen(carry)))
	for !zbits.IsZero(zbits.Rsh(window, 4)) {
		window = zbits.Rsh(window, 1)
		position := zbits.BitLen(window)

		sumWindow := zbits.Window(sum, window, position, 4)
		carryWindow := zbits.Window(carry, window, position, 4)
		cw1, sw1 := carryWindow>>1, sumWindow>>1

		var clearCarry, setCarry, toggleCarry uint64
		var clearSum, setSum, toggleSum uint64
		switch {
		case cw1 == 2 && (sw1 == 0 || sw1 == 2):
			// 020x -> 100x' & 030x -> 110x'
			clearCarry, toggleCarry = 4, sumWindow&1
			setSum, toggleSum = 8, 1
		case cw1 == 2 && sw1 == 1:
			// 021x -> 110x
			clearCarry = 4
			clearSum, setSum = 2, 12
		case cw1 == 1 && sw1 == 2:
			// 012x -> 101x
			clearCarry = 2
			clearSum, setSum = 4, 10
		}

		shift := position - 4
		carry = zbits.AndNot(carry, zbits.Place(clearCarry, shift))
		carry = zbits.Or(carry, zbits.Place(setCarry, shift))
		carry = zbits.Xor(carry, zbits.Place(toggleCarry, shift))
		sum = zbits.AndNot(sum, zbits.Place(clearSum, shift))
		sum = zbits.Or(sum, zbits.Place(setSum, shift))
		sum = zbits.Xor(sum, zbits.Place(toggleSum, shift))
	}

	if zbits.Low(carry, 2) != 0 {
		c3, s3 := zbits.Low(carry, 2), zbits.Low(sum, 2)
		c7, s7 := zbits.Low(carry, 3), zbits.Low(sum, 3)
		c15, s15 := zbits.Low(carry, 4), zbits.Low(sum, 4)

		var clearCarry, setCarry, clearSum, setSum uint64
		switch {
		case c3 == 1 && (s3 == 1 || s3 == 0):
			// 02 -> 10 & 03 -> 11
			clearCarry = 1
			setSum = 2
		case c7 == 2 && (s7 == 2 || s7 == 0):
			// 020 -> 101 & 030 -> 111
			clearCarry = 2
			setSum = 5
		case c7 == 2 && s7 == 1:
			// 021 -> 110
			clearCarry = 2
			clearSum, setSum = 1, 6
		case c7 == 1 && s7 == 2:
			// 012 -> 101
			clearCarry = 1
			clearSum, setSum = 2, 5
		case c15 == 2 && s15 == 4:
			// 0120 -> 1010
			clearCarry = 2
			clearSum, setSum = 4, 10
		}

		carry = zbits.AndNot(carry, zbits.FromUint64(clearCarry))
		carry = zbits.Or(carry, zbits.FromUint64(setCarry))
		sum = zbits.AndNot(sum, zbits.FromUint64(clearSum))
		sum = zbits.Or(sum, zbits.FromUint64(setSum))
	}

	if !zbits.IsZero(carry) {
		glog.Fatalf("zeckendorf: carry reducer exited with residual carry bits %v over summation %v", carry, sum)
	}
	return sum
}
