package zeckendorf

import (
	"testing"

	"github.com/ok-john/zeckendorf/internal/zbits"
)

func TestReduceDifferenceSimple(t *testing.T) {
	// F(4) - F(2) = 3 - 1 = 2 = F(3); sum bit 2 set, diff bit 0 set.
	sum := zbits.FromUint64(0b100)
	diff := zbits.FromUint64(0b001)
	carry, reduced := reduceDifference(sum, diff)
	got := fromBitstring(true, reduceCarry(carry, reduced))
	checkZ(t, got, FromInt(2))
}

func TestReduceDifferenceAlternatingWorstCase(t *testing.T) {
	// Subtracting adjacent long alternating-bit magnitudes forces the
	// difference reducer through a long cascading borrow chain.
	big := mustZ(t, "0z101010101010101010101")
	small := mustZ(t, "0z1010101010101010101")
	bn, ok := big.Int64()
	if !ok {
		t.Fatal("Int64 overflowed unexpectedly")
	}
	sn, ok := small.Int64()
	if !ok {
		t.Fatal("Int64 overflowed unexpectedly")
	}
	diffZ := big.Sub(small)
	if !isCanonical(diffZ.bits) {
		t.Errorf("Sub result not canonical: %v", diffZ.bits)
	}
	dn, ok := diffZ.Int64()
	if !ok {
		t.Fatal("Int64 overflowed unexpectedly")
	}
	check(t, dn, bn-sn)
}
