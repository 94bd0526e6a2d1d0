package zeckendorf

import (
	"testing"

	"github.com/ok-john/zeckendorf/internal/zbits"
)

// isCanonical reports whether x has no two adjacent bits set.
func isCanonical(x *zbits.Bits) bool {
	return zbits.IsZero(zbits.And(zbits.Lsh(x, 1), x))
}

func TestCanonicalizeZero(t *testing.T) {
	got := canonicalize(zbits.Zero())
	if !zbits.IsZero(got) {
		t.Errorf("canonicalize(0) = %v, want 0", got)
	}
}

func TestCanonicalizeSingleCascade(t *testing.T) {
	// 0b0111 (three consecutive Fibonacci terms) cascades to 0b1001:
	// F(2)+F(3)+F(4) = 1+2+3 = 6 = F(5)+F(2) = 5+1. The exact cascade is
	// exercised indirectly through Add's worst-case tests; here we just
	// check the structural property holds for hand-picked bit patterns.
	x := zbits.FromUint64(0b0_1010_1010_1010) // alternating already canonical
	got := canonicalize(x)
	if !isCanonical(got) {
		t.Errorf("canonicalize(%v) = %v, not canonical", x, got)
	}
	x2 := zbits.FromUint64(0b0_1110_1110_1110) // runs of three 1s, must cascade
	got2 := canonicalize(x2)
	if !isCanonical(got2) {
		t.Errorf("canonicalize(%v) = %v, not canonical", x2, got2)
	}
}

func TestCanonicalizePreservesValue(t *testing.T) {
	// F(2)+F(3) = 1+2 = 3 = F(4), so 0b011 (bits 0,1 set) must canonicalize
	// to 0b100 (bit 2 set) — both represent the value 3.
	x := zbits.FromUint64(0b011)
	got := canonicalize(x)
	want := zbits.FromUint64(0b100)
	if !zbits.Equal(got, want) {
		t.Errorf("canonicalize(0b011) = %v, want %v", got, want)
	}
}
