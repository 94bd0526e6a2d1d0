package zeckendorf

import "testing"

func TestMulScenario(t *testing.T) {
	got := FromInt(17).Mul(FromInt(-11))
	checkZ(t, got, FromInt(-187))
}

func TestMulCommutative(t *testing.T) {
	for _, pair := range [][2]int64{{6, 7}, {-3, 8}, {0, 55}, {-9, -9}} {
		a, b := FromInt(pair[0]), FromInt(pair[1])
		checkZ(t, a.Mul(b), b.Mul(a))
	}
}

func TestMulDistributesOverAdd(t *testing.T) {
	a, b, c := FromInt(4), FromInt(9), FromInt(-6)
	left := a.Mul(b.Add(c))
	right := a.Mul(b).Add(a.Mul(c))
	checkZ(t, left, right)
}

func TestMulByZero(t *testing.T) {
	z := mustZ(t, "0z10010100101")
	checkZ(t, z.Mul(NewZ()), NewZ())
}

func TestMulByOne(t *testing.T) {
	z := FromInt(8191)
	checkZ(t, z.Mul(FromInt(1)), z)
}

func TestMulNegatives(t *testing.T) {
	checkZ(t, FromInt(-6).Mul(FromInt(-7)), FromInt(42))
}
