package zeckendorf

import "testing"

func TestPowScenario(t *testing.T) {
	got, err := FromInt(6).Pow(FromInt(4))
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	checkZ(t, got, FromInt(1296))
}

func TestPowZeroExponent(t *testing.T) {
	got, err := FromInt(9).Pow(NewZ())
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	checkZ(t, got, FromInt(1))
}

func TestPowOneExponent(t *testing.T) {
	z := FromInt(-13)
	got, err := z.Pow(FromInt(1))
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	checkZ(t, got, z)
}

func TestPowAddsExponents(t *testing.T) {
	a := FromInt(3)
	m, n := FromInt(4), FromInt(5)
	left, err := a.Pow(m.Add(n))
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	am, err := a.Pow(m)
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	an, err := a.Pow(n)
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	right := am.Mul(an)
	checkZ(t, left, right)
}

func TestPowNegativeBaseSign(t *testing.T) {
	evenExp, err := FromInt(-2).Pow(FromInt(4))
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	checkZ(t, evenExp, FromInt(16))

	oddExp, err := FromInt(-2).Pow(FromInt(3))
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	checkZ(t, oddExp, FromInt(-8))
}

func TestPowNegativeExponentRejected(t *testing.T) {
	_, err := FromInt(5).Pow(FromInt(-1))
	if err != ErrNegativeExponent {
		t.Errorf("got err %v, want ErrNegativeExponent", err)
	}
}

func TestPowZeroToZeroRejected(t *testing.T) {
	_, err := NewZ().Pow(NewZ())
	if err != ErrZeroToZero {
		t.Errorf("got err %v, want ErrZeroToZero", err)
	}
}
