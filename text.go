package zeckendorf

import (
	"strings"

	"github.com/ok-john/zeckendorf/internal/zbits"
)

// FromString parses the textual form:
//
//	"0z0" | "-"? "0z" "1" ("0"|"1")*
//
// Any other input is rejected with ErrMalformedText.
func FromString(s string) (Z, error) {
	if s == "0z0" {
		return NewZ(), nil
	}

	rest := s
	sign := true
	if strings.HasPrefix(rest, "-") {
		sign = false
		rest = rest[1:]
	}
	if !strings.HasPrefix(rest, "0z1") {
		return Z{}, ErrMalformedText
	}
	digits := rest[2:]
	for _, c := range digits {
		if c != '0' && c != '1' {
			return Z{}, ErrMalformedText
		}
	}

	bits := zbits.Zero()
	for i := 0; i < len(digits); i++ {
		if digits[len(digits)-1-i] == '1' {
			bits = zbits.Or(bits, zbits.Lsh(zbits.FromUint64(1), uint(i)))
		}
	}
	return fromBitstring(sign, bits), nil
}

// String renders z as "0z" (or "-0z" for negatives) followed by the
// canonical bitstring most-significant-bit first, with no leading zeros
// other than the single zero value "0z0".
func (z Z) String() string {
	prefix := "0z"
	if !z.sign {
		prefix = "-0z"
	}
	if zbits.IsZero(z.bits) {
		return prefix + "0"
	}

	n := zbits.BitLen(z.bits)
	digits := make([]byte, n)
	for i := 0; i < n; i++ {
		if zbits.Bit(z.bits, n-1-i) != 0 {
			digits[i] = '1'
		} else {
			digits[i] = '0'
		}
	}
	return prefix + string(digits)
}
