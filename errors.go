package zeckendorf

import "errors"

// Sentinel errors for the recoverable conditions this package distinguishes
// from internal invariant violations. Each is returned synchronously by the
// operation that detects it; none of them ever escape as a panic.
var (
	// ErrMalformedText is returned when a textual form does not match the
	// expected grammar.
	ErrMalformedText = errors.New("zeckendorf: malformed textual form")

	// ErrUnsupportedSource names a construction argument that is neither a
	// native integer, a Z, nor an accepted textual grammar. No constructor in
	// this package returns it: FromInt, FromString and Copy take statically
	// typed arguments.
	ErrUnsupportedSource = errors.New("zeckendorf: unsupported conversion source")

	// ErrNegativeExponent is returned by Pow when the exponent is negative.
	ErrNegativeExponent = errors.New("zeckendorf: exponent must be non-negative")

	// ErrZeroToZero is returned by Pow for the undefined case 0**0.
	ErrZeroToZero = errors.New("zeckendorf: 0 ** 0 is undefined")

	// ErrDivisionByZero is returned by DivMod, Quo, and Rem when the divisor
	// is zero.
	ErrDivisionByZero = errors.New("zeckendorf: division by zero")
)
