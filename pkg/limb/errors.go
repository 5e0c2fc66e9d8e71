package limb

import "errors"

// The public error taxonomy has exactly three members. Arithmetic overflow
// is not one of them — it wraps modulo 2^N by design.
var (
	// ErrDivideByZero is returned by DivMod/DivModSigned when the divisor
	// is zero.
	ErrDivideByZero = errors.New("limb: division by zero")

	// ErrParseError is returned by ParseString on a malformed digit, a
	// digit out of range for the base, or an empty body after stripping
	// the sign/prefix.
	ErrParseError = errors.New("limb: malformed integer string")

	// ErrNonFinite is returned by SetFloat64 when the source value is NaN,
	// infinite, or has an unbiased exponent outside the representable
	// range.
	ErrNonFinite = errors.New("limb: non-finite or unrepresentable float")
)
