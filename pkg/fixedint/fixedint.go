// Package fixedint provides fixed-width multi-precision integer types —
// U128, U256, U512 (unsigned) and I128, I256, I512 (two's-complement
// signed) — built on the modular arithmetic core in pkg/limb. Every
// mutating method follows math/big.Int's convention: the receiver is
// both the destination and (usually) the first returned value, so calls
// chain naturally: z.Add(x, y).Mod(z, m).
package fixedint

import (
	"github.com/golang/glog"
	"github.com/oisee/fixedint/pkg/limb"
)

// Re-exported error taxonomy — callers never need to import pkg/limb
// directly.
var (
	ErrDivideByZero = limb.ErrDivideByZero
	ErrParseError   = limb.ErrParseError
	ErrNonFinite    = limb.ErrNonFinite
)

// FormatFlags controls optional decoration in Format output.
type FormatFlags uint8

const (
	// ShowBase prepends "0x" for hex or a leading "0" for octal.
	ShowBase FormatFlags = 1 << iota
	// ShowPos prepends '+' to non-negative values.
	ShowPos
)

// Limits describes the representable range of a fixed width, computed
// purely from (Bits, Signed) rather than cached in a lazily-initialized
// static, unlike the numeric_limits<...> specialization it's grounded
// on.
type Limits struct {
	Bits    uint
	Signed  bool
	MinText string // decimal text of the minimum representable value
	MaxText string // decimal text of the maximum representable value
}

// LimitsFor computes the Limits for an arbitrary (bits, signed) pair by
// constructing the all-ones and all-but-sign-bit bit patterns directly,
// rather than hand-deriving the decimal bounds per width.
func LimitsFor(bits uint, signed bool) Limits {
	w := limb.Width{Bits: bits, Signed: signed}
	n := w.LimbCount()

	maxBuf := make([]uint32, n)
	minBuf := make([]uint32, n)
	limb.Complement(limb.Width{Bits: bits, Signed: false}, maxBuf, maxBuf)
	if signed {
		// max = 0111...1, min = 1000...0
		limb.ShiftRight(limb.Width{Bits: bits, Signed: false}, maxBuf, maxBuf, 1)
		minBuf[0] = w.SignBitMask()
	}

	return Limits{
		Bits:    bits,
		Signed:  signed,
		MinText: limb.FormatDecimal(w, minBuf, false),
		MaxText: limb.FormatDecimal(w, maxBuf, false),
	}
}

func init() {
	// Verbose-tracing only; never logs the three public error kinds
	// themselves, which are always returned to the caller instead.
	glog.V(2).Infof("fixedint: package initialized")
}
