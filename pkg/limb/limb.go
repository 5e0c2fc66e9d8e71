// Package limb implements the fixed-width multi-precision arithmetic core:
// modular two's-complement add/sub/mul/div, bitwise ops, shifts, string
// conversion and GCD/LCM over a big-endian slice of 32-bit limbs.
//
// A value of width w is stored as w.LimbCount() limbs, index 0 holding the
// most significant bits (masked by w.UpperMask()) and index LimbCount()-1
// holding the least significant. Every exported function re-establishes
// the canonical representation invariant (CRI) on exit: the unused high
// bits of limb 0 are always zero.
package limb

// LimbBits is the width of the native storage word. Double-limb carries
// are carried in uint64.
const LimbBits = 32

// Width describes a fixed bit width and its signedness. It is the only
// piece of per-type state the engine needs — everything else is derived.
type Width struct {
	Bits   uint
	Signed bool
}

// LimbCount returns ⌈Bits / LimbBits⌉.
func (w Width) LimbCount() int {
	return int((w.Bits + LimbBits - 1) / LimbBits)
}

// TailBits returns Bits mod LimbBits (0 means the top limb is full).
func (w Width) TailBits() uint {
	return w.Bits % LimbBits
}

// UpperMask returns the mask selecting the valid bits of limb 0.
func (w Width) UpperMask() uint32 {
	if t := w.TailBits(); t != 0 {
		return uint32(1)<<t - 1
	}
	return 0xFFFFFFFF
}

// SignBitMask returns the mask for the top (sign) bit of limb 0.
func (w Width) SignBitMask() uint32 {
	t := w.TailBits()
	if t == 0 {
		t = LimbBits
	}
	return uint32(1) << (t - 1)
}

// canonicalize reapplies UpperMask to limb 0, the only limb that can carry
// stray high bits after an operation.
func canonicalize(w Width, r []uint32) {
	r[0] &= w.UpperMask()
}

// assert panics on an internal invariant violation — a bug in the engine,
// never a condition a caller's input can trigger.
func assert(cond bool, msg string) {
	if !cond {
		panic("limb: " + msg)
	}
}

// snapshot returns a private copy of s, used to break aliasing before a
// function starts mutating its output in place.
func snapshot(s []uint32) []uint32 {
	t := make([]uint32, len(s))
	copy(t, s)
	return t
}

// aliases reports whether a and b share backing storage.
func aliases(a, b []uint32) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return &a[0] == &b[0]
}

// SetZero zeroes every limb of r.
func SetZero(r []uint32) {
	for i := range r {
		r[i] = 0
	}
}

// SetOne sets r to the value 1.
func SetOne(r []uint32) {
	SetZero(r)
	r[len(r)-1] = 1
}
