package limb

import "math/bits"

// Lsb returns the bit index of the least significant set bit of a (its
// trailing zero count), scanning limbs from the least significant end.
// Returns w.Bits if a is zero.
func Lsb(w Width, a []uint32) uint {
	n := w.LimbCount()
	count := uint(0)
	for i := n - 1; i >= 0; i-- {
		if a[i] != 0 {
			return count + uint(bits.TrailingZeros32(a[i]))
		}
		count += LimbBits
	}
	return w.Bits
}

// absMagnitude writes the non-negative magnitude of a into r (a no-op
// copy for unsigned widths or already-non-negative signed values).
func absMagnitude(w Width, r, a []uint32) {
	if w.Signed && a[0]&w.SignBitMask() != 0 {
		Negate(w, r, a)
	} else {
		copy(r, a)
	}
}

// unsignedOf returns w with Signed forced false, used to drive shifts
// and division purely on magnitude.
func unsignedOf(w Width) Width {
	return Width{Bits: w.Bits, Signed: false}
}

// GCD computes the non-negative greatest common divisor of x and y via
// Stein's binary algorithm: pull out the common power of two, then
// repeatedly strip factors of two from the larger operand and subtract
// the smaller from it, until one side reaches zero.
func GCD(w Width, r, x, y []uint32) {
	n := w.LimbCount()
	a := make([]uint32, n)
	b := make([]uint32, n)
	absMagnitude(w, a, x)
	absMagnitude(w, b, y)

	if IsZero(a) {
		copy(r, b)
		return
	}
	if IsZero(b) {
		copy(r, a)
		return
	}

	uw := unsignedOf(w)
	shift := Lsb(w, a)
	if bz := Lsb(w, b); bz < shift {
		shift = bz
	}
	ShiftRight(uw, a, a, Lsb(w, a))

	for {
		ShiftRight(uw, b, b, Lsb(w, b))
		if Compare(uw, a, b) > 0 {
			a, b = b, a
		}
		Sub(w, b, b, a)
		if IsZero(b) {
			break
		}
	}

	ShiftLeft(uw, a, a, shift)
	copy(r, a)
}

// LCM computes the least common multiple of x and y as (x / gcd) * y,
// dividing before multiplying to keep the intermediate value small.
func LCM(w Width, r, x, y []uint32) {
	n := w.LimbCount()
	if IsZero(x) || IsZero(y) {
		SetZero(r)
		return
	}

	ax := make([]uint32, n)
	ay := make([]uint32, n)
	absMagnitude(w, ax, x)
	absMagnitude(w, ay, y)

	g := make([]uint32, n)
	GCD(w, g, ax, ay)

	uw := unsignedOf(w)
	q := make([]uint32, n)
	rem := make([]uint32, n)
	if err := DivMod(uw, q, rem, ax, g); err != nil {
		assert(false, "gcd produced a zero divisor")
	}
	Mul(uw, r, q, ay)
}
