package limb

// And, Or, Xor compute bitwise operations limb-by-limb. Like Add/Sub they
// are alias-safe for free: limb i of the result depends only on limb i of
// each operand.
func And(w Width, r, a, b []uint32) {
	n := w.LimbCount()
	for i := 0; i < n; i++ {
		r[i] = a[i] & b[i]
	}
	canonicalize(w, r)
}

func Or(w Width, r, a, b []uint32) {
	n := w.LimbCount()
	for i := 0; i < n; i++ {
		r[i] = a[i] | b[i]
	}
	canonicalize(w, r)
}

func Xor(w Width, r, a, b []uint32) {
	n := w.LimbCount()
	for i := 0; i < n; i++ {
		r[i] = a[i] ^ b[i]
	}
	canonicalize(w, r)
}

// Complement computes r = ^a (one's complement, all Bits flipped).
func Complement(w Width, r, a []uint32) {
	n := w.LimbCount()
	for i := 0; i < n; i++ {
		r[i] = ^a[i]
	}
	canonicalize(w, r)
}

func AndScalar(w Width, r []uint32, u uint32) {
	n := w.LimbCount()
	r[n-1] &= u
	for i := 0; i < n-1; i++ {
		r[i] = 0
	}
	canonicalize(w, r)
}

func OrScalar(w Width, r []uint32, u uint32) {
	n := w.LimbCount()
	r[n-1] |= u
	canonicalize(w, r)
}

func XorScalar(w Width, r []uint32, u uint32) {
	n := w.LimbCount()
	r[n-1] ^= u
	canonicalize(w, r)
}

// ShiftLeft computes r = a << by (logical, zero-filling from the low
// end), discarding bits shifted out past bit Bits-1. by == 0 is a no-op
// copy.
func ShiftLeft(w Width, r, a []uint32, by uint) {
	n := w.LimbCount()
	if aliases(r, a) {
		a = snapshot(a)
	}
	if by >= w.Bits {
		SetZero(r)
		return
	}
	limbShift := int(by / LimbBits)
	bitShift := by % LimbBits

	for i := 0; i < n; i++ {
		srcIdx := i + limbShift
		var lo, hi uint32
		if srcIdx < n {
			lo = a[srcIdx]
		}
		if bitShift != 0 && srcIdx+1 < n {
			hi = a[srcIdx+1]
		}
		if bitShift == 0 {
			r[i] = lo
		} else {
			r[i] = lo<<bitShift | hi>>(LimbBits-bitShift)
		}
	}
	canonicalize(w, r)
}

// ShiftRight computes r = a >> by. For unsigned widths this is a logical
// shift (zero-filled from the top); for signed widths it is arithmetic
// (sign-extended from the top), matching the two's-complement convention
// that >> on a negative value rounds toward negative infinity.
//
// This resolves spec.md §9's Open Question #2: the fill value for newly
// exposed high limbs is read from the sign of the ORIGINAL operand a,
// never from the partially shifted r, avoiding the aliasing hazard in
// the original fixed_int.hpp implementation where a fill loop could read
// back bits the shift had already overwritten when r and a share storage.
func ShiftRight(w Width, r, a []uint32, by uint) {
	n := w.LimbCount()
	signed := w.Signed && a[0]&w.SignBitMask() != 0
	var fill uint32
	if signed {
		fill = 0xFFFFFFFF
	}

	if aliases(r, a) {
		a = snapshot(a)
	}

	if by >= w.Bits {
		SetZero(r)
		if signed {
			for i := 0; i < n; i++ {
				r[i] = fill
			}
		}
		canonicalize(w, r)
		return
	}

	// limb 0 only holds TailBits significant bits; its remaining high
	// bits are always zero in storage (CRI), not sign-extended. The
	// shift math below assumes every limb is a full 32-bit word flush
	// against its neighbor, so pre-extend limb 0's unused high bits with
	// fill before shifting and re-canonicalize (truncate back to
	// TailBits) at the end. For TailBits == 0 (UpperMask all ones) this
	// is a no-op and every limb is read as stored.
	top := a[0]
	if pad := ^w.UpperMask(); pad != 0 {
		top |= fill & pad
	}
	src := func(idx int) uint32 {
		switch {
		case idx < 0:
			return fill
		case idx == 0:
			return top
		default:
			return a[idx]
		}
	}

	limbShift := int(by / LimbBits)
	bitShift := by % LimbBits

	for i := 0; i < n; i++ {
		srcIdx := i - limbShift
		hi := src(srcIdx)
		if bitShift == 0 {
			r[i] = hi
			continue
		}
		lo := src(srcIdx - 1)
		r[i] = hi>>bitShift | lo<<(LimbBits-bitShift)
	}
	canonicalize(w, r)
}
