package limb

// Mul computes r = a * b (mod 2^Bits) via schoolbook O(LimbCount^2)
// multiplication. If r aliases a or b, a private snapshot is taken first
// since, unlike Add/Sub, later limbs of the product depend on earlier
// limbs of both operands.
func Mul(w Width, r, a, b []uint32) {
	if aliases(r, a) {
		a = snapshot(a)
	}
	if aliases(r, b) {
		b = snapshot(b)
	}
	n := w.LimbCount()
	SetZero(r)
	for i := n - 1; i >= 0; i-- {
		var carry uint64
		for j := n - 1; j >= n-1-i; j-- {
			k := i + j + 1 - n
			if k < 0 {
				break
			}
			carry += uint64(a[i]) * uint64(b[j])
			carry += uint64(r[k])
			r[k] = uint32(carry)
			carry >>= LimbBits
		}
	}
	canonicalize(w, r)
}

// MulScalar computes r *= u (mod 2^Bits) for an unsigned single-limb u, in
// a single double-width carry pass.
func MulScalar(w Width, r []uint32, u uint32) {
	var carry uint64
	n := w.LimbCount()
	for i := n - 1; i >= 0; i-- {
		carry += uint64(r[i]) * uint64(u)
		r[i] = uint32(carry)
		carry >>= LimbBits
	}
	canonicalize(w, r)
}

// MulSignedScalar multiplies r by a signed single-limb scalar in place.
func MulSignedScalar(w Width, r []uint32, s int32) {
	if s >= 0 {
		MulScalar(w, r, uint32(s))
		return
	}
	MulScalar(w, r, uint32(-int64(s)))
	Negate(w, r, r)
}
