package limb

// Add computes r = a + b (mod 2^Bits). r may alias a and/or b: each limb
// of r depends only on the same-index limbs of a and b, so no snapshot is
// needed.
func Add(w Width, r, a, b []uint32) {
	var carry uint64
	n := w.LimbCount()
	for i := n - 1; i >= 0; i-- {
		carry += uint64(a[i]) + uint64(b[i])
		r[i] = uint32(carry)
		carry >>= LimbBits
	}
	canonicalize(w, r)
}

// Sub computes r = a - b (mod 2^Bits) as add(a, ^b) with an initial carry
// of 1 — the standard two's-complement subtraction trick.
func Sub(w Width, r, a, b []uint32) {
	var carry uint64 = 1
	n := w.LimbCount()
	for i := n - 1; i >= 0; i-- {
		carry += uint64(a[i]) + uint64(^b[i])
		r[i] = uint32(carry)
		carry >>= LimbBits
	}
	canonicalize(w, r)
}

// AddScalar computes r += u (mod 2^Bits) for an unsigned single-limb u,
// in place. The carry chain stops as soon as it runs dry.
func AddScalar(w Width, r []uint32, u uint32) {
	carry := uint64(u)
	n := w.LimbCount()
	for i := n - 1; carry != 0 && i >= 0; i-- {
		carry += uint64(r[i])
		r[i] = uint32(carry)
		carry >>= LimbBits
	}
	canonicalize(w, r)
}

// SubScalar computes r -= u (mod 2^Bits) in place, negating u on the fly.
func SubScalar(w Width, r []uint32, u uint32) {
	n := w.LimbCount()
	carry := uint64(r[n-1]) + 1 + uint64(^u)
	r[n-1] = uint32(carry)
	carry >>= LimbBits
	for i := n - 2; carry != 1 && i >= 0; i-- {
		carry += uint64(r[i]) + 0xFFFFFFFF
		r[i] = uint32(carry)
		carry >>= LimbBits
	}
	canonicalize(w, r)
}

// AddSignedScalar dispatches to Add/SubScalar based on the sign of s.
func AddSignedScalar(w Width, r []uint32, s int32) {
	if s < 0 {
		SubScalar(w, r, uint32(-int64(s)))
	} else if s > 0 {
		AddScalar(w, r, uint32(s))
	}
}

// SubSignedScalar dispatches to Add/SubScalar based on the sign of s.
func SubSignedScalar(w Width, r []uint32, s int32) {
	if s == 0 {
		return
	}
	if s < 0 {
		AddScalar(w, r, uint32(-int64(s)))
	} else {
		SubScalar(w, r, uint32(s))
	}
}

// Negate computes r = -a (mod 2^Bits): one-complement every limb with an
// initial carry of 1. negate(negate(x)) == x except at MIN, which maps to
// itself.
func Negate(w Width, r, a []uint32) {
	var carry uint64 = 1
	n := w.LimbCount()
	for i := n - 1; i >= 0; i-- {
		carry += uint64(^a[i])
		r[i] = uint32(carry)
		carry >>= LimbBits
	}
	canonicalize(w, r)
}

// Increment adds 1 in place, fast-pathing the common case where the
// least-significant limb doesn't overflow. For a single-limb width
// (n == 1) the least-significant limb is also limb 0, which may have
// unused high bits above TailBits; re-canonicalize on the fast path too
// so incrementing into those bits can't break the CRI.
func Increment(w Width, r []uint32) {
	n := w.LimbCount()
	if r[n-1] != 0xFFFFFFFF {
		r[n-1]++
		canonicalize(w, r)
		return
	}
	AddScalar(w, r, 1)
}

// Decrement subtracts 1 in place, fast-pathing the common case where the
// least-significant limb doesn't borrow. Safe without re-canonicalizing:
// a nonzero limb's high bits (already zero per the CRI) can't be set by
// a decrement that doesn't borrow out of this limb.
func Decrement(w Width, r []uint32) {
	n := w.LimbCount()
	if r[n-1] != 0 {
		r[n-1]--
		return
	}
	SubScalar(w, r, 1)
}
