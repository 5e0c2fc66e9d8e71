package limb

import "testing"

var u128 = Width{Bits: 128, Signed: false}
var i128 = Width{Bits: 128, Signed: true}

func fromHexLimbs(t *testing.T, limbs ...uint32) []uint32 {
	t.Helper()
	out := make([]uint32, len(limbs))
	copy(out, limbs)
	return out
}

func TestAddBasic(t *testing.T) {
	a := fromHexLimbs(t, 0, 0, 0, 1)
	b := fromHexLimbs(t, 0, 0, 0, 1)
	r := make([]uint32, 4)
	Add(u128, r, a, b)
	want := fromHexLimbs(t, 0, 0, 0, 2)
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("Add: got %v want %v", r, want)
		}
	}
}

func TestAddWrapsModulo(t *testing.T) {
	a := fromHexLimbs(t, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF)
	b := fromHexLimbs(t, 0, 0, 0, 1)
	r := make([]uint32, 4)
	Add(u128, r, a, b)
	if !IsZero(r) {
		t.Fatalf("Add: expected wraparound to zero, got %v", r)
	}
}

func TestAddAliasesOutputWithInput(t *testing.T) {
	a := fromHexLimbs(t, 0, 0, 0, 5)
	b := fromHexLimbs(t, 0, 0, 0, 7)
	Add(u128, a, a, b)
	if a[3] != 12 {
		t.Fatalf("Add in place: got %v", a)
	}
}

func TestSubUnderflowsModulo(t *testing.T) {
	a := fromHexLimbs(t, 0, 0, 0, 0)
	b := fromHexLimbs(t, 0, 0, 0, 1)
	r := make([]uint32, 4)
	Sub(u128, r, a, b)
	want := fromHexLimbs(t, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF)
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("Sub: got %v want %v", r, want)
		}
	}
}

func TestNegateInvolution(t *testing.T) {
	a := fromHexLimbs(t, 0, 0, 0, 42)
	n := make([]uint32, 4)
	Negate(i128, n, a)
	back := make([]uint32, 4)
	Negate(i128, back, n)
	for i := range a {
		if back[i] != a[i] {
			t.Fatalf("Negate(Negate(x)) != x: got %v want %v", back, a)
		}
	}
}

func TestNegateMinMapsToItself(t *testing.T) {
	min := fromHexLimbs(t, 0x80000000, 0, 0, 0)
	n := make([]uint32, 4)
	Negate(i128, n, min)
	for i := range min {
		if n[i] != min[i] {
			t.Fatalf("Negate(MIN): got %v want %v (fixed point)", n, min)
		}
	}
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	a := fromHexLimbs(t, 0, 0, 0, 0xFFFFFFFF)
	Increment(u128, a)
	want := fromHexLimbs(t, 0, 0, 1, 0)
	for i := range want {
		if a[i] != want[i] {
			t.Fatalf("Increment carry: got %v want %v", a, want)
		}
	}
	Decrement(u128, a)
	want2 := fromHexLimbs(t, 0, 0, 0, 0xFFFFFFFF)
	for i := range want2 {
		if a[i] != want2[i] {
			t.Fatalf("Decrement borrow: got %v want %v", a, want2)
		}
	}
}

// u4 is a single-limb, non-limb-multiple width (TailBits == 4): limb 0
// carries only its low 4 bits, the rest of the word must stay zero.
var u4 = Width{Bits: 4, Signed: false}

func TestIncrementSingleLimbPartialWidthStaysCanonical(t *testing.T) {
	a := fromHexLimbs(t, 0xF) // 15, the max 4-bit value
	Increment(u4, a)
	if a[0] != 0 {
		t.Fatalf("Increment(15, 4-bit): got %#x want 0 (wraps, high bits masked)", a[0])
	}
}

func TestAddScalarSubScalarRoundTrip(t *testing.T) {
	a := fromHexLimbs(t, 0, 0, 0, 10)
	AddScalar(u128, a, 5)
	if a[3] != 15 {
		t.Fatalf("AddScalar: got %d want 15", a[3])
	}
	SubScalar(u128, a, 5)
	if a[3] != 10 {
		t.Fatalf("SubScalar: got %d want 10", a[3])
	}
}
