package limb

import "testing"

func TestMulSmall(t *testing.T) {
	a := fromHexLimbs(t, 0, 0, 0, 6)
	b := fromHexLimbs(t, 0, 0, 0, 7)
	r := make([]uint32, 4)
	Mul(u128, r, a, b)
	if r[3] != 42 || r[0] != 0 || r[1] != 0 || r[2] != 0 {
		t.Fatalf("Mul: got %v want [0 0 0 42]", r)
	}
}

func TestMulCarriesAcrossLimbs(t *testing.T) {
	a := fromHexLimbs(t, 0, 0, 1, 0) // 2^32
	b := fromHexLimbs(t, 0, 0, 1, 0) // 2^32
	r := make([]uint32, 4)
	Mul(u128, r, a, b)
	// (2^32)^2 == 2^64, which lands exactly on limb index 1.
	want := fromHexLimbs(t, 0, 1, 0, 0)
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("Mul carry: got %v want %v", r, want)
		}
	}
}

func TestMulAliasingSelfSquare(t *testing.T) {
	a := fromHexLimbs(t, 0, 0, 0, 9)
	Mul(u128, a, a, a)
	if a[3] != 81 {
		t.Fatalf("Mul self-alias: got %v want [_ _ _ 81]", a)
	}
}

func TestMulScalar(t *testing.T) {
	a := fromHexLimbs(t, 0, 0, 0, 100)
	MulScalar(u128, a, 3)
	if a[3] != 300 {
		t.Fatalf("MulScalar: got %d want 300", a[3])
	}
}

func TestMulWrapsModulo(t *testing.T) {
	a := fromHexLimbs(t, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF)
	b := fromHexLimbs(t, 0, 0, 0, 2)
	r := make([]uint32, 4)
	Mul(u128, r, a, b)
	// (2^128 - 1) * 2 mod 2^128 == 2^128 - 2
	want := fromHexLimbs(t, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFE)
	for i := range want {
		if r[i] != want[i] {
			t.Fatalf("Mul wraparound: got %v want %v", r, want)
		}
	}
}
