package limb

import "testing"

func TestCompareUnsigned(t *testing.T) {
	a := fromHexLimbs(t, 0, 0, 0, 5)
	b := fromHexLimbs(t, 0, 0, 0, 9)
	if Compare(u128, a, b) >= 0 {
		t.Fatalf("Compare(5,9): expected negative")
	}
	if Compare(u128, b, a) <= 0 {
		t.Fatalf("Compare(9,5): expected positive")
	}
	if Compare(u128, a, a) != 0 {
		t.Fatalf("Compare(5,5): expected zero")
	}
}

func TestCompareSignedAcrossZero(t *testing.T) {
	neg := make([]uint32, 4)
	pos := make([]uint32, 4)
	SetInt64(i128, neg, -1)
	SetInt64(i128, pos, 0)
	if Compare(i128, neg, pos) >= 0 {
		t.Fatalf("Compare(-1,0): expected negative")
	}
}

func TestCompareSignedBothNegative(t *testing.T) {
	a := make([]uint32, 4)
	b := make([]uint32, 4)
	SetInt64(i128, a, -1)
	SetInt64(i128, b, -2)
	if Compare(i128, a, b) <= 0 {
		t.Fatalf("Compare(-1,-2): expected positive (-1 > -2)")
	}
}

func TestSignAndIsZero(t *testing.T) {
	zero := make([]uint32, 4)
	if !IsZero(zero) {
		t.Fatalf("IsZero(0): expected true")
	}
	if Sign(u128, zero) != 0 {
		t.Fatalf("Sign(0): expected 0")
	}
	neg := make([]uint32, 4)
	SetInt64(i128, neg, -5)
	if Sign(i128, neg) != -1 {
		t.Fatalf("Sign(-5): expected -1")
	}
	pos := make([]uint32, 4)
	SetInt64(i128, pos, 5)
	if Sign(i128, pos) != 1 {
		t.Fatalf("Sign(5): expected 1")
	}
}

func TestCompareScalar(t *testing.T) {
	a := fromHexLimbs(t, 0, 0, 0, 10)
	if CompareScalar(u128, a, 10) != 0 {
		t.Fatalf("CompareScalar(10,10): expected 0")
	}
	if CompareScalar(u128, a, 20) >= 0 {
		t.Fatalf("CompareScalar(10,20): expected negative")
	}
}
