package limb

import (
	"math"
	"testing"
)

func TestSetUint64ToUint64RoundTrip(t *testing.T) {
	r := make([]uint32, 4)
	SetUint64(u128, r, 1234567890123)
	if got := ToUint64(u128, r); got != 1234567890123 {
		t.Fatalf("round trip: got %d want 1234567890123", got)
	}
}

func TestSetInt64NegativeSignExtends(t *testing.T) {
	r := make([]uint32, 4)
	SetInt64(i128, r, -42)
	if r[0] != 0xFFFFFFFF || r[1] != 0xFFFFFFFF {
		t.Fatalf("SetInt64(-42): expected sign-extended high limbs, got %v", r)
	}
	if got := ToInt64(i128, r); got != -42 {
		t.Fatalf("ToInt64: got %d want -42", got)
	}
}

func TestSetFloat64Integral(t *testing.T) {
	r := make([]uint32, 4)
	if err := SetFloat64(u128, r, 65536); err != nil {
		t.Fatalf("SetFloat64: %v", err)
	}
	if got := ToUint64(u128, r); got != 65536 {
		t.Fatalf("SetFloat64 round trip: got %d want 65536", got)
	}
}

func TestSetFloat64Negative(t *testing.T) {
	r := make([]uint32, 4)
	if err := SetFloat64(i128, r, -100); err != nil {
		t.Fatalf("SetFloat64: %v", err)
	}
	if got := ToInt64(i128, r); got != -100 {
		t.Fatalf("SetFloat64 round trip: got %d want -100", got)
	}
}

func TestSetFloat64RejectsNaNAndInf(t *testing.T) {
	r := make([]uint32, 4)
	if err := SetFloat64(u128, r, math.NaN()); err != ErrNonFinite {
		t.Fatalf("SetFloat64(NaN): got %v want ErrNonFinite", err)
	}
	if err := SetFloat64(u128, r, math.Inf(1)); err != ErrNonFinite {
		t.Fatalf("SetFloat64(+Inf): got %v want ErrNonFinite", err)
	}
}

func TestToFloat64ApproximatesLargeValue(t *testing.T) {
	r := make([]uint32, 4)
	SetUint64(u128, r, 1<<40)
	got := ToFloat64(u128, r)
	want := float64(uint64(1) << 40)
	if got != want {
		t.Fatalf("ToFloat64: got %v want %v", got, want)
	}
}
