package limb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGCDTable(t *testing.T) {
	cases := []struct {
		x, y, want uint64
	}{
		{48, 18, 6},
		{17, 5, 1},
		{0, 7, 7},
		{7, 0, 7},
		{1071, 462, 21},
		{270, 192, 6},
	}
	for _, c := range cases {
		x := make([]uint32, 4)
		y := make([]uint32, 4)
		r := make([]uint32, 4)
		SetUint64(u128, x, c.x)
		SetUint64(u128, y, c.y)
		GCD(u128, r, x, y)
		require.Equalf(t, c.want, ToUint64(u128, r), "gcd(%d,%d)", c.x, c.y)
	}
}

func TestLCMTable(t *testing.T) {
	cases := []struct {
		x, y, want uint64
	}{
		{4, 6, 12},
		{21, 6, 42},
		{1, 5, 5},
	}
	for _, c := range cases {
		x := make([]uint32, 4)
		y := make([]uint32, 4)
		r := make([]uint32, 4)
		SetUint64(u128, x, c.x)
		SetUint64(u128, y, c.y)
		LCM(u128, r, x, y)
		require.Equalf(t, c.want, ToUint64(u128, r), "lcm(%d,%d)", c.x, c.y)
	}
}

func TestLCMWithZeroIsZero(t *testing.T) {
	x := make([]uint32, 4)
	y := make([]uint32, 4)
	r := make([]uint32, 4)
	SetUint64(u128, y, 9)
	LCM(u128, r, x, y)
	require.True(t, IsZero(r))
}

func TestLsb(t *testing.T) {
	a := make([]uint32, 4)
	SetUint64(u128, a, 0)
	require.Equal(t, u128.Bits, Lsb(u128, a))

	SetUint64(u128, a, 8) // 0b1000
	require.EqualValues(t, 3, Lsb(u128, a))

	SetUint64(u128, a, 1)
	require.EqualValues(t, 0, Lsb(u128, a))
}
