package fixedint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestU128ArithmeticChains(t *testing.T) {
	a := NewU128(100)
	b := NewU128(37)
	var sum U128
	sum.Add(a, b)
	require.Equal(t, uint64(137), sum.Uint64())

	var diff U128
	diff.Sub(a, b)
	require.Equal(t, uint64(63), diff.Uint64())

	var prod U128
	prod.Mul(a, b)
	require.Equal(t, uint64(3700), prod.Uint64())
}

func TestU128DivModByZero(t *testing.T) {
	a := NewU128(10)
	z := NewU128(0)
	var q, m U128
	_, _, err := q.DivMod(a, z, &m)
	require.ErrorIs(t, err, ErrDivideByZero)
}

func TestI128SignedDivTruncatesTowardZero(t *testing.T) {
	a := NewI128(-7)
	b := NewI128(2)
	var q, m I128
	_, _, err := q.DivMod(a, b, &m)
	require.NoError(t, err)
	require.EqualValues(t, -3, q.Int64())
	require.EqualValues(t, -1, m.Int64())
}

func TestU128OverflowWrapsModulo(t *testing.T) {
	var z U128
	z.Sub(NewU128(0), NewU128(1))
	require.Equal(t, U128Max.String(), z.String())
}

func TestU128StringRoundTrip(t *testing.T) {
	var z U128
	_, err := z.Parse("123456789012345678901234567890")
	require.NoError(t, err)
	require.Equal(t, "123456789012345678901234567890", z.String())
}

func TestI128Limits(t *testing.T) {
	lim := I128Min.Limits()
	require.Equal(t, uint(128), lim.Bits)
	require.True(t, lim.Signed)
	require.Equal(t, "-170141183460469231731687303715884105728", I128Min.String())
	require.Equal(t, "170141183460469231731687303715884105727", I128Max.String())
}

func TestU128Limits(t *testing.T) {
	require.Equal(t, "340282366920938463463374607431768211455", U128Max.String())
	require.Equal(t, "0", U128Min.String())
}

func TestU128GcdLcm(t *testing.T) {
	a := NewU128(48)
	b := NewU128(18)
	var g U128
	g.Gcd(a, b)
	require.Equal(t, uint64(6), g.Uint64())

	var l U128
	l.Lcm(a, b)
	require.Equal(t, uint64(144), l.Uint64())
}

func TestU128BitwiseAndShift(t *testing.T) {
	a := NewU128(0xF0)
	b := NewU128(0x0F)
	var r U128
	r.Or(a, b)
	require.Equal(t, uint64(0xFF), r.Uint64())

	r.Lsh(NewU128(1), 64)
	require.Equal(t, uint64(0), r.Uint64()) // low 64 bits are zero after the shift
}

func TestU128Swap(t *testing.T) {
	a := NewU128(1)
	b := NewU128(2)
	a.Swap(b)
	require.Equal(t, uint64(2), a.Uint64())
	require.Equal(t, uint64(1), b.Uint64())
}

func TestU256AndU512Basics(t *testing.T) {
	a := NewU256(1)
	var big U256
	big.Lsh(a, 250)
	require.False(t, big.IsZero())

	x := NewU512(9999)
	y := NewU512(1)
	var sum U512
	sum.Add(x, y)
	require.Equal(t, uint64(10000), sum.Uint64())
}

func TestI256NegInvolution(t *testing.T) {
	a := NewI256(12345)
	var n, back I256
	n.Neg(a)
	back.Neg(&n)
	require.Equal(t, a.Int64(), back.Int64())
}

func TestFormatFlags(t *testing.T) {
	v := NewU128(255)
	require.Equal(t, "ff", v.Format(16, 0))
	require.Equal(t, "0xff", v.Format(16, ShowBase))
	require.Equal(t, "+255", v.Format(10, ShowPos))
}
