package fixedint

import "github.com/oisee/fixedint/pkg/limb"

var widthU128 = limb.Width{Bits: 128, Signed: false}

// U128 is an unsigned 128-bit integer: four 32-bit limbs, big-endian
// (limbs[0] most significant), wrapping modulo 2^128 on add/sub/mul.
type U128 struct {
	limbs [4]uint32
}

// U128Max and U128Min are the representable bounds of U128.
var (
	U128Max = new(U128).SetUint64(0).not()
	U128Min = new(U128)
)

func (z *U128) not() *U128 {
	limb.Complement(widthU128, z.limbs[:], z.limbs[:])
	return z
}

// NewU128 returns a new U128 set to v.
func NewU128(v uint64) *U128 {
	return new(U128).SetUint64(v)
}

func (z *U128) SetUint64(v uint64) *U128 {
	limb.SetUint64(widthU128, z.limbs[:], v)
	return z
}

func (z *U128) SetInt64(v int64) *U128 {
	limb.SetInt64(widthU128, z.limbs[:], v)
	return z
}

func (z *U128) SetFloat64(v float64) (*U128, error) {
	if err := limb.SetFloat64(widthU128, z.limbs[:], v); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *U128) Uint64() uint64 { return limb.ToUint64(widthU128, z.limbs[:]) }
func (z *U128) Int64() int64   { return limb.ToInt64(widthU128, z.limbs[:]) }
func (z *U128) Float64() float64 { return limb.ToFloat64(widthU128, z.limbs[:]) }

func (z *U128) Add(x, y *U128) *U128 {
	limb.Add(widthU128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U128) Sub(x, y *U128) *U128 {
	limb.Sub(widthU128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U128) Neg(x *U128) *U128 {
	limb.Negate(widthU128, z.limbs[:], x.limbs[:])
	return z
}

func (z *U128) Inc() *U128 {
	limb.Increment(widthU128, z.limbs[:])
	return z
}

func (z *U128) Dec() *U128 {
	limb.Decrement(widthU128, z.limbs[:])
	return z
}

func (z *U128) Mul(x, y *U128) *U128 {
	limb.Mul(widthU128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

// DivMod sets z = x/y, m = x%y and returns (z, m, nil), or (nil, nil, err)
// if y is zero.
func (z *U128) DivMod(x, y, m *U128) (*U128, *U128, error) {
	if err := limb.DivMod(widthU128, z.limbs[:], m.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return nil, nil, err
	}
	return z, m, nil
}

func (z *U128) Div(x, y *U128) (*U128, error) {
	var m U128
	if _, _, err := z.DivMod(x, y, &m); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *U128) Mod(x, y *U128) (*U128, error) {
	var q U128
	if _, _, err := q.DivMod(x, y, z); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *U128) And(x, y *U128) *U128 {
	limb.And(widthU128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U128) Or(x, y *U128) *U128 {
	limb.Or(widthU128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U128) Xor(x, y *U128) *U128 {
	limb.Xor(widthU128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U128) Not(x *U128) *U128 {
	limb.Complement(widthU128, z.limbs[:], x.limbs[:])
	return z
}

func (z *U128) Lsh(x *U128, n uint) *U128 {
	limb.ShiftLeft(widthU128, z.limbs[:], x.limbs[:], n)
	return z
}

func (z *U128) Rsh(x *U128, n uint) *U128 {
	limb.ShiftRight(widthU128, z.limbs[:], x.limbs[:], n)
	return z
}

func (z *U128) Cmp(y *U128) int { return limb.Compare(widthU128, z.limbs[:], y.limbs[:]) }
func (z *U128) Sign() int       { return limb.Sign(widthU128, z.limbs[:]) }
func (z *U128) IsZero() bool    { return limb.IsZero(z.limbs[:]) }

func (z *U128) Gcd(x, y *U128) *U128 {
	limb.GCD(widthU128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U128) Lcm(x, y *U128) *U128 {
	limb.LCM(widthU128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U128) Swap(x *U128) {
	z.limbs, x.limbs = x.limbs, z.limbs
}

func (z *U128) String() string {
	return limb.FormatDecimal(widthU128, z.limbs[:], false)
}

func (z *U128) Format(base int, flags FormatFlags) string {
	showBase := flags&ShowBase != 0
	showPos := flags&ShowPos != 0
	if base == 10 {
		return limb.FormatDecimal(widthU128, z.limbs[:], showPos)
	}
	return limb.FormatRadix(widthU128, z.limbs[:], base, showBase, showPos)
}

func (z *U128) Parse(s string) (*U128, error) {
	if err := limb.ParseString(widthU128, z.limbs[:], s); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *U128) Limits() Limits { return LimitsFor(128, false) }
