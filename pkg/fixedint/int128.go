package fixedint

import "github.com/oisee/fixedint/pkg/limb"

var widthI128 = limb.Width{Bits: 128, Signed: true}

// I128 is a signed 128-bit two's-complement integer: four 32-bit limbs,
// big-endian (limbs[0] most significant, holding the sign bit).
type I128 struct {
	limbs [4]uint32
}

var (
	I128Max = newI128Max()
	I128Min = newI128Min()
)

func newI128Max() *I128 {
	z := new(I128)
	for i := range z.limbs {
		z.limbs[i] = 0xFFFFFFFF
	}
	unsigned := limb.Width{Bits: 128, Signed: false}
	limb.ShiftRight(unsigned, z.limbs[:], z.limbs[:], 1)
	return z
}

func newI128Min() *I128 {
	z := new(I128)
	z.limbs[0] = widthI128.SignBitMask()
	return z
}

func NewI128(v int64) *I128 {
	return new(I128).SetInt64(v)
}

func (z *I128) SetUint64(v uint64) *I128 {
	limb.SetUint64(widthI128, z.limbs[:], v)
	return z
}

func (z *I128) SetInt64(v int64) *I128 {
	limb.SetInt64(widthI128, z.limbs[:], v)
	return z
}

func (z *I128) SetFloat64(v float64) (*I128, error) {
	if err := limb.SetFloat64(widthI128, z.limbs[:], v); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *I128) Uint64() uint64   { return limb.ToUint64(widthI128, z.limbs[:]) }
func (z *I128) Int64() int64     { return limb.ToInt64(widthI128, z.limbs[:]) }
func (z *I128) Float64() float64 { return limb.ToFloat64(widthI128, z.limbs[:]) }

func (z *I128) Add(x, y *I128) *I128 {
	limb.Add(widthI128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I128) Sub(x, y *I128) *I128 {
	limb.Sub(widthI128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I128) Neg(x *I128) *I128 {
	limb.Negate(widthI128, z.limbs[:], x.limbs[:])
	return z
}

func (z *I128) Inc() *I128 {
	limb.Increment(widthI128, z.limbs[:])
	return z
}

func (z *I128) Dec() *I128 {
	limb.Decrement(widthI128, z.limbs[:])
	return z
}

func (z *I128) Mul(x, y *I128) *I128 {
	limb.Mul(widthI128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

// DivMod sets z = x/y, m = x%y (truncated toward zero) and returns
// (z, m, nil), or (nil, nil, err) if y is zero.
func (z *I128) DivMod(x, y, m *I128) (*I128, *I128, error) {
	if err := limb.DivModSigned(widthI128, z.limbs[:], m.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return nil, nil, err
	}
	return z, m, nil
}

func (z *I128) Div(x, y *I128) (*I128, error) {
	var m I128
	if _, _, err := z.DivMod(x, y, &m); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *I128) Mod(x, y *I128) (*I128, error) {
	var q I128
	if _, _, err := q.DivMod(x, y, z); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *I128) And(x, y *I128) *I128 {
	limb.And(widthI128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I128) Or(x, y *I128) *I128 {
	limb.Or(widthI128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I128) Xor(x, y *I128) *I128 {
	limb.Xor(widthI128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I128) Not(x *I128) *I128 {
	limb.Complement(widthI128, z.limbs[:], x.limbs[:])
	return z
}

func (z *I128) Lsh(x *I128, n uint) *I128 {
	limb.ShiftLeft(widthI128, z.limbs[:], x.limbs[:], n)
	return z
}

func (z *I128) Rsh(x *I128, n uint) *I128 {
	limb.ShiftRight(widthI128, z.limbs[:], x.limbs[:], n)
	return z
}

func (z *I128) Cmp(y *I128) int { return limb.Compare(widthI128, z.limbs[:], y.limbs[:]) }
func (z *I128) Sign() int       { return limb.Sign(widthI128, z.limbs[:]) }
func (z *I128) IsZero() bool    { return limb.IsZero(z.limbs[:]) }

func (z *I128) Gcd(x, y *I128) *I128 {
	limb.GCD(widthI128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I128) Lcm(x, y *I128) *I128 {
	limb.LCM(widthI128, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I128) Swap(x *I128) {
	z.limbs, x.limbs = x.limbs, z.limbs
}

func (z *I128) String() string {
	return limb.FormatDecimal(widthI128, z.limbs[:], false)
}

func (z *I128) Format(base int, flags FormatFlags) string {
	showBase := flags&ShowBase != 0
	showPos := flags&ShowPos != 0
	if base == 10 {
		return limb.FormatDecimal(widthI128, z.limbs[:], showPos)
	}
	return limb.FormatRadix(widthI128, z.limbs[:], base, showBase, showPos)
}

func (z *I128) Parse(s string) (*I128, error) {
	if err := limb.ParseString(widthI128, z.limbs[:], s); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *I128) Limits() Limits { return LimitsFor(128, true) }
