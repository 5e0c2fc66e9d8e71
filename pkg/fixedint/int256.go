package fixedint

import "github.com/oisee/fixedint/pkg/limb"

var widthI256 = limb.Width{Bits: 256, Signed: true}

// I256 is a signed 256-bit two's-complement integer: eight 32-bit
// limbs, big-endian (limbs[0] holding the sign bit).
type I256 struct {
	limbs [8]uint32
}

var (
	I256Max = newI256Max()
	I256Min = newI256Min()
)

func newI256Max() *I256 {
	z := new(I256)
	for i := range z.limbs {
		z.limbs[i] = 0xFFFFFFFF
	}
	unsigned := limb.Width{Bits: 256, Signed: false}
	limb.ShiftRight(unsigned, z.limbs[:], z.limbs[:], 1)
	return z
}

func newI256Min() *I256 {
	z := new(I256)
	z.limbs[0] = widthI256.SignBitMask()
	return z
}

func NewI256(v int64) *I256 {
	return new(I256).SetInt64(v)
}

func (z *I256) SetUint64(v uint64) *I256 {
	limb.SetUint64(widthI256, z.limbs[:], v)
	return z
}

func (z *I256) SetInt64(v int64) *I256 {
	limb.SetInt64(widthI256, z.limbs[:], v)
	return z
}

func (z *I256) SetFloat64(v float64) (*I256, error) {
	if err := limb.SetFloat64(widthI256, z.limbs[:], v); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *I256) Uint64() uint64   { return limb.ToUint64(widthI256, z.limbs[:]) }
func (z *I256) Int64() int64     { return limb.ToInt64(widthI256, z.limbs[:]) }
func (z *I256) Float64() float64 { return limb.ToFloat64(widthI256, z.limbs[:]) }

func (z *I256) Add(x, y *I256) *I256 {
	limb.Add(widthI256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I256) Sub(x, y *I256) *I256 {
	limb.Sub(widthI256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I256) Neg(x *I256) *I256 {
	limb.Negate(widthI256, z.limbs[:], x.limbs[:])
	return z
}

func (z *I256) Inc() *I256 {
	limb.Increment(widthI256, z.limbs[:])
	return z
}

func (z *I256) Dec() *I256 {
	limb.Decrement(widthI256, z.limbs[:])
	return z
}

func (z *I256) Mul(x, y *I256) *I256 {
	limb.Mul(widthI256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I256) DivMod(x, y, m *I256) (*I256, *I256, error) {
	if err := limb.DivModSigned(widthI256, z.limbs[:], m.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return nil, nil, err
	}
	return z, m, nil
}

func (z *I256) Div(x, y *I256) (*I256, error) {
	var m I256
	if _, _, err := z.DivMod(x, y, &m); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *I256) Mod(x, y *I256) (*I256, error) {
	var q I256
	if _, _, err := q.DivMod(x, y, z); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *I256) And(x, y *I256) *I256 {
	limb.And(widthI256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I256) Or(x, y *I256) *I256 {
	limb.Or(widthI256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I256) Xor(x, y *I256) *I256 {
	limb.Xor(widthI256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I256) Not(x *I256) *I256 {
	limb.Complement(widthI256, z.limbs[:], x.limbs[:])
	return z
}

func (z *I256) Lsh(x *I256, n uint) *I256 {
	limb.ShiftLeft(widthI256, z.limbs[:], x.limbs[:], n)
	return z
}

func (z *I256) Rsh(x *I256, n uint) *I256 {
	limb.ShiftRight(widthI256, z.limbs[:], x.limbs[:], n)
	return z
}

func (z *I256) Cmp(y *I256) int { return limb.Compare(widthI256, z.limbs[:], y.limbs[:]) }
func (z *I256) Sign() int       { return limb.Sign(widthI256, z.limbs[:]) }
func (z *I256) IsZero() bool    { return limb.IsZero(z.limbs[:]) }

func (z *I256) Gcd(x, y *I256) *I256 {
	limb.GCD(widthI256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I256) Lcm(x, y *I256) *I256 {
	limb.LCM(widthI256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I256) Swap(x *I256) {
	z.limbs, x.limbs = x.limbs, z.limbs
}

func (z *I256) String() string {
	return limb.FormatDecimal(widthI256, z.limbs[:], false)
}

func (z *I256) Format(base int, flags FormatFlags) string {
	showBase := flags&ShowBase != 0
	showPos := flags&ShowPos != 0
	if base == 10 {
		return limb.FormatDecimal(widthI256, z.limbs[:], showPos)
	}
	return limb.FormatRadix(widthI256, z.limbs[:], base, showBase, showPos)
}

func (z *I256) Parse(s string) (*I256, error) {
	if err := limb.ParseString(widthI256, z.limbs[:], s); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *I256) Limits() Limits { return LimitsFor(256, true) }
