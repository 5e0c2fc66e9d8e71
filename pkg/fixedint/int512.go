package fixedint

import "github.com/oisee/fixedint/pkg/limb"

var widthI512 = limb.Width{Bits: 512, Signed: true}

// I512 is a signed 512-bit two's-complement integer: sixteen 32-bit
// limbs, big-endian (limbs[0] holding the sign bit).
type I512 struct {
	limbs [16]uint32
}

var (
	I512Max = newI512Max()
	I512Min = newI512Min()
)

func newI512Max() *I512 {
	z := new(I512)
	for i := range z.limbs {
		z.limbs[i] = 0xFFFFFFFF
	}
	unsigned := limb.Width{Bits: 512, Signed: false}
	limb.ShiftRight(unsigned, z.limbs[:], z.limbs[:], 1)
	return z
}

func newI512Min() *I512 {
	z := new(I512)
	z.limbs[0] = widthI512.SignBitMask()
	return z
}

func NewI512(v int64) *I512 {
	return new(I512).SetInt64(v)
}

func (z *I512) SetUint64(v uint64) *I512 {
	limb.SetUint64(widthI512, z.limbs[:], v)
	return z
}

func (z *I512) SetInt64(v int64) *I512 {
	limb.SetInt64(widthI512, z.limbs[:], v)
	return z
}

func (z *I512) SetFloat64(v float64) (*I512, error) {
	if err := limb.SetFloat64(widthI512, z.limbs[:], v); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *I512) Uint64() uint64   { return limb.ToUint64(widthI512, z.limbs[:]) }
func (z *I512) Int64() int64     { return limb.ToInt64(widthI512, z.limbs[:]) }
func (z *I512) Float64() float64 { return limb.ToFloat64(widthI512, z.limbs[:]) }

func (z *I512) Add(x, y *I512) *I512 {
	limb.Add(widthI512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I512) Sub(x, y *I512) *I512 {
	limb.Sub(widthI512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I512) Neg(x *I512) *I512 {
	limb.Negate(widthI512, z.limbs[:], x.limbs[:])
	return z
}

func (z *I512) Inc() *I512 {
	limb.Increment(widthI512, z.limbs[:])
	return z
}

func (z *I512) Dec() *I512 {
	limb.Decrement(widthI512, z.limbs[:])
	return z
}

func (z *I512) Mul(x, y *I512) *I512 {
	limb.Mul(widthI512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I512) DivMod(x, y, m *I512) (*I512, *I512, error) {
	if err := limb.DivModSigned(widthI512, z.limbs[:], m.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return nil, nil, err
	}
	return z, m, nil
}

func (z *I512) Div(x, y *I512) (*I512, error) {
	var m I512
	if _, _, err := z.DivMod(x, y, &m); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *I512) Mod(x, y *I512) (*I512, error) {
	var q I512
	if _, _, err := q.DivMod(x, y, z); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *I512) And(x, y *I512) *I512 {
	limb.And(widthI512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I512) Or(x, y *I512) *I512 {
	limb.Or(widthI512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I512) Xor(x, y *I512) *I512 {
	limb.Xor(widthI512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I512) Not(x *I512) *I512 {
	limb.Complement(widthI512, z.limbs[:], x.limbs[:])
	return z
}

func (z *I512) Lsh(x *I512, n uint) *I512 {
	limb.ShiftLeft(widthI512, z.limbs[:], x.limbs[:], n)
	return z
}

func (z *I512) Rsh(x *I512, n uint) *I512 {
	limb.ShiftRight(widthI512, z.limbs[:], x.limbs[:], n)
	return z
}

func (z *I512) Cmp(y *I512) int { return limb.Compare(widthI512, z.limbs[:], y.limbs[:]) }
func (z *I512) Sign() int       { return limb.Sign(widthI512, z.limbs[:]) }
func (z *I512) IsZero() bool    { return limb.IsZero(z.limbs[:]) }

func (z *I512) Gcd(x, y *I512) *I512 {
	limb.GCD(widthI512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I512) Lcm(x, y *I512) *I512 {
	limb.LCM(widthI512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *I512) Swap(x *I512) {
	z.limbs, x.limbs = x.limbs, z.limbs
}

func (z *I512) String() string {
	return limb.FormatDecimal(widthI512, z.limbs[:], false)
}

func (z *I512) Format(base int, flags FormatFlags) string {
	showBase := flags&ShowBase != 0
	showPos := flags&ShowPos != 0
	if base == 10 {
		return limb.FormatDecimal(widthI512, z.limbs[:], showPos)
	}
	return limb.FormatRadix(widthI512, z.limbs[:], base, showBase, showPos)
}

func (z *I512) Parse(s string) (*I512, error) {
	if err := limb.ParseString(widthI512, z.limbs[:], s); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *I512) Limits() Limits { return LimitsFor(512, true) }
