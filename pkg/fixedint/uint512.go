package fixedint

import "github.com/oisee/fixedint/pkg/limb"

var widthU512 = limb.Width{Bits: 512, Signed: false}

// U512 is an unsigned 512-bit integer: sixteen 32-bit limbs, big-endian.
type U512 struct {
	limbs [16]uint32
}

var (
	U512Max = new(U512).SetUint64(0).not()
	U512Min = new(U512)
)

func (z *U512) not() *U512 {
	limb.Complement(widthU512, z.limbs[:], z.limbs[:])
	return z
}

func NewU512(v uint64) *U512 {
	return new(U512).SetUint64(v)
}

func (z *U512) SetUint64(v uint64) *U512 {
	limb.SetUint64(widthU512, z.limbs[:], v)
	return z
}

func (z *U512) SetInt64(v int64) *U512 {
	limb.SetInt64(widthU512, z.limbs[:], v)
	return z
}

func (z *U512) SetFloat64(v float64) (*U512, error) {
	if err := limb.SetFloat64(widthU512, z.limbs[:], v); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *U512) Uint64() uint64   { return limb.ToUint64(widthU512, z.limbs[:]) }
func (z *U512) Int64() int64     { return limb.ToInt64(widthU512, z.limbs[:]) }
func (z *U512) Float64() float64 { return limb.ToFloat64(widthU512, z.limbs[:]) }

func (z *U512) Add(x, y *U512) *U512 {
	limb.Add(widthU512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U512) Sub(x, y *U512) *U512 {
	limb.Sub(widthU512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U512) Neg(x *U512) *U512 {
	limb.Negate(widthU512, z.limbs[:], x.limbs[:])
	return z
}

func (z *U512) Inc() *U512 {
	limb.Increment(widthU512, z.limbs[:])
	return z
}

func (z *U512) Dec() *U512 {
	limb.Decrement(widthU512, z.limbs[:])
	return z
}

func (z *U512) Mul(x, y *U512) *U512 {
	limb.Mul(widthU512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U512) DivMod(x, y, m *U512) (*U512, *U512, error) {
	if err := limb.DivMod(widthU512, z.limbs[:], m.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return nil, nil, err
	}
	return z, m, nil
}

func (z *U512) Div(x, y *U512) (*U512, error) {
	var m U512
	if _, _, err := z.DivMod(x, y, &m); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *U512) Mod(x, y *U512) (*U512, error) {
	var q U512
	if _, _, err := q.DivMod(x, y, z); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *U512) And(x, y *U512) *U512 {
	limb.And(widthU512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U512) Or(x, y *U512) *U512 {
	limb.Or(widthU512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U512) Xor(x, y *U512) *U512 {
	limb.Xor(widthU512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U512) Not(x *U512) *U512 {
	limb.Complement(widthU512, z.limbs[:], x.limbs[:])
	return z
}

func (z *U512) Lsh(x *U512, n uint) *U512 {
	limb.ShiftLeft(widthU512, z.limbs[:], x.limbs[:], n)
	return z
}

func (z *U512) Rsh(x *U512, n uint) *U512 {
	limb.ShiftRight(widthU512, z.limbs[:], x.limbs[:], n)
	return z
}

func (z *U512) Cmp(y *U512) int { return limb.Compare(widthU512, z.limbs[:], y.limbs[:]) }
func (z *U512) Sign() int       { return limb.Sign(widthU512, z.limbs[:]) }
func (z *U512) IsZero() bool    { return limb.IsZero(z.limbs[:]) }

func (z *U512) Gcd(x, y *U512) *U512 {
	limb.GCD(widthU512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U512) Lcm(x, y *U512) *U512 {
	limb.LCM(widthU512, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U512) Swap(x *U512) {
	z.limbs, x.limbs = x.limbs, z.limbs
}

func (z *U512) String() string {
	return limb.FormatDecimal(widthU512, z.limbs[:], false)
}

func (z *U512) Format(base int, flags FormatFlags) string {
	showBase := flags&ShowBase != 0
	showPos := flags&ShowPos != 0
	if base == 10 {
		return limb.FormatDecimal(widthU512, z.limbs[:], showPos)
	}
	return limb.FormatRadix(widthU512, z.limbs[:], base, showBase, showPos)
}

func (z *U512) Parse(s string) (*U512, error) {
	if err := limb.ParseString(widthU512, z.limbs[:], s); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *U512) Limits() Limits { return LimitsFor(512, false) }
