package fixedint

import "github.com/oisee/fixedint/pkg/limb"

var widthU256 = limb.Width{Bits: 256, Signed: false}

// U256 is an unsigned 256-bit integer: eight 32-bit limbs, big-endian.
type U256 struct {
	limbs [8]uint32
}

var (
	U256Max = new(U256).SetUint64(0).not()
	U256Min = new(U256)
)

func (z *U256) not() *U256 {
	limb.Complement(widthU256, z.limbs[:], z.limbs[:])
	return z
}

func NewU256(v uint64) *U256 {
	return new(U256).SetUint64(v)
}

func (z *U256) SetUint64(v uint64) *U256 {
	limb.SetUint64(widthU256, z.limbs[:], v)
	return z
}

func (z *U256) SetInt64(v int64) *U256 {
	limb.SetInt64(widthU256, z.limbs[:], v)
	return z
}

func (z *U256) SetFloat64(v float64) (*U256, error) {
	if err := limb.SetFloat64(widthU256, z.limbs[:], v); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *U256) Uint64() uint64   { return limb.ToUint64(widthU256, z.limbs[:]) }
func (z *U256) Int64() int64     { return limb.ToInt64(widthU256, z.limbs[:]) }
func (z *U256) Float64() float64 { return limb.ToFloat64(widthU256, z.limbs[:]) }

func (z *U256) Add(x, y *U256) *U256 {
	limb.Add(widthU256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U256) Sub(x, y *U256) *U256 {
	limb.Sub(widthU256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U256) Neg(x *U256) *U256 {
	limb.Negate(widthU256, z.limbs[:], x.limbs[:])
	return z
}

func (z *U256) Inc() *U256 {
	limb.Increment(widthU256, z.limbs[:])
	return z
}

func (z *U256) Dec() *U256 {
	limb.Decrement(widthU256, z.limbs[:])
	return z
}

func (z *U256) Mul(x, y *U256) *U256 {
	limb.Mul(widthU256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U256) DivMod(x, y, m *U256) (*U256, *U256, error) {
	if err := limb.DivMod(widthU256, z.limbs[:], m.limbs[:], x.limbs[:], y.limbs[:]); err != nil {
		return nil, nil, err
	}
	return z, m, nil
}

func (z *U256) Div(x, y *U256) (*U256, error) {
	var m U256
	if _, _, err := z.DivMod(x, y, &m); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *U256) Mod(x, y *U256) (*U256, error) {
	var q U256
	if _, _, err := q.DivMod(x, y, z); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *U256) And(x, y *U256) *U256 {
	limb.And(widthU256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U256) Or(x, y *U256) *U256 {
	limb.Or(widthU256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U256) Xor(x, y *U256) *U256 {
	limb.Xor(widthU256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U256) Not(x *U256) *U256 {
	limb.Complement(widthU256, z.limbs[:], x.limbs[:])
	return z
}

func (z *U256) Lsh(x *U256, n uint) *U256 {
	limb.ShiftLeft(widthU256, z.limbs[:], x.limbs[:], n)
	return z
}

func (z *U256) Rsh(x *U256, n uint) *U256 {
	limb.ShiftRight(widthU256, z.limbs[:], x.limbs[:], n)
	return z
}

func (z *U256) Cmp(y *U256) int { return limb.Compare(widthU256, z.limbs[:], y.limbs[:]) }
func (z *U256) Sign() int       { return limb.Sign(widthU256, z.limbs[:]) }
func (z *U256) IsZero() bool    { return limb.IsZero(z.limbs[:]) }

func (z *U256) Gcd(x, y *U256) *U256 {
	limb.GCD(widthU256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U256) Lcm(x, y *U256) *U256 {
	limb.LCM(widthU256, z.limbs[:], x.limbs[:], y.limbs[:])
	return z
}

func (z *U256) Swap(x *U256) {
	z.limbs, x.limbs = x.limbs, z.limbs
}

func (z *U256) String() string {
	return limb.FormatDecimal(widthU256, z.limbs[:], false)
}

func (z *U256) Format(base int, flags FormatFlags) string {
	showBase := flags&ShowBase != 0
	showPos := flags&ShowPos != 0
	if base == 10 {
		return limb.FormatDecimal(widthU256, z.limbs[:], showPos)
	}
	return limb.FormatRadix(widthU256, z.limbs[:], base, showBase, showPos)
}

func (z *U256) Parse(s string) (*U256, error) {
	if err := limb.ParseString(widthU256, z.limbs[:], s); err != nil {
		return nil, err
	}
	return z, nil
}

func (z *U256) Limits() Limits { return LimitsFor(256, false) }
