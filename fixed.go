package scene

// Fixed is a signed Q15.16 fixed-point number: an int32 treated as
// value * 2^16. It is the numeric substrate for node positions, animation
// progress, color interpolation, and the trig used by curves.
type Fixed int32

// Constants mirror original_source/src/fixed.c exactly; do not
// "clean up" these bit patterns, several curve identities (sin(FMPi) == 0,
// sin(FM3Pi2) == -FM1) only hold because FMPi2 is this specific truncation.
const (
	FM1    Fixed = 0x10000
	FM1_2  Fixed = 0x8000
	FM1_4  Fixed = 0x4000
	FM1_8  Fixed = 0x2000
	FM1_16 Fixed = 0x1000

	FMPi2  Fixed = 0x19220
	FMPi   Fixed = 2 * FMPi2
	FM3Pi2 Fixed = 3 * FMPi2
	FM2Pi  Fixed = 4 * FMPi2

	FME Fixed = 0x2b7e1

	FMMax Fixed = 0x7fffffff
	FMMin Fixed = -0x80000000
)

// ToFixed returns i as a Fixed with zero fractional bits. Overflow for
// large i is the caller's responsibility, matching tofx in fixed.c.
func ToFixed(i int32) Fixed {
	return Fixed(i << 16)
}

// Ratio returns top/bottom as a Fixed, truncating toward zero. bottom must
// be non-zero.
func Ratio(top, bottom int32) Fixed {
	return Fixed((int64(top) << 16) / int64(bottom))
}

// Mul returns x*y rounded half-up to the nearest Fixed.
func Mul(x, y Fixed) Fixed {
	t := int64(x) * int64(y)
	return Fixed(int32(uint32((uint64(t) + (1 << 15)) >> 16)))
}

// Div returns x/y truncated toward zero.
func Div(x, y Fixed) Fixed {
	return Fixed((int64(x) * 65536) / int64(y))
}

// Scalar scales the int32 s by the fixed ratio t with an arithmetic right
// shift, so a fractional result rounds toward negative infinity.
// Used to interpolate integer pixel offsets (positions, sizes) without
// promoting them to Fixed themselves.
func Scalar(s int32, t Fixed) int32 {
	return int32((int64(s) * int64(t)) >> 16)
}

func umul32hi(a, b uint32) uint32 {
	return uint32((uint64(a) * uint64(b)) >> 32)
}

// Log2 returns the base-2 logarithm of x as a Fixed, via the same
// minimax-polynomial approximation as log2fx in fixed.c. x must be > 0.
func Log2(x Fixed) Fixed {
	const (
		a0 = uint32(1901359519) // round(0.44269476063 * 2^32)
		a1 = uint32(3098003232) // round(7.2131008654833e-1 * 2^32)
		a2 = uint32(2061857896) // round(4.8006370104849e-1 * 2^32)
		a3 = uint32(1517819172) // round(3.5339481476694e-1 * 2^32)
		a4 = uint32(1099553409) // round(2.5600972794928e-1 * 2^32)
		a5 = uint32(667231027)  // round(1.5535182948224e-1 * 2^32)
		a6 = uint32(273193960)  // round(6.3607925549150e-2 * 2^32)
		a7 = uint32(52912485)   // round(1.2319647939876e-2 * 2^32)
	)

	v := uint32(x)
	lz := int32(clz32(v))

	xv := v << uint32(lz+1)
	y := umul32hi(xv, xv)
	z := umul32hi(y, y)

	h := a0 - umul32hi(a1, xv)
	m := umul32hi(a2-umul32hi(a3, xv), y)
	l := umul32hi(a4-umul32hi(a5, xv)+umul32hi(a6-umul32hi(a7, xv), y), z)
	approx := xv + umul32hi(xv, h+m+l)

	approx = uint32((15-lz)<<16) + ((((approx) >> 15) + 1) >> 1)
	return Fixed(approx)
}

// Exp2 returns 2^x as a Fixed, via the same minimax-polynomial
// approximation as exp2fx in fixed.c. Underflows to 0 for x < -16.
func Exp2(x Fixed) Fixed {
	const (
		a0 = uint32(2977044474) // round(6.9314718107e-1 * 2^32)
		a1 = uint32(1031764910) // round(2.4022648809e-1 * 2^32)
		a2 = uint32(238389642)  // round(5.5504413787e-2 * 2^32)
		a3 = uint32(41301581)   // round(9.6162736882e-3 * 2^32)
		a4 = uint32(5749599)    // round(1.3386828359e-3 * 2^32)
		a5 = uint32(628344)     // round(1.4629773796e-4 * 2^32)
		a6 = uint32(88747)      // round(2.0663021132e-5 * 2^32)
	)

	xv := uint32(int32(x))
	i := int32((int32(xv)>>16)^0x8000) - 0x8000

	f := xv << 16

	s := umul32hi(f, f)
	q := umul32hi(s, s)
	h := a0 + umul32hi(a1, f)
	m := umul32hi(a2+umul32hi(a3, f), s)
	l := umul32hi(a4+umul32hi(a5, f)+umul32hi(a6, s), q)
	approx := umul32hi(f, h+m+l)

	approx = ((approx >> uint32(15-i)) + (0x80000000 >> uint32(14-i)) + 1) >> 1

	if i < -16 {
		approx = 0
	}
	return Fixed(approx)
}

func clz32(v uint32) int {
	if v == 0 {
		return 32
	}
	n := 0
	for v&0x80000000 == 0 {
		v <<= 1
		n++
	}
	return n
}

// Pow returns a**b for a > 0, computed as Exp2(Mul(b, Log2(a))).
func Pow(a, b Fixed) Fixed {
	return Exp2(Mul(b, Log2(a)))
}

// Sin returns the sine of x (in radians, Q15.16), via a third-order
// polynomial tuned so sin(FMPi)==0 and sin(FM3Pi2)==-FM1 exactly.
// See: http://www.coranac.com/2009/07/sines/
func Sin(x Fixed) Fixed {
	m := int64(x) % int64(FM2Pi)
	x = Fixed((m+int64(FM2Pi))%int64(FM2Pi))

	ymul := Fixed(1)
	switch {
	case x >= FM3Pi2:
		x -= FM3Pi2
		x = FMPi2 - x
		ymul = -1
	case x >= FMPi:
		x -= FMPi
		ymul = -1
	case x >= FMPi2:
		x -= FMPi2
		x = FMPi2 - x
	}

	result := Mul(0xf475, x) - Mul(0x2106, Mul(Mul(x, x), x))
	return ymul * result
}

// Cos returns the cosine of x as Sin(x + FMPi2).
func Cos(x Fixed) Fixed {
	return Sin(x + FMPi2)
}

// SprintFixed formats v as "[-]D.DDDDDD" with six fractional decimal
// digits, matching ffx_sprintfx.
func SprintFixed(v Fixed) string {
	neg := v < 0
	value := uint32(v)
	if neg {
		value = uint32(-int64(v))
	}

	whole := value >> 16
	frac := (uint64(value&0xffff) * 1000000) / 0x10000

	b := make([]byte, 0, 16)
	if neg {
		b = append(b, '-')
	}
	if whole == 0 {
		b = append(b, '0')
	} else {
		start := len(b)
		for whole > 0 {
			b = append(b, byte('0'+whole%10))
			whole /= 10
		}
		reverseBytes(b[start:])
	}
	b = append(b, '.')
	start := len(b)
	for i := 0; i < 6; i++ {
		b = append(b, byte('0'+frac%10))
		frac /= 10
	}
	reverseBytes(b[start:])
	return string(b)
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
