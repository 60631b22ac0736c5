// Package mathx provides two tiers of transcendental approximations for
// the signal-rate math the rest of the kernel needs: a precise, cephes-
// derived tier (log/exp/sin/cos/sincos, error bound on the order of 2e-6)
// and a fast polynomial tier trading accuracy for fewer operations
// (sinApprox/cosApprox/expApprox/logApprox/tanhApprox). Both tiers operate
// on plain float32 scalars; the fast sin/cos/tanh forms also have
// simd.Vec4 variants (see the end of this file), which block.Saturate uses.
package mathx

import (
	"math"

	"github.com/dspkernel/blockdsp/internal/simd"
)

// --- precise, cephes-derived tier ---------------------------------------

const (
	cephesSQRTHF = 0.707106781186547524

	logP0 = 7.0376836292e-2
	logP1 = -1.1514610310e-1
	logP2 = 1.1676998740e-1
	logP3 = -1.2420140846e-1
	logP4 = 1.4249322787e-1
	logP5 = -1.6668057665e-1
	logP6 = 2.0000714765e-1
	logP7 = -2.4999993993e-1
	logP8 = 3.3333331174e-1
	logQ1 = -2.12194440e-4
	logQ2 = 0.693359375

	expHi = 88.3762626647949
	expLo = -88.3762626647949
	log2EF = 1.44269504088896341
	expC1 = 0.693359375
	expC2 = -2.12194440e-4
	expP0 = 1.9875691500e-4
	expP1 = 1.3981999507e-3
	expP2 = 8.3334519073e-3
	expP3 = 4.1665795894e-2
	expP4 = 1.6666665459e-1
	expP5 = 5.0000001201e-1

	minusDP1 = -0.78515625
	minusDP2 = -2.4187564849853515625e-4
	minusDP3 = -3.77489497744594108e-8
	sincofP0 = -1.9515295891e-4
	sincofP1 = 8.3321608736e-3
	sincofP2 = -1.6666654611e-1
	coscofP0 = 2.443315711809948e-005
	coscofP1 = -1.388731625493765e-003
	coscofP2 = 4.166664568298827e-002
	fopi     = 1.27323954473516 // 4/pi
)

// Log is a precise natural-logarithm approximation valid for x > 0;
// non-positive input returns 0.
func Log(x float32) float32 {
	if x <= 0 {
		return 0
	}
	bits := math.Float32bits(x)
	exp := int32(bits>>23) - 127
	mantissa := math.Float32frombits((bits &^ 0x7f800000) | 0x3f000000) // [0.5,1)

	e := float32(exp)
	if mantissa < cephesSQRTHF {
		e -= 1
		mantissa += mantissa
	}
	mantissa -= 1
	e += 1

	z := mantissa * mantissa
	y := float32(logP0)
	y = y*mantissa + logP1
	y = y*mantissa + logP2
	y = y*mantissa + logP3
	y = y*mantissa + logP4
	y = y*mantissa + logP5
	y = y*mantissa + logP6
	y = y*mantissa + logP7
	y = y*mantissa + logP8
	y *= mantissa * z

	y += e * logQ1
	y -= 0.5 * z
	result := mantissa + y + e*logQ2
	return result
}

// Exp is a precise exponential approximation.
func Exp(x float32) float32 {
	if x > expHi {
		x = expHi
	}
	if x < expLo {
		x = expLo
	}

	fx := x*log2EF + 0.5
	n := int32(fx)
	fxr := float32(n)
	if fxr > fx {
		fxr -= 1
	}

	x -= fxr * expC1
	x -= fxr * expC2
	z := x * x

	y := float32(expP0)
	y = y*x + expP1
	y = y*x + expP2
	y = y*x + expP3
	y = y*x + expP4
	y = y*x + expP5
	y = y*z + x + 1

	n2 := int32(fxr) + 127
	pow2n := math.Float32frombits(uint32(n2) << 23)
	return y * pow2n
}

// quadrantReduce reduces x to [-pi/4, pi/4] and returns the reduced value,
// the quadrant-derived sign/poly selection bits, following the source's
// integer-bit-twiddling scheme exactly but on scalar int32 lanes.
func quadrantReduce(x float32) (xr float32, signBit, polyMask bool, swapSign bool) {
	sign := x < 0
	if sign {
		x = -x
	}

	y := x * fopi
	j := int32(y)
	j = (j + 1) &^ 1
	y = float32(j)

	swapSign = j&4 != 0
	polyMask = j&2 == 0

	x += y * minusDP1
	x += y * minusDP2
	x += y * minusDP3
	return x, sign, polyMask, swapSign
}

// Sin is a precise sine approximation.
func Sin(x float32) float32 {
	xr, signBit, polyMask, swapSign := quadrantReduce(x)
	sign := signBit != swapSign

	z := xr * xr

	yCos := float32(coscofP0)
	yCos = yCos*z + coscofP1
	yCos = yCos*z + coscofP2
	yCos = yCos*z*z - 0.5*z + 1

	ySin := float32(sincofP0)
	ySin = ySin*z + sincofP1
	ySin = ySin*z + sincofP2
	ySin = ySin*z*xr + xr

	var y float32
	if polyMask {
		y = ySin
	} else {
		y = yCos
	}
	if sign {
		y = -y
	}
	return y
}

// Cos is a precise cosine approximation.
func Cos(x float32) float32 {
	if x < 0 {
		x = -x
	}
	y := x * fopi
	j := int32(y)
	j = (j + 1) &^ 1
	y = float32(j)
	j -= 2

	signBit := j&4 == 0
	polyMask := j&2 == 0

	x += y * minusDP1
	x += y * minusDP2
	x += y * minusDP3

	z := x * x

	yCos := float32(coscofP0)
	yCos = yCos*z + coscofP1
	yCos = yCos*z + coscofP2
	yCos = yCos*z*z - 0.5*z + 1

	ySin := float32(sincofP0)
	ySin = ySin*z + sincofP1
	ySin = ySin*z + sincofP2
	ySin = ySin*z*x + x

	var y2 float32
	if polyMask {
		y2 = ySin
	} else {
		y2 = yCos
	}
	if signBit {
		y2 = -y2
	}
	return y2
}

// SinCos returns Sin(x) and Cos(x); each is evaluated separately, so no
// quadrant-reduction work is shared between them.
func SinCos(x float32) (s, c float32) {
	return Sin(x), Cos(x)
}

// --- fast polynomial tier ------------------------------------------------

const (
	sinC1 = 0.99997937679290771484375
	sinC2 = -0.166624367237091064453125
	sinC3 = 8.30897875130176544189453125e-3
	sinC4 = -1.92649182281456887722015380859375e-4
	sinC5 = 2.147840177713078446686267852783203125e-6

	cosC1 = 0.999959766864776611328125
	cosC2 = -0.4997930824756622314453125
	cosC3 = 4.1496001183986663818359375e-2
	cosC4 = -1.33926304988563060760498046875e-3
	cosC5 = 1.8791708498611114919185638427734375e-5

	tanhN = 27.0
	tanhD = 9.0

	expApxC1 = 2139095040.0
	expApxC2 = 12102203.1615614
	expApxC3 = 1065353216.0
	expApxC4 = 0.510397365625862338668154
	expApxC5 = 0.310670891004095530771135
	expApxC6 = 0.168143436463395944830000
	expApxC7 = -2.88093587581985443087955e-3
	expApxC8 = 1.3671023382430374383648148e-2

	logApxC1 = -89.970756366
	logApxC2 = 3.529304993
	logApxC3 = -2.461222105
	logApxC4 = 1.130626167
	logApxC5 = -0.288739945
	logApxC6 = 3.110401639e-2
	logApxC7 = 0.69314718055995
)

// SinApprox is a fast odd-polynomial sine approximation valid on [-pi, pi].
func SinApprox(x float32) float32 {
	x2 := x * x
	return x * (sinC1 + x2*(sinC2+x2*(sinC3+x2*(sinC4+x2*sinC5))))
}

// CosApprox is a fast even-polynomial cosine approximation valid on [-pi, pi].
func CosApprox(x float32) float32 {
	x2 := x * x
	return cosC1 + x2*(cosC2+x2*(cosC3+x2*(cosC4+x2*cosC5)))
}

// TanhApprox is a fast rational-function tanh approximation (Padé-style).
// Input is clamped to [-3, 3], where the rational form reaches exactly
// ±1, so the output stays within [-1, 1].
func TanhApprox(x float32) float32 {
	if x > 3 {
		x = 3
	} else if x < -3 {
		x = -3
	}
	x2 := x * x
	return x * (tanhN + x2) / (tanhN + tanhD*x2)
}

// ExpApprox is a fast exponential approximation using Schraudolph's
// bit-manipulation trick refined with a degree-4 polynomial correction.
func ExpApprox(x float32) float32 {
	val2 := x*expApxC2 + expApxC3
	if val2 > expApxC1 {
		val2 = expApxC1
	}
	if val2 < 0 {
		val2 = 0
	}
	val4i := int32(val2)

	xu := math.Float32frombits(uint32(val4i) & 0x7F800000)
	b := math.Float32frombits((uint32(val4i) & 0x7FFFFF) | 0x3F800000)

	return xu * (expApxC4 + b*(expApxC5+b*(expApxC6+b*(expApxC7+b*expApxC8))))
}

// LogApprox is a fast natural-logarithm approximation, the dual of ExpApprox.
func LogApprox(x float32) float32 {
	bits := math.Float32bits(x)
	expi := int32(bits) >> 23

	masked := (int32(bits) & 0x7FFFFF) | 0x3F800000
	xm := math.Float32frombits(uint32(masked))

	poly := xm * (logApxC2 + xm*(logApxC3+xm*(logApxC4+xm*(logApxC5+xm*logApxC6))))

	addcst := float32(math.SmallestNonzeroFloat32)
	if x > 0 {
		addcst = logApxC1
	}

	return poly + addcst + logApxC7*float32(expi)
}

// --- Vec4-dispatched fast tier -------------------------------------------
//
// The three purely polynomial fast-tier functions (sin/cos/tanh) carry no
// per-lane branch or bit-reinterpret, so they lower directly onto
// internal/simd.Vec4's lane-parallel arithmetic instead of a per-sample
// loop calling the scalar form. ExpApprox/LogApprox keep their int32
// bit-twiddling in scalar form only (IVec4 has no float-bit-reinterpret
// primitive to lower into, and adding one only to serve these two
// rarely-block-hot functions isn't worth the added simd surface).

func bcast(v float32) simd.Vec4 { return simd.Vec4{v, v, v, v} }

// SinApproxVec4 is SinApprox evaluated across four lanes at once.
func SinApproxVec4(x simd.Vec4) simd.Vec4 {
	x2 := x.Mul(x)
	poly := bcast(sinC5)
	poly = x2.Mul(poly).Add(bcast(sinC4))
	poly = x2.Mul(poly).Add(bcast(sinC3))
	poly = x2.Mul(poly).Add(bcast(sinC2))
	poly = x2.Mul(poly).Add(bcast(sinC1))
	return x.Mul(poly)
}

// CosApproxVec4 is CosApprox evaluated across four lanes at once.
func CosApproxVec4(x simd.Vec4) simd.Vec4 {
	x2 := x.Mul(x)
	poly := bcast(cosC5)
	poly = x2.Mul(poly).Add(bcast(cosC4))
	poly = x2.Mul(poly).Add(bcast(cosC3))
	poly = x2.Mul(poly).Add(bcast(cosC2))
	poly = x2.Mul(poly).Add(bcast(cosC1))
	return poly
}

// TanhApproxVec4 is TanhApprox evaluated across four lanes at once.
func TanhApproxVec4(x simd.Vec4) simd.Vec4 {
	x = x.Min(bcast(3)).Max(bcast(-3))
	x2 := x.Mul(x)
	num := x.Mul(bcast(tanhN).Add(x2))
	den := bcast(tanhD).Mul(x2).Add(bcast(tanhN))
	return num.Div(den)
}
