package mathx

import (
	"math"
	"testing"

	"github.com/dspkernel/blockdsp/internal/simd"
)

const preciseTol = 2e-6
const approxTol = 1e-3

func TestLogMatchesStdlib(t *testing.T) {
	for _, x := range []float32{0.01, 0.5, 1, 2, 10, 100, 1000} {
		got := Log(x)
		want := float32(math.Log(float64(x)))
		if diff := math.Abs(float64(got - want)); diff > preciseTol {
			t.Errorf("Log(%v) = %v, want %v (diff %v)", x, got, want, diff)
		}
	}
}

func TestExpMatchesStdlib(t *testing.T) {
	for _, x := range []float32{-10, -1, 0, 0.5, 1, 5, 10} {
		got := Exp(x)
		want := float32(math.Exp(float64(x)))
		if diff := math.Abs(float64(got-want)) / math.Max(1, float64(want)); diff > preciseTol*10 {
			t.Errorf("Exp(%v) = %v, want %v (relerr %v)", x, got, want, diff)
		}
	}
}

func TestSinCosMatchStdlib(t *testing.T) {
	for _, x := range []float32{-3.0, -1.5, -0.1, 0, 0.1, 1.5, 3.0} {
		s, c := SinCos(x)
		wantS := float32(math.Sin(float64(x)))
		wantC := float32(math.Cos(float64(x)))
		if diff := math.Abs(float64(s - wantS)); diff > preciseTol {
			t.Errorf("Sin(%v) = %v, want %v (diff %v)", x, s, wantS, diff)
		}
		if diff := math.Abs(float64(c - wantC)); diff > preciseTol {
			t.Errorf("Cos(%v) = %v, want %v (diff %v)", x, c, wantC, diff)
		}
	}
}

func TestSinApproxCosApproxBounded(t *testing.T) {
	for x := float32(-3.14); x <= 3.14; x += 0.2 {
		s := SinApprox(x)
		c := CosApprox(x)
		wantS := float32(math.Sin(float64(x)))
		wantC := float32(math.Cos(float64(x)))
		if diff := math.Abs(float64(s - wantS)); diff > approxTol {
			t.Errorf("SinApprox(%v) = %v, want ~%v (diff %v)", x, s, wantS, diff)
		}
		if diff := math.Abs(float64(c - wantC)); diff > approxTol {
			t.Errorf("CosApprox(%v) = %v, want ~%v (diff %v)", x, c, wantC, diff)
		}
	}
}

func TestTanhApproxSaturates(t *testing.T) {
	for _, x := range []float32{-5, -1, 0, 1, 5} {
		got := TanhApprox(x)
		want := float32(math.Tanh(float64(x)))
		if diff := math.Abs(float64(got - want)); diff > 0.02 {
			t.Errorf("TanhApprox(%v) = %v, want ~%v", x, got, want)
		}
	}
	if got := TanhApprox(0); got != 0 {
		t.Errorf("TanhApprox(0) = %v, want 0", got)
	}
}

func TestVec4ApproxMatchScalar(t *testing.T) {
	x := simd.Vec4{-1.5, -0.2, 0.7, 2.9}

	sv := SinApproxVec4(x)
	cv := CosApproxVec4(x)
	tv := TanhApproxVec4(x)
	for i := range x {
		if diff := math.Abs(float64(sv[i] - SinApprox(x[i]))); diff > 1e-6 {
			t.Errorf("SinApproxVec4 lane %d = %v, want %v (scalar)", i, sv[i], SinApprox(x[i]))
		}
		if diff := math.Abs(float64(cv[i] - CosApprox(x[i]))); diff > 1e-6 {
			t.Errorf("CosApproxVec4 lane %d = %v, want %v (scalar)", i, cv[i], CosApprox(x[i]))
		}
		if diff := math.Abs(float64(tv[i] - TanhApprox(x[i]))); diff > 1e-6 {
			t.Errorf("TanhApproxVec4 lane %d = %v, want %v (scalar)", i, tv[i], TanhApprox(x[i]))
		}
	}
}

func TestExpApproxLogApproxRoundTrip(t *testing.T) {
	for _, x := range []float32{0.5, 1, 2, 5} {
		e := ExpApprox(x)
		back := LogApprox(e)
		if diff := math.Abs(float64(back - x)); diff > 0.05 {
			t.Errorf("LogApprox(ExpApprox(%v)) = %v, want ~%v", x, back, x)
		}
	}
}
