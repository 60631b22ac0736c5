package filter

import "github.com/dspkernel/blockdsp/internal/mathx"

// OnePoleParams is just the normalised cutoff.
type OnePoleParams struct {
	Omega float32
}

// OnePoleCoeffs holds the single pole coefficient x = exp(-2*pi*omega).
type OnePoleCoeffs struct {
	X float32
}

func (c OnePoleCoeffs) Lerp(to OnePoleCoeffs, t float32) OnePoleCoeffs {
	return OnePoleCoeffs{X: c.X + (to.X-c.X)*t}
}

// OnePole is a one-state leaky integrator / lowpass.
type OnePole struct {
	coeffs OnePoleCoeffs
	y      float32
}

func (f *OnePole) MakeCoeffs(p OnePoleParams) OnePoleCoeffs {
	return OnePoleCoeffs{X: mathx.Exp(-2 * 3.14159265358979323846 * p.Omega)}
}

func (f *OnePole) NextFrame(x float32, c OnePoleCoeffs) float32 {
	f.y = (1-c.X)*x + c.X*f.y
	return f.y
}

func (f *OnePole) Coeffs() OnePoleCoeffs   { return f.coeffs }
func (f *OnePole) SetCoeffs(c OnePoleCoeffs) { f.coeffs = c }
func (f *OnePole) Clear()                  { f.y = 0 }

// DCBlockerParams is the normalised cutoff used to derive cos(omega).
type DCBlockerParams struct {
	Omega float32
}

// DCBlockerCoeffs holds the single derived cosine coefficient.
type DCBlockerCoeffs struct {
	CosOmega float32
}

func (c DCBlockerCoeffs) Lerp(to DCBlockerCoeffs, t float32) DCBlockerCoeffs {
	return DCBlockerCoeffs{CosOmega: c.CosOmega + (to.CosOmega-c.CosOmega)*t}
}

// DCBlocker removes subsonic DC offset: y = input - x1 + cos(omega)*y1.
type DCBlocker struct {
	coeffs DCBlockerCoeffs
	x1, y1 float32
}

func (f *DCBlocker) MakeCoeffs(p DCBlockerParams) DCBlockerCoeffs {
	return DCBlockerCoeffs{CosOmega: mathx.Cos(p.Omega)}
}

func (f *DCBlocker) NextFrame(x float32, c DCBlockerCoeffs) float32 {
	y := x - f.x1 + c.CosOmega*f.y1
	f.x1 = x
	f.y1 = y
	return y
}

func (f *DCBlocker) Coeffs() DCBlockerCoeffs     { return f.coeffs }
func (f *DCBlocker) SetCoeffs(c DCBlockerCoeffs) { f.coeffs = c }
func (f *DCBlocker) Clear()                      { f.x1, f.y1 = 0, 0 }
