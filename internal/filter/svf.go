package filter

import "github.com/dspkernel/blockdsp/internal/mathx"

// SVFParams are the human-tuned quantities for every state-variable
// variant: normalised cutoff and damping. Shelf/bell variants also use A.
type SVFParams struct {
	Omega float32 // f_cutoff / f_sample, in [0, 0.5)
	K     float32 // damping, 1/Q
	A     float32 // shelf/bell amplitude ratio; ignored by low/high/band/pass
}

// SVFCoeffs holds the derived multiply-add constants shared by the whole
// state-variable family. Lowpass/highpass/bandpass use G0/G1/G2/Gk; shelf
// and bell use A1/A2/A3 plus the M0/M1/M2 output mix.
type SVFCoeffs struct {
	G0, G1, G2, Gk float32
	A1, A2, A3     float32
	M0, M1, M2     float32
}

// Lerp blends every coefficient linearly — the shared implementation the
// per-block-interpolated invocation mode relies on.
func (c SVFCoeffs) Lerp(to SVFCoeffs, t float32) SVFCoeffs {
	lerp := func(a, b float32) float32 { return a + (b-a)*t }
	return SVFCoeffs{
		G0: lerp(c.G0, to.G0), G1: lerp(c.G1, to.G1), G2: lerp(c.G2, to.G2), Gk: lerp(c.Gk, to.Gk),
		A1: lerp(c.A1, to.A1), A2: lerp(c.A2, to.A2), A3: lerp(c.A3, to.A3),
		M0: lerp(c.M0, to.M0), M1: lerp(c.M1, to.M1), M2: lerp(c.M2, to.M2),
	}
}

// makeLowHighBandCoeffs implements §4.3.1's g0/g1/g2 derivation shared by
// the lowpass, highpass, and bandpass variants.
func makeLowHighBandCoeffs(p SVFParams) SVFCoeffs {
	piOmega := float32(3.14159265358979323846) * p.Omega
	s1 := mathx.Sin(piOmega)
	s2 := mathx.Sin(2 * piOmega)
	nrm := 1 / (2 + p.K*s2)

	return SVFCoeffs{
		G0: s2 * nrm,
		G1: (-2*s1*s1 - p.K*s2) * nrm,
		G2: (2 * s1 * s1) * nrm,
		Gk: p.K,
	}
}

// makeShelfBellCoeffs implements the alternative "tan-based" derivation
// used by the low-shelf, high-shelf, and bell variants. kc is the damping
// term the a1/a2/a3 pole placement is built from: low/high-shelf pass
// raw K straight through, but bell passes K/sqrt(A) (see Bell.MakeCoeffs).
func makeShelfBellCoeffs(kc, g float32) SVFCoeffs {
	a1 := 1 / (1 + g*(g+kc))
	a2 := g * a1
	a3 := g * a2
	return SVFCoeffs{A1: a1, A2: a2, A3: a3}
}

func tanPiOmega(omega float32) float32 {
	piOmega := float32(3.14159265358979323846) * omega
	return mathx.Sin(piOmega) / mathx.Cos(piOmega)
}

// svfCore is the shared two-state (ic1eq, ic2eq) topology every
// state-variable variant runs its per-sample update through.
type svfCore struct {
	coeffs       SVFCoeffs
	ic1eq, ic2eq float32
}

func (s *svfCore) Coeffs() SVFCoeffs     { return s.coeffs }
func (s *svfCore) SetCoeffs(c SVFCoeffs) { s.coeffs = c }
func (s *svfCore) Clear() {
	s.ic1eq, s.ic2eq = 0, 0
}

// step runs the common two-integrator update and returns (v1, v2) so
// each variant can form its own output from the shared intermediates.
func (s *svfCore) step(x float32, c SVFCoeffs) (v1, v2 float32) {
	t0 := x - s.ic2eq
	t1 := c.G0*t0 + c.G1*s.ic1eq
	t2 := c.G2*t0 + c.G0*s.ic1eq
	v1 = s.ic1eq + t1
	v2 = s.ic2eq + t2
	s.ic1eq += 2 * t1
	s.ic2eq += 2 * t2
	return v1, v2
}

// stepShelfBell runs the a1/a2/a3 two-state topology shared by shelf/bell.
func (s *svfCore) stepShelfBell(x float32, c SVFCoeffs) (v1, v2 float32) {
	v3 := x - s.ic2eq
	v1 = c.A1*s.ic1eq + c.A2*v3
	v2 = s.ic2eq + c.A2*s.ic1eq + c.A3*v3
	s.ic1eq = 2*v1 - s.ic1eq
	s.ic2eq = 2*v2 - s.ic2eq
	return v1, v2
}

// Lowpass is the state-variable lowpass kernel; output is v2.
type Lowpass struct{ svfCore }

func (f *Lowpass) MakeCoeffs(p SVFParams) SVFCoeffs { return makeLowHighBandCoeffs(p) }
func (f *Lowpass) NextFrame(x float32, c SVFCoeffs) float32 {
	_, v2 := f.step(x, c)
	return v2
}

// Highpass is the state-variable highpass kernel; output is x - gk*v1 - v2.
type Highpass struct{ svfCore }

func (f *Highpass) MakeCoeffs(p SVFParams) SVFCoeffs { return makeLowHighBandCoeffs(p) }
func (f *Highpass) NextFrame(x float32, c SVFCoeffs) float32 {
	v1, v2 := f.step(x, c)
	return x - c.Gk*v1 - v2
}

// Bandpass is the state-variable bandpass kernel; output is v1.
type Bandpass struct{ svfCore }

func (f *Bandpass) MakeCoeffs(p SVFParams) SVFCoeffs { return makeLowHighBandCoeffs(p) }
func (f *Bandpass) NextFrame(x float32, c SVFCoeffs) float32 {
	v1, _ := f.step(x, c)
	return v1
}

// LowShelf boosts or cuts below Omega by a factor of A.
type LowShelf struct{ svfCore }

func (f *LowShelf) MakeCoeffs(p SVFParams) SVFCoeffs {
	g := tanPiOmega(p.Omega) / sqrt32(p.A)
	c := makeShelfBellCoeffs(p.K, g)
	c.M0, c.M1, c.M2 = 1, p.K*(p.A-1), p.A*p.A-1
	return c
}
func (f *LowShelf) NextFrame(x float32, c SVFCoeffs) float32 {
	v1, v2 := f.stepShelfBell(x, c)
	return c.M0*x + c.M1*v1 + c.M2*v2
}

// HighShelf boosts or cuts above Omega by a factor of A.
type HighShelf struct{ svfCore }

func (f *HighShelf) MakeCoeffs(p SVFParams) SVFCoeffs {
	g := tanPiOmega(p.Omega) * sqrt32(p.A)
	c := makeShelfBellCoeffs(p.K, g)
	c.M0, c.M1, c.M2 = p.A*p.A, p.K*(1-p.A)*p.A, 1-p.A*p.A
	return c
}
func (f *HighShelf) NextFrame(x float32, c SVFCoeffs) float32 {
	v1, v2 := f.stepShelfBell(x, c)
	return c.M0*x + c.M1*v1 + c.M2*v2
}

// Bell boosts or cuts a band centred on Omega by a factor of A.
type Bell struct{ svfCore }

func (f *Bell) MakeCoeffs(p SVFParams) SVFCoeffs {
	// Bell's pole placement and mix both use kc = K/sqrt(A) rather than raw
	// K. The band output v1 has gain 1/kc at the centre, so the mix
	// M1 = kc*(A-1) gives a centre gain of exactly A.
	kc := p.K / sqrt32(p.A)
	g := tanPiOmega(p.Omega)
	c := makeShelfBellCoeffs(kc, g)
	c.M0, c.M1, c.M2 = 1, kc*(p.A-1), 0
	return c
}
func (f *Bell) NextFrame(x float32, c SVFCoeffs) float32 {
	v1, v2 := f.stepShelfBell(x, c)
	return c.M0*x + c.M1*v1 + c.M2*v2
}

func sqrt32(x float32) float32 {
	if x <= 0 {
		return 0
	}
	// Eight Newton-Raphson (Heron) steps from a seed of 1; no reciprocal-
	// sqrt estimate is used.
	y := x
	guess := float32(1)
	for i := 0; i < 8; i++ {
		guess = 0.5 * (guess + y/guess)
	}
	return guess
}
