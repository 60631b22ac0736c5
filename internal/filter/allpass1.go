package filter

// Allpass1Params is the fractional delay the allpass approximates.
// Input range [0.618, 1.618] minimises modulation noise (§4.3.3).
type Allpass1Params struct {
	D float32
}

// Allpass1Coeffs holds the single derived allpass coefficient.
type Allpass1Coeffs struct {
	C float32
}

func (c Allpass1Coeffs) Lerp(to Allpass1Coeffs, t float32) Allpass1Coeffs {
	return Allpass1Coeffs{C: c.C + (to.C-c.C)*t}
}

// Allpass1 is the first-order (one-multiply) fractional-delay allpass.
type Allpass1 struct {
	coeffs Allpass1Coeffs
	x1, y1 float32
}

// MakeCoeffs implements c = -0.53*(d-1) + 0.24*(d-1)^2.
func (f *Allpass1) MakeCoeffs(p Allpass1Params) Allpass1Coeffs {
	dm1 := p.D - 1
	return Allpass1Coeffs{C: -0.53*dm1 + 0.24*dm1*dm1}
}

func (f *Allpass1) NextFrame(x float32, c Allpass1Coeffs) float32 {
	y := f.x1 + (x-f.y1)*c.C
	f.x1 = x
	f.y1 = y
	return y
}

func (f *Allpass1) Coeffs() Allpass1Coeffs     { return f.coeffs }
func (f *Allpass1) SetCoeffs(c Allpass1Coeffs) { f.coeffs = c }
func (f *Allpass1) Clear()                     { f.x1, f.y1 = 0, 0 }
