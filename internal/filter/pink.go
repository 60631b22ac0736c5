package filter

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PinkFilter is a parallel one-pole bank whose gains are fitted, once per
// sample rate, to approximate a -3 dB/octave (1/sqrt(f) magnitude) slope.
// Apply it to unit white noise to produce pink noise (§4.3.4).
type PinkFilter struct {
	a, g, state [pinkNumPoles]float32
}

const (
	pinkNumPoles   = 6
	pinkNumTargets = 32
)

var pinkPoleFreqs = [pinkNumPoles]float32{1.5, 42, 220, 950, 3300, 9500}

// Init computes the per-sample pole coefficients and fits the six gains
// for the given sample rate, via iterative phase retrieval over a linear
// least-squares problem solved with gonum (§4.3.4).
func (f *PinkFilter) Init(sampleRate float32) {
	const twoPi = 2 * math.Pi

	var af [pinkNumPoles]float64
	for i, fc := range pinkPoleFreqs {
		af[i] = math.Exp(-twoPi * float64(fc) / float64(sampleRate))
	}

	logMin := math.Log(5.0)
	logMax := math.Log(float64(sampleRate) * 0.45)
	var fTargets [pinkNumTargets]float64
	for k := 0; k < pinkNumTargets; k++ {
		fTargets[k] = math.Exp(logMin + (logMax-logMin)*float64(k)/float64(pinkNumTargets-1))
	}

	midMag := 1.0 / math.Sqrt(fTargets[pinkNumTargets/2])
	var targetMag [pinkNumTargets]float64
	for k, fk := range fTargets {
		targetMag[k] = (1.0 / math.Sqrt(fk)) / midMag
	}

	var br, bi [pinkNumTargets][pinkNumPoles]float64
	for k, fk := range fTargets {
		w := twoPi * fk / float64(sampleRate)
		cw, sw := math.Cos(w), math.Sin(w)
		for i, a := range af {
			dr := 1 - a*cw
			di := a * sw
			denom := dr*dr + di*di
			br[k][i] = dr / denom
			bi[k][i] = -di / denom
		}
	}

	var g [pinkNumPoles]float64
	gSum := 0.0
	for i, a := range af {
		g[i] = (1 - a) / math.Sqrt(float64(pinkPoleFreqs[i]))
		gSum += math.Abs(g[i])
	}
	for i := range g {
		g[i] /= gSum
	}

	fitMagnitudeResponse(br, bi, targetMag, &g, 10)

	for i := range f.a {
		f.a[i] = float32(af[i])
		f.g[i] = float32(g[i])
	}
}

// fitMagnitudeResponse finds real gains g minimizing the error between
// |sum_i g_i * B_i(f_k)| and targetMag, by alternating a phase-projection
// step with a fixed-normal-matrix linear least-squares solve.
func fitMagnitudeResponse(br, bi [pinkNumTargets][pinkNumPoles]float64, targetMag [pinkNumTargets]float64, g *[pinkNumPoles]float64, iters int) {
	var btb mat.SymDense
	btb.Reset()
	btbData := make([]float64, pinkNumPoles*pinkNumPoles)
	for i := 0; i < pinkNumPoles; i++ {
		for j := 0; j < pinkNumPoles; j++ {
			sum := 0.0
			for k := 0; k < pinkNumTargets; k++ {
				sum += br[k][i]*br[k][j] + bi[k][i]*bi[k][j]
			}
			btbData[i*pinkNumPoles+j] = sum
		}
	}
	btb = *mat.NewSymDense(pinkNumPoles, btbData)

	var btT mat.VecDense
	btT.Reset()

	for iter := 0; iter < iters; iter++ {
		var tr, ti [pinkNumTargets]float64
		for k := 0; k < pinkNumTargets; k++ {
			hr, hi := 0.0, 0.0
			for i := 0; i < pinkNumPoles; i++ {
				hr += g[i] * br[k][i]
				hi += g[i] * bi[k][i]
			}
			mag := math.Hypot(hr, hi)
			if mag > 1e-12 {
				scale := targetMag[k] / mag
				tr[k] = hr * scale
				ti[k] = hi * scale
			} else {
				tr[k] = targetMag[k]
				ti[k] = 0
			}
		}

		btTData := make([]float64, pinkNumPoles)
		for i := 0; i < pinkNumPoles; i++ {
			sum := 0.0
			for k := 0; k < pinkNumTargets; k++ {
				sum += br[k][i]*tr[k] + bi[k][i]*ti[k]
			}
			btTData[i] = sum
		}
		btT = *mat.NewVecDense(pinkNumPoles, btTData)

		var chol mat.Cholesky
		if ok := chol.Factorize(&btb); ok {
			var x mat.VecDense
			if err := chol.SolveVecTo(&x, &btT); err == nil {
				for i := 0; i < pinkNumPoles; i++ {
					g[i] = x.AtVec(i)
				}
			}
		}
	}
}

// NextFrame runs one sample of white noise through the parallel bank.
func (f *PinkFilter) NextFrame(white float32) float32 {
	var sum float32
	for i := range f.state {
		f.state[i] = f.a[i]*f.state[i] + f.g[i]*white
		sum += f.state[i]
	}
	return sum
}

// Clear zeroes the filter bank's state.
func (f *PinkFilter) Clear() {
	for i := range f.state {
		f.state[i] = 0
	}
}
