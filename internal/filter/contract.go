// Package filter implements the uniform three-way block-invocation
// contract shared by every filter kernel (stored coefficients, per-block
// interpolated parameters, and signal-rate per-sample parameters), plus
// the concrete kernels: the state-variable family, one-pole, DC blocker,
// first-order allpass, and the pink-noise shaping filter.
package filter

import "github.com/dspkernel/blockdsp/internal/block"

// Lerpable is the constraint a filter's Coeffs type must satisfy so the
// per-block-interpolated invocation mode can blend between the stored
// and the next coefficient set one sample at a time.
type Lerpable[C any] interface {
	Lerp(to C, t float32) C
}

// Stage is the generic filter contract every kernel implements: a pure
// Params -> Coeffs function, a per-sample update over the current Coeffs,
// and the mutable Coeffs/State a filter instance owns.
type Stage[P any, C Lerpable[C]] interface {
	MakeCoeffs(p P) C
	NextFrame(x float32, c C) float32
	Coeffs() C
	SetCoeffs(c C)
	Clear()
}

// RunBlock is invocation mode 1: apply the stored Coeffs to every sample.
func RunBlock[P any, C Lerpable[C]](s Stage[P, C], in block.Signal) block.Signal {
	c := s.Coeffs()
	var out block.Signal
	for i, x := range in {
		out[i] = s.NextFrame(x, c)
	}
	return out
}

// RunBlockInterp is invocation mode 2: linearly interpolate from the
// stored Coeffs to MakeCoeffs(nextParams) across the block, then install
// nextCoeffs as the new stored value.
func RunBlockInterp[P any, C Lerpable[C]](s Stage[P, C], in block.Signal, nextParams P) block.Signal {
	from := s.Coeffs()
	to := s.MakeCoeffs(nextParams)

	var out block.Signal
	n := float32(block.FramesPerBlock)
	for i, x := range in {
		t := float32(i) / n
		out[i] = s.NextFrame(x, from.Lerp(to, t))
	}
	s.SetCoeffs(to)
	return out
}

// RunBlockSignalRate is invocation mode 3: recompute Coeffs every sample
// from a per-sample Params value.
func RunBlockSignalRate[P any, C Lerpable[C]](s Stage[P, C], in block.Signal, params [block.FramesPerBlock]P) block.Signal {
	var out block.Signal
	for i, x := range in {
		out[i] = s.NextFrame(x, s.MakeCoeffs(params[i]))
	}
	return out
}
