package delay

import (
	"math"

	"github.com/dspkernel/blockdsp/internal/block"
	"github.com/dspkernel/blockdsp/internal/filter"
)

// FractionalDelay composes an IntegerDelay with a first-order allpass to
// interpolate between integer sample positions (§4.4).
type FractionalDelay struct {
	integer IntegerDelay
	allpass filter.Allpass1
	coeffs  filter.Allpass1Coeffs
}

// SetMaxDelayInSamples sizes the underlying ring buffer.
func (f *FractionalDelay) SetMaxDelayInSamples(maxDelay int) {
	f.integer.SetMaxDelayInSamples(maxDelay)
}

// Clear resets both the ring buffer and the allpass state.
func (f *FractionalDelay) Clear() {
	f.integer.Clear()
	f.allpass.Clear()
}

// decompose splits d into (intPart, fracPart), borrowing one integer
// sample when the fraction would otherwise sit below the allpass's
// well-conditioned range (§4.4).
func decompose(d float32) (intPart int, fracPart float32) {
	ip := math.Floor(float64(d))
	fp := d - float32(ip)
	intPart = int(ip)
	fracPart = fp
	if fracPart < 0.618 && intPart > 0 {
		fracPart += 1
		intPart -= 1
	}
	return
}

// SetDelayInSamples installs the decomposed integer delay and allpass
// coefficient for a constant delay time.
func (f *FractionalDelay) SetDelayInSamples(d float32) {
	intPart, fracPart := decompose(d)
	f.integer.SetDelayInSamples(float32(intPart))
	f.coeffs = f.allpass.MakeCoeffs(filter.Allpass1Params{D: fracPart})
}

// ProcessBlock runs allpass1(integerDelay(input)) with the currently
// installed delay time.
func (f *FractionalDelay) ProcessBlock(in block.Signal) block.Signal {
	delayed := f.integer.ProcessBlock(in)
	var out block.Signal
	for i, x := range delayed {
		out[i] = f.allpass.NextFrame(x, f.coeffs)
	}
	return out
}

// Step runs one sample through the per-sample cursor (integer.Step),
// matching the ring buffer's current delay and allpass coefficient. Use
// alongside SetDelayInSamples for the ticked, per-sample-retargeted mode
// PitchbendableDelay relies on; do not mix with ProcessBlock.
func (f *FractionalDelay) Step(x float32) float32 {
	delayed := f.integer.Step(x)
	return f.allpass.NextFrame(delayed, f.coeffs)
}

// ProcessBlockTicked behaves like ProcessBlock but only updates the delay
// time to newDelay when ticks is non-zero at sample 0 of the block — the
// variant described in §4.4 ("a variant changes d only when a companion
// ticks signal is non-zero at that sample").
func (f *FractionalDelay) ProcessBlockTicked(in block.Signal, newDelay float32, ticks block.Signal) block.Signal {
	if ticks[0] != 0 {
		f.SetDelayInSamples(newDelay)
	}
	return f.ProcessBlock(in)
}
