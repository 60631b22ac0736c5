package delay

import "github.com/dspkernel/blockdsp/internal/block"

// Line is the minimal contract a delay implementation must satisfy to be
// wrapped by the generic scattering Allpass below — satisfied by both
// IntegerDelay and FractionalDelay.
type Line interface {
	SetMaxDelayInSamples(maxDelay int)
	SetDelayInSamples(d float32)
	ProcessBlock(in block.Signal) block.Signal
	Clear()
}

// Allpass composes any Line with a one-multiply scattering allpass
// (§4.4). The minimum delay time is one block, since the wrapped line is
// always given d-FramesPerBlock.
type Allpass[D Line] struct {
	Delay D
	Gain  float32
	y1    block.Signal
}

// SetDelayInSamples sets a constant delay time.
func (a *Allpass[D]) SetDelayInSamples(d float32) {
	a.Delay.SetDelayInSamples(d - block.FramesPerBlock)
}

// SetMaxDelayInSamples sizes the wrapped line.
func (a *Allpass[D]) SetMaxDelayInSamples(d float32) {
	a.Delay.SetMaxDelayInSamples(int(d) - block.FramesPerBlock)
}

// Clear resets the wrapped line and the scattering state.
func (a *Allpass[D]) Clear() {
	a.Delay.Clear()
	block.Clear(&a.y1)
}

// ProcessBlock runs the one-multiply scattering junction:
// delayInput = input - y1*(-gain); y = delayInput*(-gain) + y1; y1 = delay(delayInput).
func (a *Allpass[D]) ProcessBlock(in block.Signal) block.Signal {
	g := -a.Gain
	var delayInput, out block.Signal
	for i, x := range in {
		delayInput[i] = x - a.y1[i]*g
		out[i] = delayInput[i]*g + a.y1[i]
	}
	a.y1 = a.Delay.ProcessBlock(delayInput)
	return out
}
