package delay

import "github.com/dspkernel/blockdsp/internal/block"

// FadePeriod is the crossfade cycle length in samples — a power of two no
// greater than FramesPerBlock (§4.4).
const FadePeriod = 32

func fadeRamp(n int) int { return n % FadePeriod }

// delay1Ticks is true at the sample where delay1's crossfade weight is at
// zero (fade is at its peak), so retargeting delay1 there is inaudible.
func delay1Ticks(n int) bool { return fadeRamp(n) == FadePeriod/2 }

// delay2Ticks is true at the sample where delay2's weight is at zero.
func delay2Ticks(n int) bool { return fadeRamp(n) == 0 }

// fadeFn is the 0-1-0 triangle, one full cycle every FadePeriod samples.
func fadeFn(n int) float32 {
	r := fadeRamp(n)
	if r > FadePeriod/2 {
		return 2 * (1 - float32(r)/FadePeriod)
	}
	return 2 * float32(r) / FadePeriod
}

// PitchbendableDelay crossfades two FractionalDelays so the delay time can
// be modulated continuously without clicks (§4.4). Delay 1's time is 0 at
// construction, so output during the first half fade period is attenuated
// — replicated here exactly as the source's own warmup caveat describes.
type PitchbendableDelay struct {
	d1, d2 FractionalDelay
	n      int // running per-sample index for the fade cycle
}

// SetMaxDelayInSamples sizes both underlying fractional delays.
func (p *PitchbendableDelay) SetMaxDelayInSamples(maxDelay int) {
	p.d1.SetMaxDelayInSamples(maxDelay)
	p.d2.SetMaxDelayInSamples(maxDelay)
}

// Clear resets both delay lines and the fade cycle position.
func (p *PitchbendableDelay) Clear() {
	p.d1.Clear()
	p.d2.Clear()
	p.n = 0
}

// ProcessBlock runs the crossfaded pair against a per-sample delay-time
// block, retargeting each delay line only at its own silent instant.
func (p *PitchbendableDelay) ProcessBlock(in block.Signal, delayInSamples block.Signal) block.Signal {
	var out block.Signal
	for i, x := range in {
		n := p.n
		if delay1Ticks(n) {
			p.d1.SetDelayInSamples(delayInSamples[i])
		}
		if delay2Ticks(n) {
			p.d2.SetDelayInSamples(delayInSamples[i])
		}

		y1 := p.d1.Step(x)
		y2 := p.d2.Step(x)
		fade := fadeFn(n)
		out[i] = y1 + (y2-y1)*fade

		p.n++
	}
	return out
}
