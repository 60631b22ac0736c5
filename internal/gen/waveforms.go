package gen

import "github.com/dspkernel/blockdsp/internal/block"

const sqrt2 = 1.4142135623730951

// polyBLEP returns a band-limited step correction sized to the
// oscillator's normalised frequency dt, evaluated at phase t (§4.6).
func polyBLEP(phase, freq block.Signal) block.Signal {
	var out block.Signal
	for n, t := range phase {
		dt := freq[n]
		switch {
		case t < dt:
			tt := t / dt
			out[n] = tt + tt - tt*tt - 1
		case t > 1-dt:
			tt := (t - 1) / dt
			out[n] = tt*tt + tt + tt + 1
		}
	}
	return out
}

// phasorToSine approximates sin(2*pi*(phasor-0.25)), i.e. -cos(2*pi*phasor),
// via a Taylor series evaluated
// on the triangle wave derived from the phasor, with odd-harmonic
// distortion only (3rd harmonic around -40dB, §4.6).
func phasorToSine(phasor block.Signal) block.Signal {
	const (
		domain     = float32(sqrt2 * 4)
		domainOff  = float32(-sqrt2)
		flipOffset = float32(sqrt2 * 2)
		oneSixth   = float32(1.0 / 6.0)
	)
	rangeScale := float32(1.0 / (sqrt2 - sqrt2*sqrt2*sqrt2/6))

	var out block.Signal
	for i, p := range phasor {
		omega := p*domain + domainOff
		var triangle float32
		if omega > sqrt2 {
			triangle = flipOffset - omega
		} else {
			triangle = omega
		}
		out[i] = rangeScale * triangle * (1 - triangle*triangle*oneSixth)
	}
	return out
}

// phasorToPulse returns an antialiased pulse at the given width in (0,1).
func phasorToPulse(phasor, freq, width block.Signal) block.Signal {
	var pulse block.Signal
	for i, omega := range phasor {
		if omega >= width[i] {
			pulse[i] = 1
		} else {
			pulse[i] = -1
		}
	}
	pulse = block.Add(pulse, polyBLEP(phasor, freq))

	var down block.Signal
	for i, omega := range phasor {
		d := omega - width[i] + 1
		down[i] = d - float32(int(d))
	}
	return block.Sub(pulse, polyBLEP(down, freq))
}

// phasorToSaw returns an antialiased sawtooth on (-1,1).
func phasorToSaw(phasor, freq block.Signal) block.Signal {
	var saw block.Signal
	for i, omega := range phasor {
		saw[i] = omega*2 - 1
	}
	return block.Sub(saw, polyBLEP(phasor, freq))
}

// zeroPhaseForSine starts SineGen's phasor at its sine approximation's
// zero crossing instead of the sawtooth's own zero, matching the source's
// kZeroPhase = -(2<<29) offset (phase 0.75) so the first output sample is
// continuous at 0.
const zeroPhaseForSine = uint32(3) << 30

// SineGen is a phasor post-processed into an antialiased sine approximation.
type SineGen struct {
	phasor PhasorGen
}

func (g *SineGen) Clear() { g.phasor.Clear(zeroPhaseForSine) }

func (g *SineGen) ProcessBlock(freq block.Signal) block.Signal {
	return phasorToSine(g.phasor.ProcessBlock(freq))
}

// PulseGen is a phasor post-processed into an antialiased pulse.
type PulseGen struct {
	phasor PhasorGen
}

func (g *PulseGen) Clear() { g.phasor.Clear(0) }

func (g *PulseGen) ProcessBlock(freq, width block.Signal) block.Signal {
	phase := g.phasor.ProcessBlock(freq)
	return phasorToPulse(phase, freq, width)
}

// SawGen is a phasor post-processed into an antialiased sawtooth.
type SawGen struct {
	phasor PhasorGen
}

func (g *SawGen) Clear() { g.phasor.Clear(0) }

func (g *SawGen) ProcessBlock(freq block.Signal) block.Signal {
	phase := g.phasor.ProcessBlock(freq)
	return phasorToSaw(phase, freq)
}
