// Package gen implements the block-rate generators and envelopes: phasor,
// antialiased sine/pulse/saw, tick, one-shot ramp, noise, linear glide,
// ADSR, and the ring-modulation generator SPEC_FULL.md adds beyond the
// distilled waveform set.
package gen

import "github.com/dspkernel/blockdsp/internal/block"

const (
	stepsPerCycle = 4294967296.0 // 2^32
	cyclesPerStep = 1.0 / stepsPerCycle
)

// PhasorGen accumulates a 32-bit phase at cyclesPerSample*2^32 per sample,
// outputting phase/2^32 in [0,1) (§4.6).
type PhasorGen struct {
	omega32 uint32
}

// Clear resets the phase accumulator, optionally to a specific starting
// value (SineGen uses this to start at the sine approximation's zero
// crossing instead of 0).
func (p *PhasorGen) Clear(omega ...uint32) {
	if len(omega) > 0 {
		p.omega32 = omega[0]
		return
	}
	p.omega32 = 0
}

// ProcessBlock accumulates phase for one block of cyclesPerSample values.
func (p *PhasorGen) ProcessBlock(cyclesPerSample block.Signal) block.Signal {
	var out block.Signal
	for i, c := range cyclesPerSample {
		steps := uint32(roundFloat(c * stepsPerCycle))
		p.omega32 += steps
		// Drop the low 8 bits so the float32 conversion is exact and the
		// result stays below 1.
		out[i] = float32(p.omega32>>8) * (1.0 / (1 << 24))
	}
	return out
}

// NextSample accumulates phase for a single sample.
func (p *PhasorGen) NextSample(cyclesPerSample float32) float32 {
	steps := uint32(roundFloat(cyclesPerSample * stepsPerCycle))
	p.omega32 += steps
	return float32(p.omega32>>8) * (1.0 / (1 << 24))
}

func roundFloat(f float32) float32 {
	if f >= 0 {
		return float32(int64(f + 0.5))
	}
	return float32(int64(f - 0.5))
}
