// Package tempolock implements the PLL-like phasor-locking filter that
// locks an output phasor to an input phasor at rational tempo ratios
// (§4.7).
package tempolock

import (
	"math"

	"github.com/dspkernel/blockdsp/internal/block"
)

// lockDist is how close r (or 1/r) must be to an integer to engage lock.
const lockDist = 1e-3

// TempoLock tracks an output phasor locked to an input phasor at ratio r,
// correcting drift without ever reversing or exceeding 2x speed.
type TempoLock struct {
	running bool
	prevX0  float32
	phase   float32
}

// Clear resets the lock to its stopped state.
func (t *TempoLock) Clear() {
	t.running = false
	t.prevX0 = 0
	t.phase = 0
}

func wrap01(x float32) float32 {
	x -= float32(math.Floor(float64(x)))
	if x < 0 {
		x += 1
	}
	return x
}

func nearInteger(v float32) bool {
	frac := v - float32(math.Round(float64(v)))
	return float32(math.Abs(float64(frac))) < lockDist
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ProcessBlock advances the locked output phasor for one block given the
// input phasor x, the output/input ratio r, and the inverse sample rate.
func (t *TempoLock) ProcessBlock(x block.Signal, r, isr float32) block.Signal {
	var out block.Signal

	if x[0] == -1 {
		t.Clear()
		return out
	}

	var dxdt float32
	if !t.running {
		t.phase = float32(math.Mod(float64(x[0]*r), 1.0))
		dxdt = x[1] - x[0]
		t.running = true
	} else {
		dxdt = x[0] - t.prevX0
		if dxdt < 0 {
			dxdt += 1
		}
		dxdt /= float32(block.FramesPerBlock)
	}
	t.prevX0 = x[0]

	dydt := dxdt * r

	if nearInteger(r) || nearInteger(1/r) {
		var e float32
		if r >= 1 {
			e = t.phase - x[0]*r
		} else {
			e = t.phase/r - x[0]
		}
		errorDiff := float32(math.Round(float64(e))) - e
		correction := clampf(errorDiff*isr*4, -dydt*0.5, dydt)
		dydt += correction
	}

	for i := range out {
		t.phase = wrap01(t.phase + dydt)
		out[i] = t.phase
	}
	return out
}
