package gen

import "github.com/dspkernel/blockdsp/internal/block"

// TickGen emits a single-sample 1.0 at each phase wrap of an internal
// phasor running at cyclesPerSample (§4.6).
type TickGen struct {
	omega float32
}

func (t *TickGen) Clear() { t.omega = 0 }

func (t *TickGen) ProcessBlock(cyclesPerSample block.Signal) block.Signal {
	var out block.Signal
	for i, step := range cyclesPerSample {
		t.omega += step
		if t.omega > 1 {
			t.omega -= 1
			out[i] = 1
		}
	}
	return out
}

// OneShotGen is a gated PhasorGen: trigger() starts a single 0-1 ramp that
// clears its gate the instant it wraps, holding output at 0 until
// re-triggered (§4.6).
type OneShotGen struct {
	omega32   uint32
	omegaPrev uint32
	gate      uint32
}

func (o *OneShotGen) Trigger() {
	o.omega32 = 0
	o.omegaPrev = 0
	o.gate = 1
}

func (o *OneShotGen) ProcessBlock(cyclesPerSample block.Signal) block.Signal {
	var out block.Signal
	for i, c := range cyclesPerSample {
		steps := uint32(roundFloat(c * stepsPerCycle))
		o.omega32 += steps * o.gate
		if o.omega32 < o.omegaPrev {
			o.gate = 0
			o.omega32 = 0
		}
		o.omegaPrev = o.omega32
		out[i] = float32(o.omega32) * cyclesPerStep
	}
	return out
}
