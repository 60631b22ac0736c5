package adapter

import (
	"github.com/dspkernel/blockdsp/internal/block"
	"github.com/dspkernel/blockdsp/internal/ring"
)

// BlockAdapter bridges a host callback with an arbitrary frame count F to
// the fixed kFramesPerBlock core, owning one ring buffer per input and
// output channel sized for at least maxFrames (§4.8).
type BlockAdapter struct {
	maxFrames   int
	inputRings  []*ring.FloatRing
	outputRings []*ring.FloatRing

	ctx                *AudioContext
	fn                 ProcessFn
	state              any
	samplesAccumulated int
	startOffset        int
}

// NewBlockAdapter allocates ring buffers sized for maxFrames plus a
// generous margin of internal blocks, wired to ctx and fn.
func NewBlockAdapter(maxFrames int, ctx *AudioContext, fn ProcessFn, state any) *BlockAdapter {
	ringCapacity := maxFrames + 4*block.FramesPerBlock
	inputRings := make([]*ring.FloatRing, len(ctx.Inputs))
	for i := range inputRings {
		inputRings[i] = ring.NewFloatRing(ringCapacity)
	}
	outputRings := make([]*ring.FloatRing, len(ctx.Outputs))
	for i := range outputRings {
		outputRings[i] = ring.NewFloatRing(ringCapacity)
	}
	return &BlockAdapter{
		maxFrames:   maxFrames,
		inputRings:  inputRings,
		outputRings: outputRings,
		ctx:         ctx,
		fn:          fn,
		state:       state,
	}
}

// Callback runs one host-buffer-sized step of the adapter loop (§4.8).
// inputs[c] may be nil for an absent channel; outputs[c] must be sized F
// for every declared output channel.
func (a *BlockAdapter) Callback(inputs [][]float32, outputs [][]float32, f int) {
	for c, in := range inputs {
		if in != nil {
			a.inputRings[c].Write(in[:f])
		}
	}
	a.samplesAccumulated += f

	ranAny := false
	for len(a.outputRings) == 0 || a.outputRings[0].Available() < f {
		for c := range a.ctx.Inputs {
			var blk block.Signal
			a.inputRings[c].Read(blk[:])
			a.ctx.Inputs[c] = blk
		}

		a.ctx.ProcessVector(a.startOffset)
		a.startOffset += block.FramesPerBlock

		a.fn(a.ctx, a.state)

		for c := range a.ctx.Outputs {
			a.outputRings[c].Write(a.ctx.Outputs[c][:])
		}
		ranAny = true

		if len(a.outputRings) == 0 {
			break
		}
	}

	for c, out := range outputs {
		a.outputRings[c].Read(out[:f])
	}

	if ranAny {
		a.ctx.ClearInputEvents()
		a.samplesAccumulated -= a.startOffset
		a.startOffset = 0
	}

	a.ctx.SetInputEventTimeOffset(a.samplesAccumulated)
}
