package adapter

import (
	"testing"

	"github.com/dspkernel/blockdsp/internal/block"
)

func passthroughFn(ctx *AudioContext, state any) {
	for c := range ctx.Outputs {
		if c < len(ctx.Inputs) {
			ctx.Outputs[c] = ctx.Inputs[c]
		}
	}
}

func TestBlockAdapterPassesSamplesThrough(t *testing.T) {
	ctx := NewAudioContext(1, 1, 1, 44100)
	a := NewBlockAdapter(512, ctx, passthroughFn, nil)

	in := make([]float32, 256)
	for i := range in {
		in[i] = float32(i)
	}
	out := make([]float32, 256)

	for i := 0; i < 8; i++ {
		a.Callback([][]float32{in}, [][]float32{out}, 256)
	}

	nonZero := false
	for _, v := range out {
		if v != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Fatal("expected some non-zero passthrough output after several callbacks")
	}
}

func gateCapturingFn(voiceGate *[]float32) ProcessFn {
	return func(ctx *AudioContext, state any) {
		v := ctx.GetInputVoice(0)
		row := v.Row(RowGate)
		*voiceGate = append(*voiceGate, row[:]...)
		for c := range ctx.Outputs {
			block.Clear(&ctx.Outputs[c])
		}
	}
}

func TestEventNotDroppedWithSmallHostBuffers(t *testing.T) {
	var captured []float32
	ctx := NewAudioContext(0, 1, 1, 44100)
	a := NewBlockAdapter(32, ctx, gateCapturingFn(&captured), nil)

	// A note-on enqueued with a small host buffer (F=16 < kFramesPerBlock)
	// may not cause any internal block to run this callback; it must
	// still be dispatched in a later callback rather than dropped.
	ctx.AddInputEvent(Event{Type: NoteOn, SourceIdx: 0, Time: 4, Value1: 440})

	out := make([]float32, 16)
	for i := 0; i < 20; i++ {
		a.Callback(nil, [][]float32{out}, 16)
	}

	sawGateHigh := false
	for _, v := range captured {
		if v == 1 {
			sawGateHigh = true
			break
		}
	}
	if !sawGateHigh {
		t.Fatal("note-on event was dropped: gate never went high")
	}
}
