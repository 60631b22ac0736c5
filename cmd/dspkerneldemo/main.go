// Command dspkerneldemo wires a minimal voice (noise generator through a
// state-variable lowpass gated by an ADSR envelope) to a real audio
// device via internal/host, demonstrating the full host-callback ->
// block-adapter -> process-function path (§6, §4.8).
package main

import (
	"log"
	"time"

	"github.com/dspkernel/blockdsp/internal/adapter"
	"github.com/dspkernel/blockdsp/internal/block"
	"github.com/dspkernel/blockdsp/internal/filter"
	"github.com/dspkernel/blockdsp/internal/gen"
	"github.com/dspkernel/blockdsp/internal/host"
)

const sampleRate = 44100

type voiceState struct {
	noise gen.NoiseGen
	lpf   filter.Lowpass
	env   gen.ADSR
}

func processVoice(ctx *adapter.AudioContext, state any) {
	vs := state.(*voiceState)
	gate := ctx.GetInputVoice(0).Row(adapter.RowGate)

	envOut := vs.env.ProcessBlock(gate, gen.ADSRCoeffs{
		DecayTarget:   0.6,
		ReleaseTarget: 0,
		AttackK:       0.3,
		DecayK:        0.1,
		ReleaseK:      0.02,
	})

	noise := vs.noise.ProcessBlock()
	coeffs := vs.lpf.MakeCoeffs(filter.SVFParams{Omega: 2000.0 / sampleRate, K: 0.7})
	vs.lpf.SetCoeffs(coeffs)
	filtered := filter.RunBlock[filter.SVFParams, filter.SVFCoeffs](&vs.lpf, noise)

	ctx.Outputs[0] = block.Saturate(block.Mul(filtered, envOut))
}

func main() {
	ctx := adapter.NewAudioContext(0, 1, 1, sampleRate)
	state := &voiceState{}
	state.env.SetAmp(1)

	a := adapter.NewBlockAdapter(1024, ctx, processVoice, state)

	backend, err := host.NewOtoBackend(sampleRate)
	if err != nil {
		log.Fatalf("open audio backend: %v", err)
	}
	defer backend.Close()

	type player interface {
		SetupPlayer(*adapter.BlockAdapter)
		Start()
		Stop()
	}
	if p, ok := any(backend).(player); ok {
		p.SetupPlayer(a)
		p.Start()
		defer p.Stop()
	}

	ctx.AddInputEvent(adapter.Event{Type: adapter.NoteOn, SourceIdx: 0, Time: 0, Value1: 220})
	time.Sleep(500 * time.Millisecond)
	ctx.AddInputEvent(adapter.Event{Type: adapter.NoteOff, SourceIdx: 0, Time: 0})
	time.Sleep(500 * time.Millisecond)
}
