package tempolock

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dspkernel/blockdsp/internal/block"
)

func TestStoppedInputClearsAndEmitsZero(t *testing.T) {
	var tl TempoLock
	var x block.Signal
	for i := range x {
		x[i] = -1
	}
	out := tl.ProcessBlock(x, 1.0, 1.0/44100)
	var zero block.Signal
	require.Equal(t, zero, out, "stopped input should emit all zeros")
}

func TestTwoToOneLockSteadyStateErrorIsSmall(t *testing.T) {
	var tl TempoLock
	isr := float32(1.0 / 44100)
	inputCyclesPerSample := float32(110.0 / 44100)
	r := float32(2.0)

	var inputPhase float32
	var lastErr float32
	for blk := 0; blk < 200; blk++ {
		var x block.Signal
		for i := range x {
			inputPhase += inputCyclesPerSample
			if inputPhase >= 1 {
				inputPhase -= 1
			}
			x[i] = inputPhase
		}
		out := tl.ProcessBlock(x, r, isr)
		expected := float32(math.Mod(float64(x[block.FramesPerBlock-1]*r), 1.0))
		got := out[block.FramesPerBlock-1]
		diff := got - expected
		if diff > 0.5 {
			diff -= 1
		} else if diff < -0.5 {
			diff += 1
		}
		lastErr = diff
	}
	require.InDelta(t, 0, lastErr, 0.05, "steady-state phase error too large")
}
