package delay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dspkernel/blockdsp/internal/block"
)

func TestIntegerDelayOutputsInputDelayed(t *testing.T) {
	var d IntegerDelay
	d.SetMaxDelayInSamples(256)
	d.SetDelayInSamples(128)

	var history []float32
	var lastOut block.Signal
	for blk := 0; blk < 5; blk++ {
		var in block.Signal
		for i := range in {
			in[i] = float32(blk*block.FramesPerBlock + i + 1)
		}
		history = append(history, in[:]...)
		lastOut = d.ProcessBlock(in)
	}

	total := len(history)
	for i, v := range lastOut {
		srcIdx := total - block.FramesPerBlock + i - 128
		if srcIdx < 0 {
			continue
		}
		want := history[srcIdx]
		require.Equal(t, want, v, "sample %d (history[%d])", i, srcIdx)
	}
}

func TestFractionalDelayDecomposeBorrow(t *testing.T) {
	intPart, fracPart := decompose(1.2)
	require.Equal(t, 0, intPart)
	require.InDelta(t, 1.2, float64(fracPart), 1e-6)

	intPart2, fracPart2 := decompose(5.7)
	require.Equal(t, 5, intPart2)
	require.InDelta(t, 0.7, float64(fracPart2), 1e-6)
}

func TestPitchbendableDelayStabilizesAfterWarmup(t *testing.T) {
	var pd PitchbendableDelay
	pd.SetMaxDelayInSamples(512)

	in := block.Repeat[float32](1.0)
	delays := block.Repeat[float32](200)

	var out block.Signal
	for blk := 0; blk < 16; blk++ {
		out = pd.ProcessBlock(in, delays)
	}

	for i, v := range out {
		require.False(t, math.IsNaN(float64(v)) || math.IsInf(float64(v), 0), "sample %d is non-finite: %v", i, v)
		require.LessOrEqual(t, math.Abs(float64(v)), 2.0, "sample %d expected bounded near the unit input after warmup", i)
	}
}

func TestAllpassPreservesEnergyRoughly(t *testing.T) {
	var ap Allpass[*IntegerDelay]
	ap.Delay = &IntegerDelay{}
	ap.SetMaxDelayInSamples(256)
	ap.SetDelayInSamples(128)
	ap.Gain = 0.5

	var energyIn, energyOut float64
	for blk := 0; blk < 128; blk++ {
		var in block.Signal
		for i := range in {
			in[i] = float32(math.Sin(float64(blk*block.FramesPerBlock+i) * 0.1))
		}
		out := ap.ProcessBlock(in)
		for i := range in {
			energyIn += float64(in[i] * in[i])
			energyOut += float64(out[i] * out[i])
		}
	}
	ratio := energyOut / energyIn
	require.GreaterOrEqual(t, ratio, 0.5)
	require.LessOrEqual(t, ratio, 2.0)
}

func TestFDNImpulseDecaysMonotonically(t *testing.T) {
	fdn := NewFDN(4)
	fdn.SetDelaysInSamples([]float32{67, 73, 91, 103})
	fdn.SetCutoffs([]float32{0.1, 0.2, 0.3, 0.4})
	fdn.FeedbackGains = []float32{0.5, 0.5, 0.5, 0.5}

	var impulse block.Signal
	impulse[0] = 1.0

	var energies []float64
	for blk := 0; blk < 32; blk++ {
		var in block.Signal
		if blk == 0 {
			in = impulse
		}
		l, r := fdn.ProcessBlock(in)
		var e float64
		for i := range l {
			e += float64(l[i]*l[i] + r[i]*r[i])
		}
		energies = append(energies, e)
	}

	// After the initial build-up, energy falls block by block from the peak
	// onward, and the last block has less energy than the peak.
	peak, peakIdx := 0.0, 0
	for i, e := range energies {
		if e > peak {
			peak, peakIdx = e, i
		}
	}
	for i := peakIdx + 1; i < len(energies); i++ {
		require.LessOrEqual(t, energies[i], energies[i-1], "energy rose at block %d", i)
	}
	require.Less(t, energies[len(energies)-1], peak, "last block energy did not decay below peak")
}
