package delay

import (
	"github.com/dspkernel/blockdsp/internal/block"
	"github.com/dspkernel/blockdsp/internal/filter"
)

// FDN is a feedback delay network with a Householder feedback matrix
// M = I - (2/N)*11^T (§4.4). Its N delay lines each feed through a lossy
// one-pole before being scaled by a per-row feedback gain and mixed back
// with the input.
type FDN struct {
	Delays         []IntegerDelay
	onePoles       []filter.OnePole
	onePoleCoeffs  []filter.OnePoleCoeffs
	FeedbackGains  []float32
}

// NewFDN builds an N-line network; call SetDelaysInSamples and
// SetCutoffs before processing.
func NewFDN(n int) *FDN {
	return &FDN{
		Delays:        make([]IntegerDelay, n),
		onePoles:      make([]filter.OnePole, n),
		onePoleCoeffs: make([]filter.OnePoleCoeffs, n),
		FeedbackGains: make([]float32, n),
	}
}

// SetDelaysInSamples sizes and configures each line's constant delay time.
func (f *FDN) SetDelaysInSamples(delays []float32) {
	for i, d := range delays {
		f.Delays[i].SetMaxDelayInSamples(int(d))
		f.Delays[i].SetDelayInSamples(d)
	}
}

// SetCutoffs installs each line's lossy one-pole cutoff (normalised omega).
func (f *FDN) SetCutoffs(omegas []float32) {
	for i, omega := range omegas {
		f.onePoleCoeffs[i] = f.onePoles[i].MakeCoeffs(filter.OnePoleParams{Omega: omega})
	}
}

// Clear resets every line and filter.
func (f *FDN) Clear() {
	for i := range f.Delays {
		f.Delays[i].Clear()
		f.onePoles[i].Clear()
	}
}

// ProcessBlock runs one block through the network and returns the stereo
// mix described in §4.4: (sum of odd-indexed lines, sum of even-indexed
// lines). This hard-coded parity mix is flagged by the source itself as a
// TODO to generalize; a general multi-channel mix is out of scope here too.
func (f *FDN) ProcessBlock(in block.Signal) (left, right block.Signal) {
	n := len(f.Delays)
	delayOut := make([]block.Signal, n)
	for i := range f.Delays {
		delayOut[i] = f.Delays[i].ReadBlockAt(f.Delays[i].delay)
	}

	var sumOfDelays block.Signal
	for s := 0; s < block.FramesPerBlock; s++ {
		var sum float32
		for i := 0; i < n; i++ {
			sum += delayOut[i][s]
		}
		sumOfDelays[s] = sum
	}
	scale := float32(2.0 / float64(n))

	for i := 0; i < n; i++ {
		var mixed block.Signal
		for s := 0; s < block.FramesPerBlock; s++ {
			mixed[s] = delayOut[i][s] - sumOfDelays[s]*scale
		}

		var filtered block.Signal
		for s, x := range mixed {
			filtered[s] = f.onePoles[i].NextFrame(x, f.onePoleCoeffs[i])
		}

		var feedback block.Signal
		for s := range feedback {
			feedback[s] = filtered[s]*f.FeedbackGains[i] + in[s]
		}
		f.Delays[i].WriteBlockAdvance(feedback)
	}

	for i := 0; i < n; i++ {
		if i%2 == 0 {
			right = block.Add(right, delayOut[i])
		} else {
			left = block.Add(left, delayOut[i])
		}
	}
	return left, right
}
