// Package resample implements the half-band polyphase allpass filter and
// the 2x/multi-octave up/downsamplers built on top of it (§4.5).
package resample

import (
	"github.com/dspkernel/blockdsp/internal/block"
	"github.com/dspkernel/blockdsp/internal/filter"
)

// HalfFramesPerBlock is the half-rate block length HalfBandFilter moves
// rate-changed data in.
const HalfFramesPerBlock = block.FramesPerBlock / 2

// HalfBlock is the half-length block rate-changed data is moved in.
type HalfBlock [HalfFramesPerBlock]float32

// HalfBandFilter is the order-4, ~70dB stopband, 0.1 transition-band
// polyphase allpass filter due to fred harris/Constantinides/Valenzuela,
// split across two branches of two cascaded first-order allpass sections
// each. Coefficients are transcribed exactly from the source (§4.5).
type HalfBandFilter struct {
	apa0, apa1 filter.Allpass1
	apb0, apb1 filter.Allpass1
	apa0c      filter.Allpass1Coeffs
	apa1c      filter.Allpass1Coeffs
	apb0c      filter.Allpass1Coeffs
	apb1c      filter.Allpass1Coeffs
	b1         float32
	init       bool
}

func (h *HalfBandFilter) ensureInit() {
	if h.init {
		return
	}
	h.apa0c = filter.Allpass1Coeffs{C: 0.07986642623635751}
	h.apa1c = filter.Allpass1Coeffs{C: 0.5453536510711322}
	h.apb0c = filter.Allpass1Coeffs{C: 0.28382934487410993}
	h.apb1c = filter.Allpass1Coeffs{C: 0.8344118914807379}
	h.init = true
}

// Upsample turns HalfFramesPerBlock input samples into FramesPerBlock
// output samples.
func (h *HalfBandFilter) Upsample(in HalfBlock) block.Signal {
	h.ensureInit()
	var out block.Signal
	i2 := 0
	for i := 0; i < HalfFramesPerBlock; i++ {
		out[i2] = h.apa1.NextFrame(h.apa0.NextFrame(in[i], h.apa0c), h.apa1c)
		i2++
		out[i2] = h.apb1.NextFrame(h.apb0.NextFrame(in[i], h.apb0c), h.apb1c)
		i2++
	}
	return out
}

// Downsample turns FramesPerBlock input samples into HalfFramesPerBlock
// output samples.
func (h *HalfBandFilter) Downsample(in block.Signal) HalfBlock {
	h.ensureInit()
	var out HalfBlock
	i2 := 0
	for i := 0; i < HalfFramesPerBlock; i++ {
		a0 := h.apa1.NextFrame(h.apa0.NextFrame(in[i2], h.apa0c), h.apa1c)
		b0 := h.apb1.NextFrame(h.apb0.NextFrame(in[i2+1], h.apb0c), h.apb1c)
		out[i] = (a0 + h.b1) * 0.5
		h.b1 = b0
		i2 += 2
	}
	return out
}

// Clear resets every allpass section and the cross-lag sample.
func (h *HalfBandFilter) Clear() {
	h.apa0.Clear()
	h.apa1.Clear()
	h.apb0.Clear()
	h.apb1.Clear()
	h.b1 = 0
}
