package resample

import "github.com/dspkernel/blockdsp/internal/block"

// Upsampler2x turns one block into two blocks at twice the rate, reading
// the input block as two half-blocks (§4.5).
type Upsampler2x struct {
	filter HalfBandFilter
}

func (u *Upsampler2x) Process(in block.Signal) (first, second block.Signal) {
	var h0, h1 HalfBlock
	copy(h0[:], in[:HalfFramesPerBlock])
	copy(h1[:], in[HalfFramesPerBlock:])
	return u.filter.Upsample(h0), u.filter.Upsample(h1)
}

func (u *Upsampler2x) Clear() { u.filter.Clear() }

// Downsampler2x turns two blocks into one block at half the rate.
type Downsampler2x struct {
	filter HalfBandFilter
}

func (d *Downsampler2x) Process(in1, in2 block.Signal) block.Signal {
	lo := d.filter.Downsample(in1)
	hi := d.filter.Downsample(in2)
	var out block.Signal
	copy(out[:HalfFramesPerBlock], lo[:])
	copy(out[HalfFramesPerBlock:], hi[:])
	return out
}

func (d *Downsampler2x) Clear() { d.filter.Clear() }
