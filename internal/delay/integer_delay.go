// Package delay implements the delay-line infrastructure: the integer
// power-of-two ring buffer, the allpass-interpolated fractional delay, the
// crossfading pitchbendable delay, a generic one-multiply scattering
// allpass wrapper, and the Householder feedback-delay-network reverb.
package delay

import "github.com/dspkernel/blockdsp/internal/block"

// IntegerDelay is a power-of-two ring buffer delay. Its mask guarantees
// every read is in range regardless of the requested delay, so the only
// caller responsibility is staying within the allocated maximum (§4.4,
// §7 "programmer errors... unchecked on the audio path").
type IntegerDelay struct {
	buf        []float32
	mask       uint32
	writeIndex uint32
	delay      uint32
}

// SetMaxDelayInSamples allocates a buffer sized to the next power of two
// at least maxDelay+FramesPerBlock and clears it.
func (d *IntegerDelay) SetMaxDelayInSamples(maxDelay int) {
	size := nextPowerOfTwo(uint32(maxDelay + block.FramesPerBlock))
	d.buf = make([]float32, size)
	d.mask = size - 1
	d.writeIndex = 0
	d.delay = 0
}

// SetDelayInSamples sets the constant integer delay used by ProcessBlock.
func (d *IntegerDelay) SetDelayInSamples(delay float32) {
	d.delay = uint32(delay)
}

// Clear zeroes the ring buffer and resets the write cursor.
func (d *IntegerDelay) Clear() {
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.writeIndex = 0
}

// ProcessBlock writes in at the write cursor and reads back delay samples
// behind it, advancing the cursor by one block.
func (d *IntegerDelay) ProcessBlock(in block.Signal) block.Signal {
	var out block.Signal
	for i, x := range in {
		d.buf[(d.writeIndex+uint32(i))&d.mask] = x
	}
	readStart := (d.writeIndex - d.delay) & d.mask
	for i := range out {
		out[i] = d.buf[(readStart+uint32(i))&d.mask]
	}
	d.writeIndex = (d.writeIndex + block.FramesPerBlock) & d.mask
	return out
}

// ProcessBlockSignalRate reads a per-sample delay, updating the delay on
// every sample instead of holding it fixed for the whole block.
func (d *IntegerDelay) ProcessBlockSignalRate(in block.Signal, delays [block.FramesPerBlock]int) block.Signal {
	var out block.Signal
	for i, x := range in {
		d.buf[(d.writeIndex+uint32(i))&d.mask] = x
	}
	for i := range out {
		readIdx := (d.writeIndex + uint32(i) - uint32(delays[i])) & d.mask
		out[i] = d.buf[readIdx]
	}
	d.writeIndex = (d.writeIndex + block.FramesPerBlock) & d.mask
	return out
}

// Step runs one sample through the delay using the continuous per-sample
// cursor: write then read back d.delay samples. Do not mix calls to Step
// with calls to ProcessBlock on the same instance.
func (d *IntegerDelay) Step(x float32) float32 {
	d.buf[d.writeIndex&d.mask] = x
	out := d.buf[(d.writeIndex-d.delay)&d.mask]
	d.writeIndex++
	return out
}

// ReadBlockAt returns FramesPerBlock samples read delay samples behind
// the current write cursor, without writing or advancing — the decoupled
// read half the FDN needs so it can compute this block's feedback from
// last block's read before writing it.
func (d *IntegerDelay) ReadBlockAt(delay uint32) block.Signal {
	var out block.Signal
	readStart := (d.writeIndex - delay) & d.mask
	for i := range out {
		out[i] = d.buf[(readStart+uint32(i))&d.mask]
	}
	return out
}

// WriteBlockAdvance writes in at the write cursor and advances it by one
// block, the decoupled write half paired with ReadBlockAt.
func (d *IntegerDelay) WriteBlockAdvance(in block.Signal) {
	for i, x := range in {
		d.buf[(d.writeIndex+uint32(i))&d.mask] = x
	}
	d.writeIndex = (d.writeIndex + block.FramesPerBlock) & d.mask
}

func nextPowerOfTwo(v uint32) uint32 {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v++
	return v
}
