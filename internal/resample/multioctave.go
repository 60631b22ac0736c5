package resample

import "github.com/dspkernel/blockdsp/internal/block"

// Downsampler cascades octaves Downsampler2x stages: write() accumulates
// two input blocks per lowest octave, running progressively higher octaves
// only once enough lower-octave blocks have accumulated, per the source's
// bit-counter schedule (§4.5).
type Downsampler struct {
	filters []Downsampler2x
	buffers []block.Signal
	octaves int
	counter uint32
}

// NewDownsampler builds a cascade of octaves halvings; octaves == 0 is a
// pass-through.
func NewDownsampler(octaves int) *Downsampler {
	d := &Downsampler{octaves: octaves}
	if octaves > 0 {
		d.filters = make([]Downsampler2x, octaves)
		d.buffers = make([]block.Signal, 2*octaves+1)
	} else {
		d.buffers = make([]block.Signal, 1)
	}
	return d
}

// Write feeds one input block and returns true exactly on the blocks
// where a new output block became available (read() reflects it).
func (d *Downsampler) Write(v block.Signal) bool {
	if d.octaves == 0 {
		d.buffers[0] = v
		return true
	}

	d.buffers[d.counter&1] = v

	mask := uint32(1)
	for h := 0; h < d.octaves; h++ {
		b0 := d.counter&mask != 0
		if !b0 {
			break
		}
		mask <<= 1
		b1 := d.counter & mask
		bit1 := 0
		if b1 != 0 {
			bit1 = 1
		}
		d.buffers[h*2+2+bit1] = d.filters[h].Process(d.buffers[h*2], d.buffers[h*2+1])
	}

	counterMask := uint32(1<<d.octaves) - 1
	d.counter = (d.counter + 1) & counterMask
	return d.counter == 0
}

// Read returns the most recently completed output block.
func (d *Downsampler) Read() block.Signal {
	return d.buffers[len(d.buffers)-1]
}

// Clear resets every stage, buffer, and the schedule counter.
func (d *Downsampler) Clear() {
	for i := range d.filters {
		d.filters[i].Clear()
	}
	for i := range d.buffers {
		block.Clear(&d.buffers[i])
	}
	d.counter = 0
}

// Upsampler cascades octaves Upsampler2x stages: write(x) places x and
// fans it out through each octave into 2^octaves output buffers, read
// back one at a time in order (§4.5).
type Upsampler struct {
	filters []Upsampler2x
	buffers []block.Signal
	octaves int
	readIdx int
}

// NewUpsampler builds a cascade of octaves doublings.
func NewUpsampler(octaves int) *Upsampler {
	u := &Upsampler{octaves: octaves}
	if octaves > 0 {
		u.filters = make([]Upsampler2x, octaves)
		u.buffers = make([]block.Signal, 1<<octaves)
	}
	return u
}

// Write fans x out through every octave; subsequent Read calls yield the
// 2^octaves output blocks in order.
func (u *Upsampler) Write(x block.Signal) {
	numBufs := 1 << u.octaves
	u.buffers[numBufs-1] = x

	for j := 0; j < u.octaves; j++ {
		sourceBufs := 1 << j
		destBufs := sourceBufs << 1
		srcStart := numBufs - sourceBufs
		destStart := numBufs - destBufs

		for i := 0; i < sourceBufs; i++ {
			first, second := u.filters[j].Process(u.buffers[srcStart+i])
			u.buffers[destStart+i*2] = first
			u.buffers[destStart+i*2+1] = second
		}
	}
	u.readIdx = 0
}

// Read returns the next output block in sequence.
func (u *Upsampler) Read() block.Signal {
	v := u.buffers[u.readIdx]
	u.readIdx++
	return v
}

// Clear resets every stage, buffer, and read cursor.
func (u *Upsampler) Clear() {
	for i := range u.filters {
		u.filters[i].Clear()
	}
	for i := range u.buffers {
		block.Clear(&u.buffers[i])
	}
	u.readIdx = 0
}
