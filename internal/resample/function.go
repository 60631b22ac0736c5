package resample

import "github.com/dspkernel/blockdsp/internal/block"

// ProcessFn processes a fixed-arity row of signal blocks into one output
// block, the shape Upsample2xFunction/Downsample2xFunction wrap.
type ProcessFn func(rows []block.Signal) block.Signal

// Upsample2xFunction runs fn internally at 2x the external rate: each
// external call upsamples every input row, runs fn twice, and downsamples
// the result back to one output block. Total added latency is about 3
// samples, the allpass interpolation's group delay (§4.5).
type Upsample2xFunction struct {
	uppers []Upsampler2x
	downer Downsampler2x
	inRows int
}

// NewUpsample2xFunction allocates the per-row upsamplers for inRows input
// channels.
func NewUpsample2xFunction(inRows int) *Upsample2xFunction {
	return &Upsample2xFunction{uppers: make([]Upsampler2x, inRows), inRows: inRows}
}

func (f *Upsample2xFunction) Process(fn ProcessFn, vx []block.Signal) block.Signal {
	up1 := make([]block.Signal, f.inRows)
	up2 := make([]block.Signal, f.inRows)
	for j := 0; j < f.inRows; j++ {
		first, second := f.uppers[j].Process(vx[j])
		up1[j] = first
		up2[j] = second
	}
	out1 := fn(up1)
	out2 := fn(up2)
	return f.downer.Process(out1, out2)
}

func (f *Upsample2xFunction) Clear() {
	for i := range f.uppers {
		f.uppers[i].Clear()
	}
	f.downer.Clear()
}

// Downsample2xFunction runs fn internally at half the external rate:
// every other call combines the current and previous input block into one
// downsampled block, runs fn once, and upsamples the result, emitting one
// of the two output blocks immediately and holding the other for the next
// call. Adds a full block of latency in addition to the allpass group
// delay (about 6 samples, §4.5).
type Downsample2xFunction struct {
	downers      []Downsampler2x
	upper        Upsampler2x
	inputBuffer  []block.Signal
	outputBuffer block.Signal
	inRows       int
	phase        bool
}

// NewDownsample2xFunction allocates the per-row downsamplers for inRows
// input channels.
func NewDownsample2xFunction(inRows int) *Downsample2xFunction {
	return &Downsample2xFunction{
		downers:     make([]Downsampler2x, inRows),
		inputBuffer: make([]block.Signal, inRows),
		inRows:      inRows,
	}
}

func (f *Downsample2xFunction) Process(fn ProcessFn, vx []block.Signal) block.Signal {
	var vy block.Signal
	if f.phase {
		downsampled := make([]block.Signal, f.inRows)
		for j := 0; j < f.inRows; j++ {
			downsampled[j] = f.downers[j].Process(f.inputBuffer[j], vx[j])
		}
		out := fn(downsampled)
		first, second := f.upper.Process(out)
		vy = first
		f.outputBuffer = second
	} else {
		copy(f.inputBuffer, vx)
		vy = f.outputBuffer
	}
	f.phase = !f.phase
	return vy
}

func (f *Downsample2xFunction) Clear() {
	for i := range f.downers {
		f.downers[i].Clear()
	}
	f.upper.Clear()
	f.phase = false
}
