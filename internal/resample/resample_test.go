package resample

import (
	"testing"

	"github.com/dspkernel/blockdsp/internal/block"
)

func TestHalfBandUpsampleProducesOutput(t *testing.T) {
	var hb HalfBandFilter
	var in block.Signal
	for i := range in {
		in[i] = float32(i%7) - 3
	}

	var half HalfBlock
	copy(half[:], in[:HalfFramesPerBlock])
	up := hb.Upsample(half)

	var sum float64
	for _, v := range up {
		sum += float64(v * v)
	}
	if sum == 0 {
		t.Fatal("upsample produced all-zero output for nonzero input")
	}
}

func TestUpsampler2xDownsampler2xRoundTripPassesEnergy(t *testing.T) {
	var up Upsampler2x
	var down Downsampler2x

	var impulse block.Signal
	impulse[0] = 1.0

	first, second := up.Process(impulse)
	out := down.Process(first, second)

	var energy float64
	for _, v := range out {
		energy += float64(v * v)
	}
	if energy == 0 {
		t.Fatal("round trip through 2x up/downsampler produced no energy")
	}
}

func TestMultiOctaveDownsamplerReportsReadyOnSchedule(t *testing.T) {
	d := NewDownsampler(2)
	readyCount := 0
	for i := 0; i < 8; i++ {
		var blk block.Signal
		blk[0] = float32(i)
		if d.Write(blk) {
			readyCount++
		}
	}
	if readyCount != 2 {
		t.Fatalf("expected output ready every 4 writes for 2 octaves (2 of 8), got %d", readyCount)
	}
}

func TestMultiOctaveUpsamplerEmitsPowerOfTwoBlocks(t *testing.T) {
	u := NewUpsampler(2)
	var in block.Signal
	in[0] = 1.0
	u.Write(in)

	count := 0
	for i := 0; i < 4; i++ {
		u.Read()
		count++
	}
	if count != 4 {
		t.Fatalf("expected 2^2=4 output blocks, read %d", count)
	}
}

func TestDownsamplerZeroOctavesIsPassthrough(t *testing.T) {
	d := NewDownsampler(0)
	var in block.Signal
	in[5] = 3.0
	ready := d.Write(in)
	if !ready {
		t.Fatal("zero-octave downsampler should always report ready")
	}
	if d.Read() != in {
		t.Fatal("zero-octave downsampler should pass input through unchanged")
	}
}
