// Package block implements the fixed-size sample-block data model that
// every other DSP package operates on: a Block is exactly FramesPerBlock
// samples. Go has no generic parameter over an array's length, so a
// multi-row BlockArray<N,T> is not a single shared generic type here —
// each caller spells out its own row count directly: a plain fixed-size
// Go array (e.g. [numVoiceRows]Signal in internal/adapter's Voice) where N is a
// compile-time constant, or a plain []Signal where the row count is only
// known at runtime (e.g. internal/resample's function wrappers, whose
// input/output row counts vary with the voice graph).
package block

import (
	"github.com/dspkernel/blockdsp/internal/mathx"
	"github.com/dspkernel/blockdsp/internal/simd"
)

// FramesPerBlock is the fixed block length every DSP object processes at
// once. It is chosen so SIMD lane width (4) divides it evenly.
const FramesPerBlock = 64

// SimdLanes is the width, in samples, of one SIMD vector operation.
const SimdLanes = 4

// SimdAlignBytes documents the alignment the source SIMD backend assumes.
// Go arrays carry no alignment guarantee beyond natural element alignment;
// internal/simd copies into an aligned Vec4 value instead of relying on it.
const SimdAlignBytes = 16

// Numeric is the set of element types a Block may hold.
type Numeric interface {
	~float32 | ~int32
}

// Block is one fixed-length row of samples, held by value so it copies and
// compares the way the teacher's aligned sample buffers do.
type Block[T Numeric] [FramesPerBlock]T

// Signal is a single-row block of float32 samples — the common case.
type Signal = Block[float32]

// IntSignal is a single-row block of int32 samples.
type IntSignal = Block[int32]

// Fill sets every sample in the block to v.
func Fill[T Numeric](b *Block[T], v T) {
	for i := range b {
		b[i] = v
	}
}

// Clear zeroes the block.
func Clear[T Numeric](b *Block[T]) {
	var zero T
	Fill(b, zero)
}

// Add returns the elementwise sum of a and b.
func Add[T Numeric](a, b Block[T]) Block[T] {
	var out Block[T]
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

// Sub returns the elementwise difference a - b.
func Sub[T Numeric](a, b Block[T]) Block[T] {
	var out Block[T]
	for i := range out {
		out[i] = a[i] - b[i]
	}
	return out
}

// Mul returns the elementwise product of a and b.
func Mul[T Numeric](a, b Block[T]) Block[T] {
	var out Block[T]
	for i := range out {
		out[i] = a[i] * b[i]
	}
	return out
}

// MulScalar scales every sample of a by s.
func MulScalar[T Numeric](a Block[T], s T) Block[T] {
	var out Block[T]
	for i := range out {
		out[i] = a[i] * s
	}
	return out
}

// Repeat builds a block where every sample equals v — the single-sample to
// block-rate lift used when a control-rate scalar feeds a signal-rate input.
func Repeat[T Numeric](v T) Block[T] {
	var out Block[T]
	Fill(&out, v)
	return out
}

// Saturate runs a fast tanh soft-clip across a signal block, four samples
// at a time via internal/simd.Vec4/internal/mathx.TanhApproxVec4 — the
// lane-parallel dispatch path the scalar fast-tier math also exposes,
// used here in place of a per-sample loop over the scalar TanhApprox.
func Saturate(x Signal) Signal {
	var out Signal
	for i := 0; i < FramesPerBlock; i += SimdLanes {
		v := simd.Load(x[:], i)
		mathx.TanhApproxVec4(v).Store(out[:], i)
	}
	return out
}

// Stretch copies the last sample of a shorter logical span into a full
// block's tail, mirroring the source's column-repeat used by stepped LFOs.
func Stretch[T Numeric](in []T) Block[T] {
	var out Block[T]
	if len(in) == 0 {
		return out
	}
	for i := range out {
		if i < len(in) {
			out[i] = in[i]
		} else {
			out[i] = in[len(in)-1]
		}
	}
	return out
}
