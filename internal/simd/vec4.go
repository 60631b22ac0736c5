// Package simd exposes a four-lane vector operator set, the portable
// equivalent of the SSE4.1/NEON-dispatched backend in the source this
// kernel is derived from. The dispatch is collapsed to one pure-Go
// implementation here rather than split per architecture;
// internal/block and internal/mathx consume it without branching on
// architecture.
package simd

// Vec4 holds four float32 lanes, the unit of work for the block-level
// SIMD operators in internal/block and internal/mathx.
type Vec4 [4]float32

// IVec4 holds four int32 lanes.
type IVec4 [4]int32

// Load copies 4 consecutive samples starting at off into a Vec4.
func Load(b []float32, off int) Vec4 {
	var v Vec4
	copy(v[:], b[off:off+4])
	return v
}

// Store writes v back into b at off.
func (v Vec4) Store(b []float32, off int) {
	copy(b[off:off+4], v[:])
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{v[0] * o[0], v[1] * o[1], v[2] * o[2], v[3] * o[3]}
}

func (v Vec4) Div(o Vec4) Vec4 {
	return Vec4{v[0] / o[0], v[1] / o[1], v[2] / o[2], v[3] / o[3]}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Min/Max are lanewise, not horizontal — see HMin/HMax for reductions.
func (v Vec4) Min(o Vec4) Vec4 {
	var out Vec4
	for i := range v {
		if v[i] < o[i] {
			out[i] = v[i]
		} else {
			out[i] = o[i]
		}
	}
	return out
}

func (v Vec4) Max(o Vec4) Vec4 {
	var out Vec4
	for i := range v {
		if v[i] > o[i] {
			out[i] = v[i]
		} else {
			out[i] = o[i]
		}
	}
	return out
}

// Select returns a lane from t where mask's lane is non-zero, else from f —
// the branchless primitive the masked-read/denormal-clamp designs rely on.
func (v Vec4) Select(mask, t, f Vec4) Vec4 {
	var out Vec4
	for i := range v {
		if mask[i] != 0 {
			out[i] = t[i]
		} else {
			out[i] = f[i]
		}
	}
	return out
}

// Shuffle permutes lanes according to idx (each 0..3), the Go analogue of
// the source's compile-time shuffle intrinsics.
func (v Vec4) Shuffle(idx [4]int) Vec4 {
	var out Vec4
	for i, j := range idx {
		out[i] = v[j]
	}
	return out
}

// HAdd is the horizontal sum reduction over all four lanes.
func (v Vec4) HAdd() float32 {
	return v[0] + v[1] + v[2] + v[3]
}

// HMax is the horizontal max reduction.
func (v Vec4) HMax() float32 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

// HMin is the horizontal min reduction.
func (v Vec4) HMin() float32 {
	m := v[0]
	for _, x := range v[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func (v IVec4) Add(o IVec4) IVec4 {
	return IVec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v IVec4) And(o IVec4) IVec4 {
	return IVec4{v[0] & o[0], v[1] & o[1], v[2] & o[2], v[3] & o[3]}
}

func (v IVec4) Or(o IVec4) IVec4 {
	return IVec4{v[0] | o[0], v[1] | o[1], v[2] | o[2], v[3] | o[3]}
}

func (v IVec4) Xor(o IVec4) IVec4 {
	return IVec4{v[0] ^ o[0], v[1] ^ o[1], v[2] ^ o[2], v[3] ^ o[3]}
}

func (v IVec4) Shl(n uint) IVec4 {
	return IVec4{v[0] << n, v[1] << n, v[2] << n, v[3] << n}
}

func (v IVec4) Shr(n uint) IVec4 {
	return IVec4{v[0] >> n, v[1] >> n, v[2] >> n, v[3] >> n}
}
