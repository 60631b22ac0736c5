package gen

import "github.com/dspkernel/blockdsp/internal/block"

// unityRamp[i] = (i+1)/FramesPerBlock, the fractional position of each
// sample within a block (§4.6).
var unityRamp = func() block.Signal {
	var r block.Signal
	for i := range r {
		r[i] = float32(i+1) / float32(block.FramesPerBlock)
	}
	return r
}()

// LinearGlide converts a scalar target into a block-rate signal with
// linear slew quantised to whole blocks, avoiding accumulated drift by
// locking to the exact target on the block after the last ramp block (§4.6).
type LinearGlide struct {
	curr            block.Signal
	step            block.Signal
	target          float32
	dyPerVector     float32
	vectorsPerGlide int
	vectorsLeft     int // -1: idle, 0: finishing, >0: gliding
}

// NewLinearGlide returns a glide idle at 0.
func NewLinearGlide() *LinearGlide {
	return &LinearGlide{vectorsPerGlide: 32, dyPerVector: 1.0 / 32, vectorsLeft: -1}
}

// SetGlideTimeInSamples quantises the glide duration to whole blocks.
func (g *LinearGlide) SetGlideTimeInSamples(t float32) {
	n := int(t / block.FramesPerBlock)
	if n < 1 {
		n = 1
	}
	g.vectorsPerGlide = n
	g.dyPerVector = 1.0 / float32(n)
}

// SetValue jumps to f immediately, without gliding.
func (g *LinearGlide) SetValue(f float32) {
	g.target = f
	g.vectorsLeft = 0
}

// ProcessBlock advances the glide toward f, retargeting if f changed.
func (g *LinearGlide) ProcessBlock(f float32) block.Signal {
	if f != g.target {
		g.target = f
		g.vectorsLeft = g.vectorsPerGlide
	}

	switch {
	case g.vectorsLeft < 0:
		// idle: hold current value
	case g.vectorsLeft == 0:
		block.Fill(&g.curr, g.target)
		block.Clear(&g.step)
		g.vectorsLeft--
	case g.vectorsLeft == g.vectorsPerGlide:
		current := g.curr[block.FramesPerBlock-1]
		dydv := (g.target - current) * g.dyPerVector
		block.Fill(&g.step, dydv)
		for i := range g.curr {
			g.curr[i] = current + unityRamp[i]*dydv
		}
		g.vectorsLeft--
	default:
		g.curr = block.Add(g.curr, g.step)
		g.vectorsLeft--
	}
	return g.curr
}

func (g *LinearGlide) Clear() {
	block.Clear(&g.curr)
	block.Clear(&g.step)
	g.target = 0
	g.vectorsLeft = -1
}
