package gen

import (
	"math"

	"github.com/dspkernel/blockdsp/internal/block"
)

// NoiseGen is a linear-congruential generator reinterpreting 23 bits of
// the seed as the mantissa of a float in [1,2), mapped to [-1,1] (§4.6).
type NoiseGen struct {
	seed uint32
}

func (n *NoiseGen) SetSeed(seed uint32) { n.seed = seed }

func (n *NoiseGen) Reset() { n.seed = 0 }

func (n *NoiseGen) step() {
	n.seed = n.seed*0x0019660D + 0x3C6EF35F
}

// NextSample advances the generator and returns one sample in [-1,1].
func (n *NoiseGen) NextSample() float32 {
	n.step()
	bits := ((n.seed >> 9) & 0x007FFFFF) | 0x3F800000
	return math.Float32frombits(bits)*2 - 3
}

// ProcessBlock fills a block with successive noise samples.
func (n *NoiseGen) ProcessBlock() block.Signal {
	var out block.Signal
	for i := range out {
		out[i] = n.NextSample()
	}
	return out
}
