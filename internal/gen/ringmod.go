package gen

import "github.com/dspkernel/blockdsp/internal/block"

// RingMod is a stateless ring modulator: each sample of a is multiplied by
// the corresponding sample of b. Grounded on the teacher's per-channel
// ring-modulation (a channel's raw sample multiplied by its ring-mod
// source's previous raw sample); generalised here to two arbitrary
// already-aligned block-rate signals instead of a fixed channel graph.
func RingMod(a, b block.Signal) block.Signal {
	return block.Mul(a, b)
}
