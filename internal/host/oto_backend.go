//go:build !headless

package host

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/oto/v3"

	"github.com/dspkernel/blockdsp/internal/adapter"
)

// OtoBackend plays samples pulled from a BlockAdapter through the oto v3
// cross-platform audio output, adapted from the teacher's OtoPlayer
// (audio_backend_oto.go): an atomic pointer to the source for a
// lock-free hot-path Read, a mutex guarding only setup/control calls.
type OtoBackend struct {
	ctx       *oto.Context
	player    *oto.Player
	source    atomic.Pointer[adapter.BlockAdapter]
	outBuf    []float32
	sampleBuf []float32
	started   bool
	mutex     sync.Mutex
}

// NewOtoBackend opens an oto context at sampleRate, one output channel.
func NewOtoBackend(sampleRate int) (*OtoBackend, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}
	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, err
	}
	<-ready
	return &OtoBackend{ctx: ctx}, nil
}

// SetupPlayer wires a BlockAdapter as the sample source and creates the
// underlying oto player.
func (b *OtoBackend) SetupPlayer(a *adapter.BlockAdapter) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.source.Store(a)
	b.player = b.ctx.NewPlayer(b)
	b.sampleBuf = make([]float32, 4096)
	b.outBuf = make([]float32, 4096)
}

// Read implements io.Reader for oto.Player, pulling one host-buffer-sized
// block from the adapter per call.
func (b *OtoBackend) Read(p []byte) (n int, err error) {
	a := b.source.Load()
	if a == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	numSamples := len(p) / 4
	if len(b.outBuf) < numSamples {
		b.outBuf = make([]float32, numSamples)
	}
	out := b.outBuf[:numSamples]

	a.Callback(nil, [][]float32{out}, numSamples)

	copy(p, (*[1 << 30]byte)(unsafe.Pointer(&out[0]))[:len(p)])
	return len(p), nil
}

func (b *OtoBackend) Start() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if !b.started && b.player != nil {
		b.player.Play()
		b.started = true
	}
}

func (b *OtoBackend) Stop() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.started && b.player != nil {
		b.player.Close()
		b.started = false
	}
}

func (b *OtoBackend) Close() {
	b.Stop()
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.player != nil {
		b.player.Close()
		b.player = nil
	}
}

func (b *OtoBackend) IsStarted() bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.started
}
