//go:build headless

package host

import "github.com/dspkernel/blockdsp/internal/adapter"

// OtoBackend discards playback control entirely in headless builds, for
// test and CI environments with no audio device, adapted from the
// teacher's headless OtoPlayer (audio_backend_headless.go).
type OtoBackend struct {
	started bool
	source  *adapter.BlockAdapter
}

func NewOtoBackend(sampleRate int) (*OtoBackend, error) {
	return &OtoBackend{}, nil
}

func (b *OtoBackend) SetupPlayer(a *adapter.BlockAdapter) { b.source = a }

func (b *OtoBackend) Start() { b.started = true }
func (b *OtoBackend) Stop()  { b.started = false }
func (b *OtoBackend) Close() { b.started = false }

func (b *OtoBackend) IsStarted() bool { return b.started }
