package adapter

import (
	"github.com/dspkernel/blockdsp/internal/block"
	"github.com/dspkernel/blockdsp/internal/ring"
)

// Voice control-rate output rows (§6 "getInputVoice(i).outputs.constRow").
const (
	RowGate = iota
	RowPitch
	numVoiceRows
)

// Voice holds one voice's control-rate gate/pitch blocks, rewritten each
// time processVector dispatches an event addressed to it.
type Voice struct {
	outputs [numVoiceRows]block.Signal
}

// Row returns the voice's gate or pitch control block (read-only access
// for a process function).
func (v *Voice) Row(row int) block.Signal { return v.outputs[row] }

// AudioContext is the per-callback state a ProcessFn reads and writes:
// input/output block arrays indexed by channel, the sample rate, the
// input-event queue, and per-voice control-rate outputs (§6).
type AudioContext struct {
	Inputs     []block.Signal
	Outputs    []block.Signal
	SampleRate float32

	voices []Voice

	incoming *ring.EventQueue[Event] // host-thread write, audio-thread drain
	pending  []Event                 // audio-thread-owned, accumulated this epoch
	timeOffset int
}

// NewAudioContext allocates a context with the given channel counts and
// voice count.
func NewAudioContext(numInputs, numOutputs, numVoices int, sampleRate float32) *AudioContext {
	return &AudioContext{
		Inputs:     make([]block.Signal, numInputs),
		Outputs:    make([]block.Signal, numOutputs),
		SampleRate: sampleRate,
		voices:     make([]Voice, numVoices),
		incoming:   ring.NewEventQueue[Event](256),
	}
}

// AddInputEvent enqueues an event from the host/non-RT thread. time is
// relative to the host callback it was added during.
func (c *AudioContext) AddInputEvent(e Event) {
	c.incoming.Push(e)
}

// ClearInputEvents discards every accumulated-but-undispatched event —
// called by the block adapter once a callback's internal blocks have all
// run (§4.8 step 5).
func (c *AudioContext) ClearInputEvents() {
	c.pending = c.pending[:0]
}

// SetInputEventTimeOffset records the baseline samplesAccumulated value
// events added in the next callback are stamped relative to (§4.8 step 6).
func (c *AudioContext) SetInputEventTimeOffset(offset int) {
	c.timeOffset = offset
}

// drainIncoming pulls every event pushed since the last drain into the
// audio-thread-owned pending slice, biasing each by the current time
// offset so its Time becomes internal-timeline-relative.
func (c *AudioContext) drainIncoming() {
	before := len(c.pending)
	c.pending = c.incoming.Drain(c.pending)
	for i := before; i < len(c.pending); i++ {
		c.pending[i].Time += c.timeOffset
	}
}

// GetInputVoice returns voice i's control-rate state.
func (c *AudioContext) GetInputVoice(i int) *Voice { return &c.voices[i] }

// ProcessVector dispatches every pending event whose time falls in
// [startOffset, startOffset+FramesPerBlock) into the addressed voice's
// gate/pitch rows, sample-accurately from its offset within the block
// (§4.8 step 3b).
func (c *AudioContext) ProcessVector(startOffset int) {
	c.drainIncoming()

	for _, e := range c.pending {
		if e.Time < startOffset || e.Time >= startOffset+block.FramesPerBlock {
			continue
		}
		if e.SourceIdx < 0 || e.SourceIdx >= len(c.voices) {
			continue
		}
		v := &c.voices[e.SourceIdx]
		onset := e.Time - startOffset

		switch e.Type {
		case NoteOn:
			for i := onset; i < block.FramesPerBlock; i++ {
				v.outputs[RowGate][i] = 1
				v.outputs[RowPitch][i] = e.Value1
			}
		case NoteOff:
			for i := onset; i < block.FramesPerBlock; i++ {
				v.outputs[RowGate][i] = 0
			}
		case ControlChange:
			for i := onset; i < block.FramesPerBlock; i++ {
				v.outputs[RowPitch][i] = e.Value1
			}
		}
	}
}

// ProcessFn reads context.Inputs, writes context.Outputs, and mutates
// state — the user processing callback dispatched once per internal
// block (§6).
type ProcessFn func(ctx *AudioContext, state any)
