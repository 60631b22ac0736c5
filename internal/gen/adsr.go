package gen

import "github.com/dspkernel/blockdsp/internal/block"

// Segment is the ADSR state machine's current stage (§3.6).
type Segment int

const (
	SegmentOff Segment = iota
	SegmentAttack
	SegmentDecay
	SegmentSustain
	SegmentRelease
)

// ADSRCoeffs holds the per-segment targets an ADSR transitions through.
type ADSRCoeffs struct {
	AttackTarget  float32 // not read: the attack segment always approaches 1.0
	DecayTarget   float32 // sustain level
	ReleaseTarget float32
	AttackK       float32 // first-order coefficient for the attack approach
	DecayK        float32
	ReleaseK      float32
}

// ADSR is a first-order-approach envelope state machine. Each segment
// approaches a target biased by 10% past the segment's end value so the
// one-pole filter actually reaches it in finite time; transitions fire
// when y crosses the segment's (unbiased) threshold in the direction of
// travel (§3.6, §4.6).
type ADSR struct {
	y, y1   float32
	x1      float32
	segment Segment
	target  float32 // biased target currently being approached
	k       float32
	amp     float32
}

// SetAmp sets the output scale factor.
func (a *ADSR) SetAmp(amp float32) { a.amp = amp }

func biasedTarget(start, end float32) float32 {
	return end + (end-start)*0.1
}

// startSegment installs the biased target/coefficient for entering s,
// given the true (unbiased) endpoint and the approach rate k.
func (a *ADSR) startSegment(s Segment, endEnv, k float32) {
	a.segment = s
	a.target = biasedTarget(a.y, endEnv)
	a.k = k
}

// ProcessBlock advances the envelope for one block, given a gate input
// (> 0 means held) and the coefficient set describing target levels and
// approach rates.
func (a *ADSR) ProcessBlock(gate block.Signal, c ADSRCoeffs) block.Signal {
	var out block.Signal
	for i, x := range gate {
		risingThroughZero := x > 0 && a.x1 <= 0
		fallingToZero := x <= 0 && a.x1 > 0
		a.x1 = x

		if risingThroughZero {
			a.startSegment(SegmentAttack, 1.0, c.AttackK)
		} else if fallingToZero {
			a.startSegment(SegmentRelease, c.ReleaseTarget, c.ReleaseK)
		}

		switch a.segment {
		case SegmentOff:
			a.y = 0
		case SegmentSustain:
			a.y = c.DecayTarget
			a.k = 0
		default:
			a.y = a.y + (a.target-a.y)*a.k
			a.checkThresholdCrossing(c)
		}

		out[i] = a.y * a.amp
	}
	return out
}

// checkThresholdCrossing advances to the next segment once y reaches the
// segment's true (unbiased) endpoint.
func (a *ADSR) checkThresholdCrossing(c ADSRCoeffs) {
	switch a.segment {
	case SegmentAttack:
		if a.y >= 1.0 {
			a.y = 1.0
			a.startSegment(SegmentDecay, c.DecayTarget, c.DecayK)
		}
	case SegmentDecay:
		if a.y <= c.DecayTarget {
			a.y = c.DecayTarget
			a.segment = SegmentSustain
			a.k = 0
		}
	case SegmentRelease:
		if a.y <= c.ReleaseTarget {
			a.y = c.ReleaseTarget
			a.segment = SegmentOff
		}
	}
}

func (a *ADSR) Clear() {
	a.y, a.y1, a.x1 = 0, 0, 0
	a.segment = SegmentOff
	a.target, a.k = 0, 0
}

func (a *ADSR) Segment() Segment { return a.segment }
