package source

import "github.com/go-musicfox/wavecore/werrors"

// stackChannels interleaves a's channels then b's channels within each
// frame. Grounded on source/stack_channels.rs. Per §9's Open Questions,
// this combinator is not exercised by the orchestrator's own pipeline, but
// is kept as part of the package's public capability set since it costs
// nothing to carry and the original ships it too.
//
// Next pulls and buffers a whole output frame (aChannels samples from a,
// then bChannels samples from b) before emitting any of it, the same way
// ConvertToMono never emits a partial frame. This keeps the combined
// stream's total sample count an exact multiple of aChannels+bChannels
// even when a and b have different lengths: whichever side runs out first
// ends the stream at that frame boundary, with none of the other side's
// already-pulled samples for that frame left dangling.
type stackChannels struct {
	a, b      Source
	aChannels uint16
	bChannels uint16
	frame     []float32
	frameLen  int
	pos       int
	done      bool
}

// StackChannels interleaves two sources frame-by-frame, placing a's
// channels before b's in each output frame. It rejects construction if the
// two sources have different frame rates. When either side exhausts, the
// combined source reports EOF at the next frame boundary.
func StackChannels(a, b Source) (Source, error) {
	if a.FrameRateHz() != b.FrameRateHz() {
		return nil, werrors.NewCannotAppendSourcesWithDifferentFrameRates(a.FrameRateHz(), b.FrameRateHz())
	}
	aChannels, bChannels := a.NumChannels(), b.NumChannels()
	return &stackChannels{
		a: a, b: b,
		aChannels: aChannels,
		bChannels: bChannels,
		frame:     make([]float32, int(aChannels)+int(bChannels)),
	}, nil
}

func (s *stackChannels) FrameRateHz() uint32 { return s.a.FrameRateHz() }
func (s *stackChannels) NumChannels() uint16 { return s.aChannels + s.bChannels }

func (s *stackChannels) NumFramesEstimate() (uint64, bool) {
	na, okA := s.a.NumFramesEstimate()
	nb, okB := s.b.NumFramesEstimate()
	if !okA || !okB {
		return 0, false
	}
	if na < nb {
		return na, true
	}
	return nb, true
}

func (s *stackChannels) SizeHint() (lower, upper uint64, upperOK bool) {
	frames, ok := s.NumFramesEstimate()
	if !ok {
		return 0, 0, false
	}
	total := frames * uint64(s.NumChannels())
	return total, total, true
}

func (s *stackChannels) Next() (float32, bool) {
	if s.pos >= s.frameLen {
		if s.done || !s.fillFrame() {
			s.done = true
			return 0, false
		}
	}
	v := s.frame[s.pos]
	s.pos++
	return v, true
}

// fillFrame pulls one full output frame - aChannels samples from a, then
// bChannels samples from b - into s.frame. It reports false, leaving
// nothing emitted, if either side runs out before the frame is complete.
func (s *stackChannels) fillFrame() bool {
	for i := 0; i < int(s.aChannels); i++ {
		v, ok := s.a.Next()
		if !ok {
			return false
		}
		s.frame[i] = v
	}
	for i := 0; i < int(s.bChannels); i++ {
		v, ok := s.b.Next()
		if !ok {
			return false
		}
		s.frame[int(s.aChannels)+i] = v
	}
	s.frameLen = len(s.frame)
	s.pos = 0
	return true
}
