package source

import "github.com/go-musicfox/wavecore/werrors"

// appendSources concatenates a then b. Grounded on source/append.rs.
type appendSources struct {
	a, b     Source
	aDrained bool
}

// Append concatenates two sources. It rejects construction if their frame
// rates or channel counts disagree.
func Append(a, b Source) (Source, error) {
	if a.FrameRateHz() != b.FrameRateHz() {
		return nil, werrors.NewCannotAppendSourcesWithDifferentFrameRates(a.FrameRateHz(), b.FrameRateHz())
	}
	if a.NumChannels() != b.NumChannels() {
		return nil, werrors.NewCannotAppendSourcesWithDifferentNumChannels(uint32(a.NumChannels()), uint32(b.NumChannels()))
	}
	return &appendSources{a: a, b: b}, nil
}

func (s *appendSources) FrameRateHz() uint32 { return s.a.FrameRateHz() }
func (s *appendSources) NumChannels() uint16 { return s.a.NumChannels() }

func (s *appendSources) NumFramesEstimate() (uint64, bool) {
	na, okA := s.a.NumFramesEstimate()
	nb, okB := s.b.NumFramesEstimate()
	if !okA || !okB {
		return 0, false
	}
	return na + nb, true
}

func (s *appendSources) SizeHint() (lower, upper uint64, upperOK bool) {
	loA, upA, okA := s.a.SizeHint()
	loB, upB, okB := s.b.SizeHint()
	lower = loA + loB
	if okA && okB {
		return lower, upA + upB, true
	}
	return lower, 0, false
}

func (s *appendSources) Next() (float32, bool) {
	if !s.aDrained {
		if v, ok := s.a.Next(); ok {
			return v, true
		}
		s.aDrained = true
	}
	return s.b.Next()
}
