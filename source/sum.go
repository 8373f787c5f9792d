package source

// sum emits a alone for the first offsetFrames frames, then the per-sample
// sum of a and b; once one side ends, the other is passed through.
// Grounded on source/sum.rs.
type sum struct {
	a, b             Source
	remainingSamples uint64
}

// Sum overlays b onto a starting offsetFrames into a.
func Sum(a, b Source, offsetFrames uint64) Source {
	return &sum{a: a, b: b, remainingSamples: offsetFrames * uint64(a.NumChannels())}
}

func (s *sum) FrameRateHz() uint32 { return s.a.FrameRateHz() }
func (s *sum) NumChannels() uint16 { return s.a.NumChannels() }

func (s *sum) NumFramesEstimate() (uint64, bool) {
	na, okA := s.a.NumFramesEstimate()
	nb, okB := s.b.NumFramesEstimate()
	if !okA || !okB {
		return 0, false
	}
	return na + nb, true
}

func (s *sum) SizeHint() (lower, upper uint64, upperOK bool) {
	loA, upA, okA := s.a.SizeHint()
	loB, upB, okB := s.b.SizeHint()
	lower = min64(loA, loB)
	if okA && okB {
		return lower, max64(upA, upB), true
	}
	return lower, 0, false
}

func (s *sum) Next() (float32, bool) {
	if s.remainingSamples > 0 {
		s.remainingSamples--
		return s.a.Next()
	}
	va, okA := s.a.Next()
	vb, okB := s.b.Next()
	switch {
	case okA && okB:
		return va + vb, true
	case okA:
		return va, true
	case okB:
		return vb, true
	default:
		return 0, false
	}
}

func max64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
