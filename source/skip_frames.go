package source

// skipFrames lazily discards n*channels samples from upstream on the first
// call to Next, then behaves as an identity wrapper. Grounded on the
// original's source/skip_samples.rs (here named in terms of frames per
// §4.2's skip_frames contract).
type skipFrames struct {
	upstream      Source
	samplesToSkip uint64
	hasSkipped    bool
}

// SkipFrames drains the first n frames from upstream before yielding
// anything. If n is 0, upstream is returned unchanged.
func SkipFrames(upstream Source, n uint64) Source {
	if n == 0 {
		return upstream
	}
	channels := uint64(upstream.NumChannels())
	return &skipFrames{upstream: upstream, samplesToSkip: n * channels}
}

func (s *skipFrames) ensureSkipped() {
	if s.hasSkipped {
		return
	}
	s.hasSkipped = true
	for i := uint64(0); i < s.samplesToSkip; i++ {
		if _, ok := s.upstream.Next(); !ok {
			return
		}
	}
}

func (s *skipFrames) FrameRateHz() uint32 { return s.upstream.FrameRateHz() }
func (s *skipFrames) NumChannels() uint16 { return s.upstream.NumChannels() }

func (s *skipFrames) NumFramesEstimate() (uint64, bool) {
	return s.upstream.NumFramesEstimate()
}

func (s *skipFrames) SizeHint() (lower, upper uint64, upperOK bool) {
	lo, up, ok := s.upstream.SizeHint()
	lower = saturatingSub(lo, s.samplesToSkip)
	if ok {
		return lower, saturatingSub(up, s.samplesToSkip), true
	}
	return lower, 0, false
}

func (s *skipFrames) Next() (float32, bool) {
	s.ensureSkipped()
	return s.upstream.Next()
}

func saturatingSub(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}
