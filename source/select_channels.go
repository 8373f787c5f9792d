package source

// selectChannels keeps only the first k channels of each frame, discarding
// the rest. Grounded on source/select_channels.rs.
type selectChannels struct {
	upstream     Source
	origChannels uint16
	keep         uint16
	disabled     bool
	channelIdx   uint16
}

// SelectFirstChannels keeps only the first k channels of each upstream
// frame. When k is 0 or k >= upstream's channel count, it behaves as
// identity (and the orchestrator skips wrapping it at all).
func SelectFirstChannels(upstream Source, k uint16) Source {
	orig := upstream.NumChannels()
	keep := k
	if keep > orig {
		keep = orig
	}
	if keep == 0 || keep == orig {
		return upstream
	}
	return &selectChannels{upstream: upstream, origChannels: orig, keep: keep}
}

func (s *selectChannels) FrameRateHz() uint32 { return s.upstream.FrameRateHz() }
func (s *selectChannels) NumChannels() uint16 { return s.keep }

func (s *selectChannels) NumFramesEstimate() (uint64, bool) {
	return s.upstream.NumFramesEstimate()
}

func (s *selectChannels) SizeHint() (lower, upper uint64, upperOK bool) {
	// Upstream's sample-count bounds scaled by keep/orig would require
	// fractional arithmetic per frame; report frame-aligned bounds instead.
	lo, up, ok := s.upstream.SizeHint()
	scale := func(n uint64) uint64 {
		frames := n / uint64(s.origChannels)
		return frames * uint64(s.keep)
	}
	lower = scale(lo)
	if ok {
		return lower, scale(up), true
	}
	return lower, 0, false
}

func (s *selectChannels) Next() (float32, bool) {
	for {
		v, ok := s.upstream.Next()
		if !ok {
			return 0, false
		}
		idx := s.channelIdx
		s.channelIdx++
		if s.channelIdx == s.origChannels {
			s.channelIdx = 0
		}
		if idx >= s.keep {
			continue
		}
		return v, true
	}
}
