package source

// takeFrames emits at most n*channels samples from upstream, then reports
// EOF regardless of whether upstream still has data. Grounded on
// source/take_samples.rs.
type takeFrames struct {
	upstream         Source
	samplesRemaining uint64
}

// TakeFrames limits upstream to its first n frames. If n is 0, upstream is
// returned unchanged (per §4.5 step 6, a zero take_frames is a no-op stage
// the orchestrator skips wrapping).
func TakeFrames(upstream Source, n uint64) Source {
	if n == 0 {
		return upstream
	}
	channels := uint64(upstream.NumChannels())
	return &takeFrames{upstream: upstream, samplesRemaining: n * channels}
}

func (t *takeFrames) FrameRateHz() uint32 { return t.upstream.FrameRateHz() }
func (t *takeFrames) NumChannels() uint16 { return t.upstream.NumChannels() }

func (t *takeFrames) NumFramesEstimate() (uint64, bool) {
	return t.upstream.NumFramesEstimate()
}

func (t *takeFrames) SizeHint() (lower, upper uint64, upperOK bool) {
	lo, up, ok := t.upstream.SizeHint()
	lower = min64(lo, t.samplesRemaining)
	if ok {
		return lower, min64(up, t.samplesRemaining), true
	}
	return lower, t.samplesRemaining, true
}

func (t *takeFrames) Next() (float32, bool) {
	if t.samplesRemaining == 0 {
		return 0, false
	}
	v, ok := t.upstream.Next()
	if !ok {
		t.samplesRemaining = 0
		return 0, false
	}
	t.samplesRemaining--
	return v, true
}

func min64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}
