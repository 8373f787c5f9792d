package source

// prependZeros emits n*channels zero samples before deferring to upstream.
// Grounded on source/prepend_zeros.rs.
type prependZeros struct {
	upstream         Source
	samplesRemaining uint64
}

// PrependZeros emits n frames of silence before upstream's samples.
func PrependZeros(upstream Source, nFrames uint64) Source {
	if nFrames == 0 {
		return upstream
	}
	return &prependZeros{upstream: upstream, samplesRemaining: nFrames * uint64(upstream.NumChannels())}
}

func (p *prependZeros) FrameRateHz() uint32 { return p.upstream.FrameRateHz() }
func (p *prependZeros) NumChannels() uint16 { return p.upstream.NumChannels() }

func (p *prependZeros) NumFramesEstimate() (uint64, bool) {
	n, ok := p.upstream.NumFramesEstimate()
	if !ok {
		return 0, false
	}
	return n + p.samplesRemaining/uint64(p.upstream.NumChannels()), true
}

func (p *prependZeros) SizeHint() (lower, upper uint64, upperOK bool) {
	lo, up, ok := p.upstream.SizeHint()
	lower = lo + p.samplesRemaining
	if ok {
		return lower, up + p.samplesRemaining, true
	}
	return lower, 0, false
}

func (p *prependZeros) Next() (float32, bool) {
	if p.samplesRemaining > 0 {
		p.samplesRemaining--
		return 0, true
	}
	return p.upstream.Next()
}

// appendZeros emits upstream's samples, then - once upstream reports EOF -
// exactly n*channels zero samples, then EOF. A latched "drained" bit
// ensures the upstream-to-zeros transition happens exactly once even if the
// caller keeps polling past EOF in between. Grounded on
// source/append_zeros.rs.
type appendZeros struct {
	upstream         Source
	drained          bool
	samplesRemaining uint64
}

// AppendZeros pads upstream with n frames of trailing silence. If nFrames
// is 0, upstream is returned unchanged.
func AppendZeros(upstream Source, nFrames uint64) Source {
	if nFrames == 0 {
		return upstream
	}
	return &appendZeros{upstream: upstream, samplesRemaining: nFrames * uint64(upstream.NumChannels())}
}

func (a *appendZeros) FrameRateHz() uint32 { return a.upstream.FrameRateHz() }
func (a *appendZeros) NumChannels() uint16 { return a.upstream.NumChannels() }

func (a *appendZeros) NumFramesEstimate() (uint64, bool) {
	return a.upstream.NumFramesEstimate()
}

func (a *appendZeros) SizeHint() (lower, upper uint64, upperOK bool) {
	if a.drained {
		return a.samplesRemaining, a.samplesRemaining, true
	}
	lo, up, ok := a.upstream.SizeHint()
	lower = lo + a.samplesRemaining
	if ok {
		return lower, up + a.samplesRemaining, true
	}
	return lower, 0, false
}

func (a *appendZeros) Next() (float32, bool) {
	if a.samplesRemaining == 0 {
		return 0, false
	}
	if a.drained {
		a.samplesRemaining--
		return 0, true
	}
	v, ok := a.upstream.Next()
	if !ok {
		a.drained = true
		a.samplesRemaining--
		return 0, true
	}
	return v, true
}
