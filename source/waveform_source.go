package source

// waveformSource is a read-only view over an already-materialized
// interleaved sample buffer, acting as a Source. It exposes an exact size
// hint and an O(1) cursor advance. Grounded on source/waveform_source.rs.
//
// It takes the raw (frameRateHz, numChannels, samples) triple rather than a
// *wavecore.Waveform so that this package never needs to import the root
// package (which itself imports source) - avoiding an import cycle the
// original crate doesn't have to worry about, since Rust's module system
// lets waveform.rs and source/waveform_source.rs sit in the same crate.
type waveformSource struct {
	samples     []float32
	frameRateHz uint32
	numChannels uint16
	cursor      int
}

// NewWaveformSource wraps an interleaved sample buffer as a Source.
func NewWaveformSource(frameRateHz uint32, numChannels uint16, samples []float32) Source {
	return &waveformSource{samples: samples, frameRateHz: frameRateHz, numChannels: numChannels}
}

func (w *waveformSource) FrameRateHz() uint32 { return w.frameRateHz }
func (w *waveformSource) NumChannels() uint16 { return w.numChannels }

func (w *waveformSource) NumFramesEstimate() (uint64, bool) {
	if w.numChannels == 0 {
		return 0, true
	}
	remaining := uint64(len(w.samples) - w.cursor)
	return remaining / uint64(w.numChannels), true
}

func (w *waveformSource) SizeHint() (lower, upper uint64, upperOK bool) {
	remaining := uint64(len(w.samples) - w.cursor)
	return remaining, remaining, true
}

func (w *waveformSource) Next() (float32, bool) {
	if w.cursor >= len(w.samples) {
		return 0, false
	}
	v := w.samples[w.cursor]
	w.cursor++
	return v, true
}

// Nth advances the cursor by k positions in O(1) and returns the sample
// now at the head, matching the original's Iterator::nth() override.
func (w *waveformSource) Nth(k int) (float32, bool) {
	w.cursor += k
	return w.Next()
}
