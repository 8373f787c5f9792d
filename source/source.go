// Package source implements wavecore's streaming sample pipeline: a
// composable chain of lazy, single-pass f32 sample producers.
//
// It is modeled on the teacher's use of github.com/gopxl/beep.Streamer (see
// internal/player/beep_player.go's streamer/resampleStreamer methods), but
// generalized from beep's fixed [][2]float64 stereo frame to an arbitrary
// channel count of interleaved float32 samples, the way the original
// decoding core this library reimplements models it (crate::backend::Source,
// a capability set of {Signal, Iterator<Item = f32>}).
package source

import "time"

// Signal is the read-only capability every pipeline stage exposes: its
// frame rate, its channel count, and an estimate of how many frames remain.
// A stage that changes channel count (ConvertToMono, SelectFirstChannels)
// must report the post-transform count, not its upstream's.
type Signal interface {
	FrameRateHz() uint32
	NumChannels() uint16
	// NumFramesEstimate reports a best-effort remaining-frame count. It is
	// an estimate, not a guarantee: decoder error-recovery skips or
	// container inaccuracy can make the actual emitted count differ.
	NumFramesEstimate() (n uint64, ok bool)
}

// DurationEstimate derives a wall-clock estimate from a Signal's frame-rate
// and remaining-frame estimate.
func DurationEstimate(s Signal) (time.Duration, bool) {
	n, ok := s.NumFramesEstimate()
	if !ok {
		return 0, false
	}
	rate := s.FrameRateHz()
	if rate == 0 {
		return 0, false
	}
	seconds := float64(n) / float64(rate)
	return time.Duration(seconds * float64(time.Second)), true
}

// Source is a lazy, single-pass producer of interleaved float32 samples:
// channel 0 of frame 0, channel 1 of frame 0, ..., channel C-1 of frame 0,
// channel 0 of frame 1, and so on. Next returns ok=false at end-of-stream
// (which, once returned, must be returned on every subsequent call).
//
// All combinators in this package are single-pass: once a sample has been
// emitted it is never re-emitted. No combinator may suspend; every Next call
// is O(1) amortized, with the sole exception of SkipFrames's first call,
// which is O(n).
type Source interface {
	Signal
	Next() (sample float32, ok bool)
	// SizeHint reports (lowerBoundSamples, upperBoundSamples). upper is
	// (0, false) when no reliable upper bound is known.
	SizeHint() (lower uint64, upper uint64, upperOK bool)
}

// Collect drains src into a single interleaved buffer. It is the terminal
// operation of every decode pipeline (§4.5 step 7).
func Collect(src Source) []float32 {
	lower, _, _ := src.SizeHint()
	out := make([]float32, 0, lower)
	for {
		v, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
