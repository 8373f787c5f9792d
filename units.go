package wavecore

import (
	"fmt"
	"time"
)

// millisecondsToFrames converts a millisecond offset to a frame index at
// the given frame rate, truncating any fractional frame.
func millisecondsToFrames(ms uint64, frameRateHz uint32) uint64 {
	return ms * uint64(frameRateHz) / 1000
}

// millisecondsToSamples converts a millisecond offset to a sample count
// across numChannels interleaved channels.
func millisecondsToSamples(ms uint64, frameRateHz uint32, numChannels uint16) uint64 {
	return ms * uint64(frameRateHz) * uint64(numChannels) / 1000
}

// framesToDuration converts a frame count at the given rate to a
// time.Duration.
func framesToDuration(numFrames uint64, frameRateHz uint32) time.Duration {
	if frameRateHz == 0 {
		return 0
	}
	seconds := float64(numFrames) / float64(frameRateHz)
	return time.Duration(seconds * float64(time.Second))
}

// durationEstimateToStr renders an optional duration estimate: "unknown"
// when absent, otherwise a Go duration string rounded to the nearest
// millisecond.
func durationEstimateToStr(d time.Duration, ok bool) string {
	if !ok {
		return "unknown"
	}
	return d.Round(time.Millisecond).String()
}

// estNumFramesToStr renders an optional estimated-frame count.
func estNumFramesToStr(n uint64, ok bool) string {
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%d", n)
}
