package wavecore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMillisecondsToFrames(t *testing.T) {
	assert.Equal(t, uint64(44100), millisecondsToFrames(1000, 44100))
	assert.Equal(t, uint64(0), millisecondsToFrames(0, 44100))
	assert.Equal(t, uint64(22), millisecondsToFrames(500, 44)) // truncates, not rounds
}

func TestMillisecondsToSamples(t *testing.T) {
	assert.Equal(t, uint64(88200), millisecondsToSamples(1000, 44100, 2))
}

func TestFramesToDuration(t *testing.T) {
	assert.Equal(t, time.Second, framesToDuration(44100, 44100))
	assert.Equal(t, time.Duration(0), framesToDuration(100, 0))
}

func TestDurationEstimateToStr(t *testing.T) {
	assert.Equal(t, "unknown", durationEstimateToStr(0, false))
	assert.Equal(t, "1s", durationEstimateToStr(time.Second, true))
}

func TestEstNumFramesToStr(t *testing.T) {
	assert.Equal(t, "unknown", estNumFramesToStr(0, false))
	assert.Equal(t, "44100", estNumFramesToStr(44100, true))
}
