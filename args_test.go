package wavecore

import (
	"testing"

	"github.com/go-musicfox/wavecore/resample"
	"github.com/stretchr/testify/assert"
)

func TestWaveformArgsBuildersAreImmutable(t *testing.T) {
	base := WaveformArgs{}
	derived := base.WithFrameRateHz(48000).WithNumChannels(1).WithResampleMode(resample.ModeLanczos)

	assert.Equal(t, uint32(0), base.FrameRateHz, "base must be unchanged")
	assert.Equal(t, uint32(48000), derived.FrameRateHz)
	assert.Equal(t, uint16(1), derived.NumChannels)
	assert.Equal(t, resample.ModeLanczos, derived.ResampleMode)
}

func TestWaveformArgsZeroValueDecodesAsIs(t *testing.T) {
	var args WaveformArgs
	assert.Equal(t, uint64(0), args.StartTimeMilliseconds)
	assert.Equal(t, uint64(0), args.EndTimeMilliseconds)
	assert.False(t, args.ZeroPadEnding)
	assert.False(t, args.RepeatPadEnding)
}
